package jsonx

import (
	"math"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// finiteFloatExtension swaps the encoder of every float64 struct field for
// one that writes null when the value is NaN or infinite. A diverged solve
// reports NaN, which plain JSON cannot carry.
type finiteFloatExtension struct {
	jsoniter.DummyExtension
}

func (e *finiteFloatExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		if binding.Field.Type().Kind() != reflect.Float64 {
			continue
		}
		if binding.Field.Tag().Get("json") == "-" {
			continue
		}
		binding.Encoder = &finiteFloatEncoder{}
	}
}

type finiteFloatEncoder struct{}

var _ jsoniter.ValEncoder = (*finiteFloatEncoder)(nil)

func (enc *finiteFloatEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v := *(*float64)(ptr)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		stream.WriteNil()
		return
	}
	stream.WriteFloat64(v)
}

func (enc *finiteFloatEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*float64)(ptr) == 0
}
