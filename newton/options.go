package newton

// Defaults.
const (
	// DefaultVariableIndex selects params[0] as the unknown.
	DefaultVariableIndex = 0

	// DefaultMaxIterations bounds the number of Newton updates.
	DefaultMaxIterations = 100
)

const (
	panicVariableIndexInvalid = "newton: WithVariableIndex: index must be >= 0"
	panicMaxIterationsInvalid = "newton: WithMaxIterations: n must be >= 1"
)

// Option mutates solver options. Constructors panic only on nonsensical
// values (programmer error); everything that depends on the call's inputs
// is reported as an error by the solver instead.
type Option func(*options)

type options struct {
	index       int
	maxIter     int
	onIteration func(Step)
	onFinish    func(Result)
}

// WithVariableIndex selects which entry of params is solved for.
// Panics if i < 0; an index past the end of params is reported by the
// solver as ErrVariableIndex.
func WithVariableIndex(i int) Option {
	if i < 0 {
		panic(panicVariableIndexInvalid)
	}

	return func(o *options) { o.index = i }
}

// WithMaxIterations sets the iteration budget. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *options) { o.maxIter = n }
}

// WithOnIteration registers a hook invoked once per iteration, after both
// evaluations and before the flat-slope check.
func WithOnIteration(fn func(Step)) Option {
	return func(o *options) { o.onIteration = fn }
}

// WithOnFinish registers a hook invoked with the final Result of every
// solve that passed validation.
func WithOnFinish(fn func(Result)) Option {
	return func(o *options) { o.onFinish = fn }
}

func gatherOptions(opts []Option) options {
	o := options{
		index:   DefaultVariableIndex,
		maxIter: DefaultMaxIterations,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
