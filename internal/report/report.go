// Package report holds the result shapes shared by the command line and
// the tool server, and their text rendering.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvmath/internal/jsonx"
	"github.com/katalvlaran/lvmath/kinetics"
	"github.com/katalvlaran/lvmath/newton"
)

// Solve is a finished Newton solve.
type Solve struct {
	Root        float64 `json:"root"`
	Status      string  `json:"status"`
	Reason      string  `json:"reason,omitempty"`
	Iterations  int     `json:"iterations"`
	Evaluations int     `json:"evaluations"`
	Residual    float64 `json:"residual"`
}

// FromResult converts r. Root is NaN unless the solve converged.
func FromResult(r newton.Result) Solve {
	s := Solve{
		Root:        r.Value(),
		Status:      r.Status.String(),
		Iterations:  r.Iterations,
		Evaluations: r.Evaluations,
		Residual:    r.Residual,
	}
	if r.Reason != newton.ReasonNone {
		s.Reason = r.Reason.String()
	}

	return s
}

// Text renders s on one line.
func (s Solve) Text() string {
	if s.Reason != "" {
		return fmt.Sprintf("root=NaN status=%s reason=%s iterations=%d evaluations=%d",
			s.Status, s.Reason, s.Iterations, s.Evaluations)
	}

	return fmt.Sprintf("root=%g status=%s iterations=%d evaluations=%d residual=%g",
		s.Root, s.Status, s.Iterations, s.Evaluations, s.Residual)
}

// Normal is one point of the standard normal distribution.
type Normal struct {
	Z   float64 `json:"z"`
	P   float64 `json:"p"`
	PDF float64 `json:"pdf,omitempty"`
}

// Text renders n.
func (n Normal) Text() string {
	if n.PDF != 0 {
		return fmt.Sprintf("z=%g p=%.10g pdf=%.10g", n.Z, n.P, n.PDF)
	}

	return fmt.Sprintf("z=%g p=%g", n.Z, n.P)
}

// Fit is a Michaelis–Menten fit.
type Fit struct {
	kinetics.FitResult
	Method string `json:"method"`
}

// FromFit converts r.
func FromFit(r kinetics.FitResult) Fit {
	return Fit{FitResult: r, Method: r.Method.String()}
}

// Text renders f.
func (f Fit) Text() string {
	return fmt.Sprintf("method=%s vmax=%.6g km=%.6g r2=%.6f n=%d", f.Method, f.Vmax, f.Km, f.R2, f.N)
}

// Substrate is a concentration answer from the rate law.
type Substrate struct {
	S float64 `json:"s"`
}

// Text renders s.
func (s Substrate) Text() string {
	return fmt.Sprintf("s=%.10g", s.S)
}

// Texter is implemented by every report.
type Texter interface {
	Text() string
}

// Write renders v to w as text or indented JSON.
func Write(w io.Writer, v Texter, asJSON bool) error {
	if !asJSON {
		_, err := io.WriteString(w, v.Text()+"\n")
		return err
	}
	b, err := jsonx.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	_, err = w.Write(append(b, '\n'))

	return err
}

// JSON returns the compact JSON form of v, used as tool-result text.
func JSON(v any) (string, error) {
	b, err := jsonx.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}
