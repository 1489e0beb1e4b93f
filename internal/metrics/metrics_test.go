package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/internal/metrics"
	"github.com/katalvlaran/lvmath/kinetics"
	"github.com/katalvlaran/lvmath/newton"
)

// TestSolver_Observe drives real solves through the finish hook.
func TestSolver_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := metrics.NewSolver(reg)

	sq := func(p []float64) float64 { return p[0]*p[0] - 5 }
	flat := func([]float64) float64 { return 1 }

	_, err := newton.Solve(sq, []float64{2}, 0, 1e-5, s.Option())
	require.NoError(t, err)
	_, err = newton.Solve(flat, []float64{0}, 0, 1e-5, s.Option())
	require.NoError(t, err)
	_, err = newton.Solve(sq, []float64{2}, 0, 0, s.Option())
	require.ErrorIs(t, err, newton.ErrInvalidTolerance, "rejected solves are not observed")

	m, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, m, 3)

	n, err := testutil.GatherAndCount(reg, "lvmath_newton_solves_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per (status, reason)")
}

// TestSolver_Counts checks label values and totals.
func TestSolver_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := metrics.NewSolver(reg)

	s.Observe(newton.Result{Status: newton.Converged, Iterations: 3, Evaluations: 6})
	s.Observe(newton.Result{Status: newton.Divergent, Reason: newton.ReasonIterationLimit, Iterations: 100, Evaluations: 200})
	s.Observe(newton.Result{Status: newton.Converged, Iterations: 4, Evaluations: 8})

	mfs, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				key := mf.GetName()
				for _, lp := range m.GetLabel() {
					key += "/" + lp.GetValue()
				}
				byName[key] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				byName[mf.GetName()+"/count"] = float64(m.GetHistogram().GetSampleCount())
				byName[mf.GetName()+"/sum"] = m.GetHistogram().GetSampleSum()
			}
		}
	}
	assert.Equal(t, 2.0, byName["lvmath_newton_solves_total/none/converged"])
	assert.Equal(t, 1.0, byName["lvmath_newton_solves_total/iteration_limit/divergent"])
	assert.Equal(t, 214.0, byName["lvmath_newton_evaluations_total"])
	assert.Equal(t, 3.0, byName["lvmath_newton_iterations/count"])
	assert.Equal(t, 107.0, byName["lvmath_newton_iterations/sum"])
}

// TestNilCollectors verifies disabled metrics are no-ops.
func TestNilCollectors(t *testing.T) {
	var s *metrics.Solver
	var f *metrics.Fits
	assert.Nil(t, s.Option())
	assert.NotPanics(t, func() {
		s.Observe(newton.Result{})
		f.Observe(kinetics.HanesWoolf, kinetics.FitResult{}, nil)
	})
	root, err := newton.Solve(func(p []float64) float64 { return p[0] }, []float64{1}, 0, 1e-6, s.Option())
	require.NoError(t, err)
	assert.InDelta(t, 0, root, 1e-6)
}

// TestFits_Observe counts successes and failures per method.
func TestFits_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := metrics.NewFits(reg)

	f.Observe(kinetics.HanesWoolf, kinetics.FitResult{R2: 0.99}, nil)
	f.Observe(kinetics.LineweaverBurk, kinetics.FitResult{}, errors.New("boom"))

	n, err := testutil.GatherAndCount(reg, "lvmath_kinetics_fits_total", "lvmath_kinetics_fit_r2")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// TestHandler serves the text exposition format.
func TestHandler(t *testing.T) {
	reg := metrics.NewRegistry()
	metrics.NewSolver(reg).Observe(newton.Result{Status: newton.Converged, Iterations: 1, Evaluations: 2})

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `lvmath_newton_solves_total{reason="none",status="converged"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
