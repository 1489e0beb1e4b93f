// Package metrics exposes solver and fit outcomes as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvmath/kinetics"
	"github.com/katalvlaran/lvmath/newton"
)

const namespace = "lvmath"

// Solver counts Newton solves. A nil *Solver is valid and records nothing.
type Solver struct {
	solves      *prometheus.CounterVec
	iterations  prometheus.Histogram
	evaluations prometheus.Counter
}

// NewSolver creates the solver metrics and registers them on reg.
func NewSolver(reg prometheus.Registerer) *Solver {
	s := &Solver{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "newton",
			Name:      "solves_total",
			Help:      "Newton solves that passed validation, by outcome.",
		}, []string{"status", "reason"}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "newton",
			Name:      "iterations",
			Help:      "Newton updates performed per solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "newton",
			Name:      "evaluations_total",
			Help:      "Target function evaluations across all solves.",
		}),
	}
	reg.MustRegister(s.solves, s.iterations, s.evaluations)

	return s
}

// Observe records one finished solve.
func (s *Solver) Observe(r newton.Result) {
	if s == nil {
		return
	}
	s.solves.WithLabelValues(r.Status.String(), r.Reason.String()).Inc()
	s.iterations.Observe(float64(r.Iterations))
	s.evaluations.Add(float64(r.Evaluations))
}

// Option returns a newton option that reports every solve to s.
func (s *Solver) Option() newton.Option {
	if s == nil {
		return nil
	}

	return newton.WithOnFinish(s.Observe)
}

// Fits counts Michaelis–Menten fits. A nil *Fits is valid.
type Fits struct {
	fits *prometheus.CounterVec
	r2   prometheus.Histogram
}

// NewFits creates the fit metrics and registers them on reg.
func NewFits(reg prometheus.Registerer) *Fits {
	f := &Fits{
		fits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kinetics",
			Name:      "fits_total",
			Help:      "Michaelis–Menten fits by method and outcome.",
		}, []string{"method", "ok"}),
		r2: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kinetics",
			Name:      "fit_r2",
			Help:      "Coefficient of determination of successful fits.",
			Buckets:   []float64{0.5, 0.8, 0.9, 0.95, 0.99, 0.999},
		}),
	}
	reg.MustRegister(f.fits, f.r2)

	return f
}

// Observe records the outcome of kinetics.Fit.
func (f *Fits) Observe(m kinetics.Method, res kinetics.FitResult, err error) {
	if f == nil {
		return
	}
	f.fits.WithLabelValues(m.String(), strconv.FormatBool(err == nil)).Inc()
	if err == nil {
		f.r2.Observe(res.R2)
	}
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Handler serves the metrics gathered from g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
