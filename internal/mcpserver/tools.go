package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/katalvlaran/lvmath/internal/jsonx"
	"github.com/katalvlaran/lvmath/internal/metrics"
	"github.com/katalvlaran/lvmath/internal/report"
	"github.com/katalvlaran/lvmath/kinetics"
	"github.com/katalvlaran/lvmath/newton"
	"github.com/katalvlaran/lvmath/normal"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "lvmath."

// Tool names
const (
	ToolSolvePolynomial = ToolPrefix + "solve_polynomial"
	ToolNormalCDF       = ToolPrefix + "normal_cdf"
	ToolNormalLookup    = ToolPrefix + "normal_lookup"
	ToolNormalQuantile  = ToolPrefix + "normal_quantile"
	ToolFit             = ToolPrefix + "fit_michaelis_menten"
	ToolRemaining       = ToolPrefix + "substrate_remaining"
)

var errMissing = errors.New("parameter is required")

// requireFloat reads a numeric argument that has no default.
func requireFloat(req mcp.CallToolRequest, key string) (float64, error) {
	if _, ok := req.GetArguments()[key]; !ok {
		return 0, fmt.Errorf("%s: %w", key, errMissing)
	}

	return mcp.ParseFloat64(req, key, 0), nil
}

// textResult renders v as JSON tool output.
func textResult(v any) (*mcp.CallToolResult, error) {
	s, err := report.JSON(v)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(s), nil
}

// parseCoeffs parses "1, 0, -5" into coefficients, highest degree first.
func parseCoeffs(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("coeffs: %w", err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("coeffs: %w", errMissing)
	}

	return out, nil
}

// SolvePolynomialTool finds a root of a polynomial with Newton's method.
type SolvePolynomialTool struct {
	tolerance float64
	maxIter   int
	solver    *metrics.Solver
	log       *slog.Logger
}

// NewSolvePolynomialTool creates the tool with defaults from d.Config.
func NewSolvePolynomialTool(d Deps) *SolvePolynomialTool {
	return &SolvePolynomialTool{
		tolerance: d.Config.Solver.Tolerance,
		maxIter:   d.Config.Solver.MaxIterations,
		solver:    d.Solver,
		log:       d.Log,
	}
}

// GetTool returns the MCP tool definition
func (t *SolvePolynomialTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSolvePolynomial,
		mcp.WithDescription("Find x with p(x) = target by Newton's method. A divergent solve is reported with root null and a reason."),
		mcp.WithString("coeffs", mcp.Required(), mcp.Description("Comma-separated coefficients, highest degree first, e.g. \"1,0,-5\" for x^2-5")),
		mcp.WithNumber("guess", mcp.Required(), mcp.Description("Initial guess")),
		mcp.WithNumber("target", mcp.Description("Target value (default 0)")),
		mcp.WithNumber("tolerance", mcp.Description("Convergence tolerance and finite-difference step")),
		mcp.WithNumber("max_iterations", mcp.Description("Iteration budget")),
	)
}

// Handle processes the tool request
func (t *SolvePolynomialTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coeffs, err := parseCoeffs(mcp.ParseString(req, "coeffs", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	guess, err := requireFloat(req, "guess")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target := mcp.ParseFloat64(req, "target", 0)
	tol := mcp.ParseFloat64(req, "tolerance", t.tolerance)
	maxIter := int(mcp.ParseFloat64(req, "max_iterations", float64(t.maxIter)))
	if maxIter < 1 {
		return mcp.NewToolResultError("max_iterations must be >= 1"), nil
	}

	res, err := newton.SolveResult(newton.Polynomial(coeffs...), []float64{guess}, target, tol,
		newton.WithMaxIterations(maxIter),
		t.solver.Option(),
		newton.WithOnIteration(func(s newton.Step) {
			t.log.DebugContext(ctx, "newton step",
				"iteration", s.Iteration, "guess", s.Guess, "output", s.Output, "slope", s.Slope)
		}),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	t.log.InfoContext(ctx, "solve finished", "status", res.Status, "reason", res.Reason, "iterations", res.Iterations)

	return textResult(report.FromResult(res))
}

// NormalCDFTool evaluates Φ(z) and φ(z).
type NormalCDFTool struct{}

// NewNormalCDFTool creates the tool.
func NewNormalCDFTool(Deps) *NormalCDFTool { return &NormalCDFTool{} }

// GetTool returns the MCP tool definition
func (t *NormalCDFTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNormalCDF,
		mcp.WithDescription("Standard normal cumulative probability and density at z"),
		mcp.WithNumber("z", mcp.Required(), mcp.Description("Standard score")),
	)
}

// Handle processes the tool request
func (t *NormalCDFTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	z, err := requireFloat(req, "z")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return textResult(report.Normal{Z: z, P: normal.CDF(z), PDF: normal.PDF(z)})
}

// NormalLookupTool reads the printed four-place z-table.
type NormalLookupTool struct{}

// NewNormalLookupTool creates the tool.
func NewNormalLookupTool(Deps) *NormalLookupTool { return &NormalLookupTool{} }

// GetTool returns the MCP tool definition
func (t *NormalLookupTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNormalLookup,
		mcp.WithDescription("Look up z (rounded to two places, |z| <= 3.49) in the four-place standard normal table"),
		mcp.WithNumber("z", mcp.Required(), mcp.Description("Standard score")),
	)
}

// Handle processes the tool request
func (t *NormalLookupTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	z, err := requireFloat(req, "z")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := normal.Lookup(z)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return textResult(report.Normal{Z: z, P: p})
}

// NormalQuantileTool inverts Φ.
type NormalQuantileTool struct {
	log *slog.Logger
}

// NewNormalQuantileTool creates the tool.
func NewNormalQuantileTool(d Deps) *NormalQuantileTool { return &NormalQuantileTool{log: d.Log} }

// GetTool returns the MCP tool definition
func (t *NormalQuantileTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolNormalQuantile,
		mcp.WithDescription("Standard score z with Phi(z) = p, for 0 < p < 1"),
		mcp.WithNumber("p", mcp.Required(), mcp.Description("Cumulative probability")),
	)
}

// Handle processes the tool request
func (t *NormalQuantileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := requireFloat(req, "p")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	z, err := normal.Quantile(p)
	if err != nil {
		t.log.WarnContext(ctx, "quantile failed", "p", p, "err", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return textResult(report.Normal{Z: z, P: p})
}

// FitTool fits Michaelis–Menten constants to observations.
type FitTool struct {
	fits *metrics.Fits
}

// NewFitTool creates the tool.
func NewFitTool(d Deps) *FitTool { return &FitTool{fits: d.Fits} }

// GetTool returns the MCP tool definition
func (t *FitTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolFit,
		mcp.WithDescription("Estimate Vmax and Km from (substrate, velocity) observations by linearised least squares"),
		mcp.WithString("observations", mcp.Required(), mcp.Description(`JSON array like [{"s":0.5,"v":2.1},{"s":1,"v":3.2}]`)),
		mcp.WithString("method", mcp.Description("hanes-woolf (default) or lineweaver-burk")),
	)
}

// Handle processes the tool request
func (t *FitTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := mcp.ParseString(req, "observations", "")
	if raw == "" {
		return mcp.NewToolResultError("observations parameter is required"), nil
	}
	var obs []kinetics.Observation
	if err := jsonx.Unmarshal([]byte(raw), &obs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("observations: %v", err)), nil
	}
	m, err := kinetics.ParseMethod(mcp.ParseString(req, "method", kinetics.HanesWoolf.String()))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := kinetics.Fit(obs, m)
	t.fits.Observe(m, res, err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return textResult(report.FromFit(res))
}

// RemainingTool integrates the rate law over time.
type RemainingTool struct {
	tolerance float64
}

// NewRemainingTool creates the tool.
func NewRemainingTool(d Deps) *RemainingTool {
	return &RemainingTool{tolerance: d.Config.Solver.Tolerance}
}

// GetTool returns the MCP tool definition
func (t *RemainingTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolRemaining,
		mcp.WithDescription("Substrate concentration left after time t under Michaelis-Menten kinetics"),
		mcp.WithNumber("vmax", mcp.Required(), mcp.Description("Maximum rate")),
		mcp.WithNumber("km", mcp.Required(), mcp.Description("Michaelis constant")),
		mcp.WithNumber("s0", mcp.Required(), mcp.Description("Initial substrate concentration")),
		mcp.WithNumber("time", mcp.Required(), mcp.Description("Elapsed time")),
	)
}

// Handle processes the tool request
func (t *RemainingTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var vals [4]float64
	for i, key := range []string{"vmax", "km", "s0", "time"} {
		v, err := requireFloat(req, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		vals[i] = v
	}
	p := kinetics.Params{Vmax: vals[0], Km: vals[1]}
	s, err := p.Remaining(vals[2], vals[3], t.tolerance)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return textResult(report.Substrate{S: s})
}
