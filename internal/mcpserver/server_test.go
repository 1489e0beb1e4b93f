package mcpserver_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/internal/config"
	"github.com/katalvlaran/lvmath/internal/mcpserver"
	"github.com/katalvlaran/lvmath/internal/metrics"
)

type fixture struct {
	srv   *mcpserver.Server
	reg   *prometheus.Registry
	tools map[string]mcpserver.Tool
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	reg := prometheus.NewRegistry()
	srv := mcpserver.New("test", mcpserver.Deps{
		Config: config.Default(),
		Solver: metrics.NewSolver(reg),
		Fits:   metrics.NewFits(reg),
	})
	tools := map[string]mcpserver.Tool{}
	for _, tool := range srv.Tools() {
		tools[tool.GetTool().Name] = tool
	}

	return fixture{srv: srv, reg: reg, tools: tools}
}

// call invokes a tool handler directly and returns its text and error flag.
func (f fixture) call(t *testing.T, name string, args map[string]any) (string, bool) {
	t.Helper()
	tool, ok := f.tools[name]
	require.True(t, ok, "tool %s not registered", name)

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := tool.Handle(context.Background(), req)
	require.NoError(t, err, "input problems are tool results, not protocol errors")
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return text.Text, res.IsError
}

// TestTools_Registered checks names and required parameters.
func TestTools_Registered(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{
		mcpserver.ToolSolvePolynomial, mcpserver.ToolNormalCDF, mcpserver.ToolNormalLookup,
		mcpserver.ToolNormalQuantile, mcpserver.ToolFit, mcpserver.ToolRemaining,
	} {
		assert.Contains(t, f.tools, name)
	}
	assert.Contains(t, f.tools[mcpserver.ToolSolvePolynomial].GetTool().InputSchema.Required, "coeffs")
}

// TestSolvePolynomial covers converged, divergent and invalid solves.
func TestSolvePolynomial(t *testing.T) {
	f := newFixture(t)

	out, isErr := f.call(t, mcpserver.ToolSolvePolynomial, map[string]any{"coeffs": "1,0,-5", "guess": 2.0})
	assert.False(t, isErr)
	assert.Contains(t, out, `"status":"converged"`)
	assert.Contains(t, out, `"root":2.236`)

	// x² + 1 has no real root
	out, isErr = f.call(t, mcpserver.ToolSolvePolynomial, map[string]any{
		"coeffs": "1, 0, 1", "guess": 0.5, "max_iterations": 5.0,
	})
	assert.False(t, isErr, "divergence is a result, not an error")
	assert.Contains(t, out, `"root":null`)
	assert.Contains(t, out, `"status":"divergent"`)

	_, isErr = f.call(t, mcpserver.ToolSolvePolynomial, map[string]any{"coeffs": "1,0,-5", "guess": 2.0, "tolerance": 0.0})
	assert.True(t, isErr)
	_, isErr = f.call(t, mcpserver.ToolSolvePolynomial, map[string]any{"coeffs": "1,x", "guess": 2.0})
	assert.True(t, isErr)
	_, isErr = f.call(t, mcpserver.ToolSolvePolynomial, map[string]any{"coeffs": "1,0,-5"})
	assert.True(t, isErr, "guess is required")

	n, err := testutil.GatherAndCount(f.reg, "lvmath_newton_solves_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "converged and divergent series; rejected solves are not counted")
}

// TestNormalTools exercises the distribution tools.
func TestNormalTools(t *testing.T) {
	f := newFixture(t)

	out, isErr := f.call(t, mcpserver.ToolNormalCDF, map[string]any{"z": 0.0})
	assert.False(t, isErr)
	assert.Contains(t, out, `"p":0.5`)

	out, isErr = f.call(t, mcpserver.ToolNormalLookup, map[string]any{"z": 1.644})
	assert.False(t, isErr)
	assert.Contains(t, out, `"p":0.9495`)

	_, isErr = f.call(t, mcpserver.ToolNormalLookup, map[string]any{"z": 4.0})
	assert.True(t, isErr)

	out, isErr = f.call(t, mcpserver.ToolNormalQuantile, map[string]any{"p": 0.975})
	assert.False(t, isErr)
	assert.Contains(t, out, `"z":1.9599`)

	_, isErr = f.call(t, mcpserver.ToolNormalQuantile, map[string]any{"p": 1.0})
	assert.True(t, isErr)
	_, isErr = f.call(t, mcpserver.ToolNormalCDF, map[string]any{})
	assert.True(t, isErr)
}

// TestFitTool parses JSON observations.
func TestFitTool(t *testing.T) {
	f := newFixture(t)
	obs := `[{"s":0.5,"v":2},{"s":1,"v":3.3333333333333335},{"s":2,"v":5},{"s":4,"v":6.666666666666667},{"s":8,"v":8}]`

	out, isErr := f.call(t, mcpserver.ToolFit, map[string]any{"observations": obs, "method": "lb"})
	assert.False(t, isErr, out)
	assert.Contains(t, out, `"method":"lineweaver-burk"`)
	assert.Contains(t, out, `"n":5`)

	_, isErr = f.call(t, mcpserver.ToolFit, map[string]any{"observations": "[1,2"})
	assert.True(t, isErr)
	_, isErr = f.call(t, mcpserver.ToolFit, map[string]any{"observations": obs, "method": "eadie"})
	assert.True(t, isErr)
	_, isErr = f.call(t, mcpserver.ToolFit, map[string]any{"observations": `[{"s":1,"v":1}]`})
	assert.True(t, isErr)

	n, err := testutil.GatherAndCount(f.reg, "lvmath_kinetics_fits_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one success and one failure series")
}

// TestRemainingTool integrates the rate law.
func TestRemainingTool(t *testing.T) {
	f := newFixture(t)

	out, isErr := f.call(t, mcpserver.ToolRemaining, map[string]any{"vmax": 2.0, "km": 1.0, "s0": 5.0, "time": 1.0})
	assert.False(t, isErr, out)
	assert.Contains(t, out, `"s":3.388`)

	_, isErr = f.call(t, mcpserver.ToolRemaining, map[string]any{"vmax": 2.0, "km": 1.0, "s0": 5.0})
	assert.True(t, isErr)
	_, isErr = f.call(t, mcpserver.ToolRemaining, map[string]any{"vmax": -2.0, "km": 1.0, "s0": 5.0, "time": 1.0})
	assert.True(t, isErr)
}
