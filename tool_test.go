package polytrig

import (
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, tool, params string) ToolResponse {
	t.Helper()
	return HandleToolCall(ToolRequest{Tool: tool, Params: []byte(params)})
}

// quadJSON is (x-1)^2 in wire form.
const quadJSON = `{"monomials": [
	{"coefficient": 1, "terms": [{"var": "x1", "power": 2}]},
	{"coefficient": -2, "terms": [{"var": "x1", "power": 1}]},
	{"coefficient": 1}
]}`

func TestHandleToolCall_Render(t *testing.T) {
	resp := callTool(t, "render", fmt.Sprintf(`{"polynomial": %s}`, quadJSON))
	require.Empty(t, resp.Error)
	assert.Equal(t, "x1^2 + -2*x1 + 1", resp.String)
}

func TestHandleToolCall_Degree(t *testing.T) {
	resp := callTool(t, "degree", fmt.Sprintf(`{"polynomial": %s}`, quadJSON))
	require.Empty(t, resp.Error)
	assert.Equal(t, 2, resp.Result)
}

func TestHandleToolCall_Coefficients(t *testing.T) {
	resp := callTool(t, "coefficients", fmt.Sprintf(`{"polynomial": %s}`, quadJSON))
	require.Empty(t, resp.Error)
	assert.Equal(t, []float64{1, -2, 1}, resp.Result)
}

func TestHandleToolCall_Value(t *testing.T) {
	resp := callTool(t, "value", fmt.Sprintf(`{"polynomial": %s, "at": 4}`, quadJSON))
	require.Empty(t, resp.Error)
	assert.InDelta(t, 9.0, resp.Result.(float64), 1e-12)

	resp = callTool(t, "value", fmt.Sprintf(`{"polynomial": %s}`, quadJSON))
	assert.Contains(t, resp.Error, "missing param: at")
}

func TestHandleToolCall_Evaluate(t *testing.T) {
	resp := callTool(t, "evaluate",
		fmt.Sprintf(`{"polynomial": %s, "assignments": {"x1": 4}}`, quadJSON))
	require.Empty(t, resp.Error)
	assert.InDelta(t, 9.0, resp.Result.(float64), 1e-12)

	resp = callTool(t, "evaluate", fmt.Sprintf(`{"polynomial": %s}`, quadJSON))
	assert.NotEmpty(t, resp.Error)
}

func TestHandleToolCall_EvaluatePartial(t *testing.T) {
	// x*y + 1 with x = 3 leaves 3*y + 1.
	resp := callTool(t, "evaluate_partial",
		`{"polynomial": {"monomials": [
			{"coefficient": 1, "terms": [{"var": "x1", "power": 1}, {"var": "y1", "power": 1}]},
			{"coefficient": 1}
		]}, "assignments": {"x1": 3}}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, "3*y1 + 1", resp.String)
}

func TestHandleToolCall_Derivative(t *testing.T) {
	resp := callTool(t, "derivative", fmt.Sprintf(`{"polynomial": %s}`, quadJSON))
	require.Empty(t, resp.Error)
	assert.Equal(t, "2*x1 + -2", resp.String)

	resp = callTool(t, "derivative", fmt.Sprintf(`{"polynomial": %s, "order": 2}`, quadJSON))
	require.Empty(t, resp.Error)
	assert.Equal(t, "2", resp.String)
}

func TestHandleToolCall_Integral(t *testing.T) {
	resp := callTool(t, "integral",
		`{"polynomial": {"monomials": [
			{"coefficient": 2, "terms": [{"var": "x1", "power": 1}]}
		]}, "constant": 4}`)
	require.Empty(t, resp.Error)
	assert.Equal(t, "x1^2 + 4", resp.String)
}

func TestHandleToolCall_Roots(t *testing.T) {
	// (x-2)(x-3) = x^2 - 5x + 6
	resp := callTool(t, "roots",
		`{"polynomial": {"monomials": [
			{"coefficient": 1, "terms": [{"var": "x1", "power": 2}]},
			{"coefficient": -5, "terms": [{"var": "x1", "power": 1}]},
			{"coefficient": 6}
		]}}`)
	require.Empty(t, resp.Error)

	roots, ok := resp.Result.([]map[string]float64)
	require.True(t, ok)
	require.Len(t, roots, 2)
	sort.Slice(roots, func(i, j int) bool { return roots[i]["real"] < roots[j]["real"] })
	assert.InDelta(t, 2.0, roots[0]["real"], 1e-9)
	assert.InDelta(t, 3.0, roots[1]["real"], 1e-9)
}

func TestHandleToolCall_SinCos(t *testing.T) {
	params := `{"polynomial": {"monomials": [
		{"coefficient": 1, "terms": [{"var": "x1", "power": 1}]}
	]}, "sincos": [{"angle": "x1", "sin": "s1", "cos": "c1"}]}`

	resp := callTool(t, "sin", params)
	require.Empty(t, resp.Error)
	assert.Equal(t, "s1", resp.String)

	resp = callTool(t, "cos", params)
	require.Empty(t, resp.Error)
	assert.Equal(t, "c1", resp.String)

	// Missing mapping surfaces the engine error.
	resp = callTool(t, "sin", `{"polynomial": {"monomials": [
		{"coefficient": 1, "terms": [{"var": "x1", "power": 1}]}
	]}}`)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleToolCall_Failures(t *testing.T) {
	resp := callTool(t, "nope", fmt.Sprintf(`{"polynomial": %s}`, quadJSON))
	assert.Contains(t, resp.Error, "unknown tool")

	resp = callTool(t, "render", `{}`)
	assert.Contains(t, resp.Error, "missing param: polynomial")

	resp = callTool(t, "render", `{"polynomial": {"monomials": []}, "bogus": 1}`)
	assert.Contains(t, resp.Error, "invalid params")

	// Univariate-only operations report the engine error.
	resp = callTool(t, "coefficients", `{"polynomial": {"monomials": [
		{"coefficient": 1, "terms": [{"var": "x1", "power": 1}, {"var": "y1", "power": 1}]}
	]}}`)
	assert.NotEmpty(t, resp.Error)
}

func TestToolSpec_IsValidJSON(t *testing.T) {
	var spec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(ToolSpec()), &spec))
	tools, ok := spec["tools"].([]interface{})
	require.True(t, ok)
	assert.Len(t, tools, 11)
}
