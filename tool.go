package polytrig

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToolRequest is one tool call against the engine, suitable for agent
// frameworks and the HTTP server in cmd/polytrig-server.
type ToolRequest struct {
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params"`
}

// ToolResponse carries the outcome of a tool call. String holds the
// rendered form where one exists; Error is empty on success.
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type toolParams struct {
	Polynomial  json.RawMessage    `json:"polynomial"`
	Order       uint               `json:"order,omitempty"`
	Constant    float64            `json:"constant,omitempty"`
	At          *float64           `json:"at,omitempty"`
	Assignments map[string]float64 `json:"assignments,omitempty"`
	SinCos      []sinCosJSON       `json:"sincos,omitempty"`
}

func errResponse(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

// HandleToolCall dispatches a ToolRequest to the engine and packages the
// result. Errors are reported in the response, never panicked.
func HandleToolCall(req ToolRequest) ToolResponse {
	var params toolParams
	if len(req.Params) > 0 {
		dec := json.NewDecoder(bytes.NewReader(req.Params))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&params); err != nil {
			return errResponse(fmt.Errorf("invalid params: %w", err))
		}
	}
	if len(params.Polynomial) == 0 {
		return errResponse(fmt.Errorf("missing param: polynomial"))
	}
	p, err := PolynomialFromJSON(params.Polynomial)
	if err != nil {
		return errResponse(err)
	}

	assignments := func() (map[VarType]float64, error) {
		env := make(map[VarType]float64, len(params.Assignments))
		for name, v := range params.Assignments {
			id, err := ParseVariable(name)
			if err != nil {
				return nil, err
			}
			env[id] = v
		}
		return env, nil
	}

	switch req.Tool {
	case "render":
		return ToolResponse{String: p.String()}

	case "degree":
		return ToolResponse{Result: p.Degree(), String: p.String()}

	case "coefficients":
		coeffs, err := p.Coefficients()
		if err != nil {
			return errResponse(err)
		}
		return ToolResponse{Result: coeffs, String: p.String()}

	case "value":
		if params.At == nil {
			return errResponse(fmt.Errorf("missing param: at"))
		}
		v, err := p.Value(*params.At)
		if err != nil {
			return errResponse(err)
		}
		return ToolResponse{Result: v}

	case "evaluate":
		env, err := assignments()
		if err != nil {
			return errResponse(err)
		}
		v, err := p.Evaluate(env)
		if err != nil {
			return errResponse(err)
		}
		return ToolResponse{Result: v}

	case "evaluate_partial":
		env, err := assignments()
		if err != nil {
			return errResponse(err)
		}
		q := p.EvaluatePartial(env)
		return ToolResponse{Result: polyToJSON(q), String: q.String()}

	case "derivative":
		order := params.Order
		if order == 0 {
			order = 1
		}
		d, err := p.Derivative(order)
		if err != nil {
			return errResponse(err)
		}
		return ToolResponse{Result: polyToJSON(d), String: d.String()}

	case "integral":
		in, err := p.Integral(params.Constant)
		if err != nil {
			return errResponse(err)
		}
		return ToolResponse{Result: polyToJSON(in), String: in.String()}

	case "roots":
		roots, err := p.Roots()
		if err != nil {
			return errResponse(err)
		}
		out := make([]map[string]float64, len(roots))
		for i, r := range roots {
			out[i] = map[string]float64{"real": real(r), "imag": imag(r)}
		}
		return ToolResponse{Result: out}

	case "sin", "cos":
		scm, err := sinCosMapFromJSON(params.SinCos)
		if err != nil {
			return errResponse(err)
		}
		tp := WrapTrig(p, scm)
		var expanded TrigPoly
		if req.Tool == "sin" {
			expanded, err = Sin(tp)
		} else {
			expanded, err = Cos(tp)
		}
		if err != nil {
			return errResponse(err)
		}
		return ToolResponse{Result: polyToJSON(expanded.Polynomial()), String: expanded.String()}
	}
	return errResponse(fmt.Errorf("unknown tool: %s", req.Tool))
}

// ToolSpec returns the JSON tool schema for agent registration.
func ToolSpec() string {
	return `{
  "tools": [
    {"name": "render", "params": {"polynomial": "object"}},
    {"name": "degree", "params": {"polynomial": "object"}},
    {"name": "coefficients", "params": {"polynomial": "object"}},
    {"name": "value", "params": {"polynomial": "object", "at": "number"}},
    {"name": "evaluate", "params": {"polynomial": "object", "assignments": "object"}},
    {"name": "evaluate_partial", "params": {"polynomial": "object", "assignments": "object"}},
    {"name": "derivative", "params": {"polynomial": "object", "order": "integer"}},
    {"name": "integral", "params": {"polynomial": "object", "constant": "number"}},
    {"name": "roots", "params": {"polynomial": "object"}},
    {"name": "sin", "params": {"polynomial": "object", "sincos": "array"}},
    {"name": "cos", "params": {"polynomial": "object", "sincos": "array"}}
  ],
  "polynomial": {"monomials": [{"coefficient": "number", "terms": [{"var": "string", "power": "integer"}]}]},
  "sincos": [{"angle": "string", "sin": "string", "cos": "string"}]
}`
}
