package polytrig

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire representation of a polynomial. Variables travel in display form
// ("x1", "s2"), round-tripped through the name codec.
type termJSON struct {
	Var   string    `json:"var"`
	Power PowerType `json:"power"`
}

type monomialJSON struct {
	Coefficient float64    `json:"coefficient"`
	Terms       []termJSON `json:"terms,omitempty"`
}

type polynomialJSON struct {
	Monomials []monomialJSON `json:"monomials"`
}

type sinCosJSON struct {
	Angle string `json:"angle"`
	Sin   string `json:"sin"`
	Cos   string `json:"cos"`
}

func polyToJSON(p Polynomial) polynomialJSON {
	out := polynomialJSON{Monomials: make([]monomialJSON, 0, len(p.Monomials()))}
	for _, m := range p.Monomials() {
		mj := monomialJSON{Coefficient: m.Coefficient}
		for _, t := range m.Terms {
			mj.Terms = append(mj.Terms, termJSON{Var: IDToVariableName(t.Var), Power: t.Power})
		}
		out.Monomials = append(out.Monomials, mj)
	}
	return out
}

// PolynomialToJSON renders p as its JSON wire form.
func PolynomialToJSON(p Polynomial) (string, error) {
	b, err := json.Marshal(polyToJSON(p))
	return string(b), err
}

// PolynomialFromJSON parses the JSON wire form back into a Polynomial.
// Unknown fields and non-positive powers are rejected.
func PolynomialFromJSON(data []byte) (Polynomial, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var pj polynomialJSON
	if err := dec.Decode(&pj); err != nil {
		return Polynomial{}, fmt.Errorf("polytrig: invalid polynomial JSON: %w", err)
	}
	ms := make([]Monomial, 0, len(pj.Monomials))
	for i, mj := range pj.Monomials {
		m := Monomial{Coefficient: mj.Coefficient}
		for _, tj := range mj.Terms {
			if tj.Power < 1 {
				return Polynomial{}, fmt.Errorf("polytrig: monomial %d: power must be >= 1, got %d", i, tj.Power)
			}
			id, err := ParseVariable(tj.Var)
			if err != nil {
				return Polynomial{}, fmt.Errorf("polytrig: monomial %d: %w", i, err)
			}
			m.Terms = append(m.Terms, Term{Var: id, Power: tj.Power})
		}
		ms = append(ms, m)
	}
	return fromMonomials(ms), nil
}

func sinCosMapFromJSON(entries []sinCosJSON) (SinCosMap, error) {
	out := make(SinCosMap, len(entries))
	for i, e := range entries {
		angle, err := ParseVariable(e.Angle)
		if err != nil {
			return nil, fmt.Errorf("polytrig: sincos entry %d: angle: %w", i, err)
		}
		s, err := ParseVariable(e.Sin)
		if err != nil {
			return nil, fmt.Errorf("polytrig: sincos entry %d: sin: %w", i, err)
		}
		c, err := ParseVariable(e.Cos)
		if err != nil {
			return nil, fmt.Errorf("polytrig: sincos entry %d: cos: %w", i, err)
		}
		out[angle] = SinCosVars{S: s, C: c}
	}
	return out, nil
}
