package polytrig

import (
	"fmt"
	"math"
)

// SinCosVars names the placeholder variables standing for the sine and
// cosine of one angle variable.
type SinCosVars struct {
	S VarType
	C VarType
}

// SinCosMap maps an angle variable to its sine/cosine placeholders. Any
// variable appearing inside a Sin or Cos argument must have an entry.
type SinCosMap map[VarType]SinCosVars

func (m SinCosMap) clone() SinCosMap {
	out := make(SinCosMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// mergeSinCosMaps unions two maps. Entries from the right-hand operand win
// on shared keys.
func mergeSinCosMaps(a, b SinCosMap) SinCosMap {
	out := make(SinCosMap, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// TrigPoly is a Polynomial over an extended variable space in which some
// variables stand for the sines or cosines of other variables. Sines and
// cosines of degree-1 arguments decompose into polynomials of the
// per-variable placeholders via the Prosthaphaeresis formulae.
//
// TrigPoly is a value type: every operation that produces a TrigPoly deep
// copies both the polynomial and the map.
type TrigPoly struct {
	poly      Polynomial
	sinCosMap SinCosMap
}

// NewTrigConstant wraps a scalar with an empty sin/cos map.
func NewTrigConstant(scalar float64) TrigPoly {
	return TrigPoly{poly: NewConstant(scalar), sinCosMap: SinCosMap{}}
}

// WrapTrig wraps an existing polynomial with a supplied sin/cos map.
func WrapTrig(p Polynomial, m SinCosMap) TrigPoly {
	return TrigPoly{poly: p.Clone(), sinCosMap: m.clone()}
}

// NewTrigPoly builds the TrigPoly version of the angle polynomial q,
// registering that the variables of s and c represent sin(q) and cos(q).
// All three arguments must be single simple variables.
func NewTrigPoly(q, s, c Polynomial) (TrigPoly, error) {
	if q.Degree() != 1 || s.Degree() != 1 || c.Degree() != 1 {
		return TrigPoly{}, ErrInvalidDegree
	}
	qv, sv, cv := q.GetSimpleVariable(), s.GetSimpleVariable(), c.GetSimpleVariable()
	if qv == 0 || sv == 0 || cv == 0 {
		return TrigPoly{}, ErrInvalidDegree
	}
	return TrigPoly{
		poly:      q.Clone(),
		sinCosMap: SinCosMap{qv: {S: sv, C: cv}},
	}, nil
}

func (p TrigPoly) clone() TrigPoly {
	return TrigPoly{poly: p.poly.Clone(), sinCosMap: p.sinCosMap.clone()}
}

// Polynomial returns a copy of the underlying polynomial.
func (p TrigPoly) Polynomial() Polynomial { return p.poly.Clone() }

// SinCosMap returns a copy of the sin/cos placeholder map.
func (p TrigPoly) SinCosMap() SinCosMap { return p.sinCosMap.clone() }

// Degree returns the degree of the underlying polynomial.
func (p TrigPoly) Degree() int { return p.poly.Degree() }

// String renders the underlying polynomial; placeholder variables appear
// literally, e.g. s1 and c1.
func (p TrigPoly) String() string { return p.poly.String() }

// Sin rewrites sin(p) as a polynomial over p's sine/cosine placeholders.
//
// The argument must have degree at most 1. A constant becomes its numeric
// sine. A single linear term k*v requires a SinCosMap entry for v and an
// integer k: |k| = 1 substitutes the placeholder directly (sin is odd, so
// the coefficient carries through), larger magnitudes peel off one unit at
// a time via the angle-sum identity, and non-integer coefficients are
// rejected. A sum expands recursively:
// sin(a+b) = sin(a)cos(b) + cos(a)sin(b), stripping one monomial (or one
// coefficient unit) per step.
func Sin(p TrigPoly) (TrigPoly, error) {
	return expandTrig(p, true)
}

// Cos rewrites cos(p) as a polynomial over p's sine/cosine placeholders.
//
// Same contract as Sin. cos is even, so a coefficient of -1 on the linear
// term negates the substituted polynomial afterwards: cos(-q) = cos(q),
// while the raw substitution of q with c would yield -c.
// Sums expand via cos(a+b) = cos(a)cos(b) - sin(a)sin(b).
func Cos(p TrigPoly) (TrigPoly, error) {
	return expandTrig(p, false)
}

func expandTrig(p TrigPoly, sine bool) (TrigPoly, error) {
	op := "cos"
	if sine {
		op = "sin"
	}
	if p.poly.Degree() > 1 {
		return TrigPoly{}, fmt.Errorf("%s: %w", op, ErrUnsupportedDegree)
	}
	ms := p.poly.monomials
	if len(ms) == 0 {
		c := 1.0
		if sine {
			c = 0
		}
		return TrigPoly{poly: NewConstant(c), sinCosMap: p.sinCosMap.clone()}, nil
	}
	if len(ms) == 1 {
		m := ms[0]
		if len(m.Terms) == 0 {
			c := math.Cos(m.Coefficient)
			if sine {
				c = math.Sin(m.Coefficient)
			}
			return TrigPoly{poly: NewConstant(c), sinCosMap: p.sinCosMap.clone()}, nil
		}
		if len(m.Terms) > 1 {
			// Cross terms like x*y have product degree 1 but are not affine.
			return TrigPoly{}, fmt.Errorf("%s: %w", op, ErrUnsupportedDegree)
		}
		sc, ok := p.sinCosMap[m.Terms[0].Var]
		if !ok {
			return TrigPoly{}, fmt.Errorf("%s of %s: %w",
				op, IDToVariableName(m.Terms[0].Var), ErrUnmappedVariable)
		}
		k := m.Coefficient
		if math.Abs(k) != 1 {
			if k != math.Trunc(k) {
				return TrigPoly{}, fmt.Errorf("%s: coefficient %g: %w",
					op, k, ErrUnsupportedCoefficient)
			}
			// Integer coefficients peel off one unit: k*v = sign(k)*v + (k-sign(k))*v.
			step := math.Copysign(1, k)
			a := TrigPoly{poly: NewMonomial(step, m.Terms), sinCosMap: p.sinCosMap}
			b := TrigPoly{poly: NewMonomial(k-step, m.Terms), sinCosMap: p.sinCosMap}
			return trigAngleSum(a, b, sine)
		}
		ret := p.clone()
		if sine {
			ret.poly.Subs(m.Terms[0].Var, sc.S)
			return ret, nil
		}
		ret.poly.Subs(m.Terms[0].Var, sc.C)
		if k == -1 {
			ret.poly.ScaleAssign(-1)
		}
		return ret, nil
	}

	// sin(a+b+...) = sin(a)cos(b+...) + cos(a)sin(b+...)
	// cos(a+b+...) = cos(a)cos(b+...) - sin(a)sin(b+...)
	a := TrigPoly{poly: NewMonomial(ms[0].Coefficient, ms[0].Terms), sinCosMap: p.sinCosMap}
	b := TrigPoly{poly: fromMonomials(ms[1:]), sinCosMap: p.sinCosMap}
	return trigAngleSum(a, b, sine)
}

func trigAngleSum(a, b TrigPoly, sine bool) (TrigPoly, error) {
	sa, err := Sin(a)
	if err != nil {
		return TrigPoly{}, err
	}
	ca, err := Cos(a)
	if err != nil {
		return TrigPoly{}, err
	}
	sb, err := Sin(b)
	if err != nil {
		return TrigPoly{}, err
	}
	cb, err := Cos(b)
	if err != nil {
		return TrigPoly{}, err
	}
	if sine {
		return sa.Mul(cb).Add(ca.Mul(sb)), nil
	}
	return ca.Mul(cb).Sub(sa.Mul(sb)), nil
}

// AddAssign adds other into the receiver and unions the sin/cos maps.
func (p *TrigPoly) AddAssign(other TrigPoly) {
	p.poly.AddAssign(other.poly)
	p.sinCosMap = mergeSinCosMaps(p.sinCosMap, other.sinCosMap)
}

// SubAssign subtracts other from the receiver and unions the sin/cos maps.
func (p *TrigPoly) SubAssign(other TrigPoly) {
	p.poly.SubAssign(other.poly)
	p.sinCosMap = mergeSinCosMaps(p.sinCosMap, other.sinCosMap)
}

// MulAssign multiplies the receiver by other and unions the sin/cos maps.
func (p *TrigPoly) MulAssign(other TrigPoly) {
	p.poly.MulAssign(other.poly)
	p.sinCosMap = mergeSinCosMaps(p.sinCosMap, other.sinCosMap)
}

// AddScalarAssign adds a scalar in place.
func (p *TrigPoly) AddScalarAssign(scalar float64) { p.poly.AddScalarAssign(scalar) }

// SubScalarAssign subtracts a scalar in place.
func (p *TrigPoly) SubScalarAssign(scalar float64) { p.poly.SubScalarAssign(scalar) }

// ScaleAssign multiplies every coefficient by scalar.
func (p *TrigPoly) ScaleAssign(scalar float64) { p.poly.ScaleAssign(scalar) }

// DivScalarAssign divides every coefficient by scalar.
func (p *TrigPoly) DivScalarAssign(scalar float64) { p.poly.DivScalarAssign(scalar) }

// Add returns p + other.
func (p TrigPoly) Add(other TrigPoly) TrigPoly {
	r := p.clone()
	r.AddAssign(other)
	return r
}

// Sub returns p - other.
func (p TrigPoly) Sub(other TrigPoly) TrigPoly {
	r := p.clone()
	r.SubAssign(other)
	return r
}

// Mul returns p * other.
func (p TrigPoly) Mul(other TrigPoly) TrigPoly {
	r := p.clone()
	r.MulAssign(other)
	return r
}

// Neg returns -p.
func (p TrigPoly) Neg() TrigPoly {
	r := p.clone()
	r.ScaleAssign(-1)
	return r
}

// AddScalar returns p + scalar.
func (p TrigPoly) AddScalar(scalar float64) TrigPoly {
	r := p.clone()
	r.AddScalarAssign(scalar)
	return r
}

// SubScalar returns p - scalar.
func (p TrigPoly) SubScalar(scalar float64) TrigPoly {
	r := p.clone()
	r.SubScalarAssign(scalar)
	return r
}

// Scale returns p * scalar.
func (p TrigPoly) Scale(scalar float64) TrigPoly {
	r := p.clone()
	r.ScaleAssign(scalar)
	return r
}

// DivScalar returns p / scalar.
func (p TrigPoly) DivScalar(scalar float64) TrigPoly {
	r := p.clone()
	r.DivScalarAssign(scalar)
	return r
}
