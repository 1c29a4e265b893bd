package polytrig

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// PowerType is the exponent of a variable within a term. Powers stored in
// a Term are always >= 1; an absent variable has implicit power 0.
type PowerType int

// Term is one (variable, power) pair inside a monomial.
type Term struct {
	Var   VarType
	Power PowerType
}

// Monomial is a coefficient times a product of variable powers. The terms
// of a monomial always have pairwise-distinct variables.
type Monomial struct {
	Coefficient float64
	Terms       []Term
}

func cloneTerms(ts []Term) []Term {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Term, len(ts))
	copy(out, ts)
	return out
}

func (m Monomial) clone() Monomial {
	return Monomial{Coefficient: m.Coefficient, Terms: cloneTerms(m.Terms)}
}

// Degree returns the product of all term powers (the msspoly convention),
// not the usual sum of powers: a monomial with powers {2,3} has degree 6.
func (m Monomial) Degree() int {
	if len(m.Terms) == 0 {
		return 0
	}
	degree := int(m.Terms[0].Power)
	for _, t := range m.Terms[1:] {
		degree *= int(t.Power)
	}
	return degree
}

// DegreeOf returns the power of v in this monomial, or 0 if absent.
func (m Monomial) DegreeOf(v VarType) PowerType {
	for _, t := range m.Terms {
		if t.Var == v {
			return t.Power
		}
	}
	return 0
}

// HasSameExponents reports whether both monomials have identical term sets,
// ignoring term order and coefficients.
func (m Monomial) HasSameExponents(other Monomial) bool {
	if len(m.Terms) != len(other.Terms) {
		return false
	}
	for _, t := range m.Terms {
		if other.DegreeOf(t.Var) != t.Power {
			return false
		}
	}
	return true
}

// Factor divides this monomial by divisor. It succeeds only when every
// divisor variable appears here with at least as great a power; on failure
// the second return value is false and the quotient must be ignored.
func (m Monomial) Factor(divisor Monomial) (Monomial, bool) {
	result := Monomial{Coefficient: m.Coefficient / divisor.Coefficient}
	for _, t := range m.Terms {
		dp := divisor.DegreeOf(t.Var)
		if t.Power < dp {
			return Monomial{}, false
		}
		if rem := t.Power - dp; rem > 0 {
			result.Terms = append(result.Terms, Term{Var: t.Var, Power: rem})
		}
	}
	for _, dt := range divisor.Terms {
		if m.DegreeOf(dt.Var) == 0 {
			return Monomial{}, false
		}
	}
	return result, true
}

// String renders the monomial as coefficient*name^power*... The coefficient
// is omitted when it is exactly 1 and at least one term is present.
func (m Monomial) String() string {
	var parts []string
	if len(m.Terms) == 0 || m.Coefficient != 1 {
		parts = append(parts, strconv.FormatFloat(m.Coefficient, 'g', -1, 64))
	}
	for _, t := range m.Terms {
		s := IDToVariableName(t.Var)
		if t.Power != 1 {
			s += "^" + strconv.Itoa(int(t.Power))
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "*")
}

// Polynomial is a sum of monomials. Monomial order is insignificant; after
// any mutating operation no two monomials share an exponent vector. It is a
// value type: operations that return a Polynomial never alias the receiver.
type Polynomial struct {
	monomials    []Monomial
	isUnivariate bool
}

// NewConstant constructs a polynomial holding a single constant monomial.
func NewConstant(scalar float64) Polynomial {
	return Polynomial{
		monomials:    []Monomial{{Coefficient: scalar}},
		isUnivariate: true,
	}
}

// NewMonomial constructs a single-monomial polynomial from a coefficient
// and a term list, merging terms that repeat a variable by summing powers.
func NewMonomial(coefficient float64, terms []Term) Polynomial {
	m := Monomial{Coefficient: coefficient}
	for _, t := range terms {
		merged := false
		for i := range m.Terms {
			if m.Terms[i].Var == t.Var {
				m.Terms[i].Power += t.Power
				merged = true
				break
			}
		}
		if !merged {
			m.Terms = append(m.Terms, t)
		}
	}
	return Polynomial{
		monomials:    []Monomial{m},
		isUnivariate: len(m.Terms) <= 1,
	}
}

// NewVariable constructs the linear polynomial 1*name with the given
// one-based index.
func NewVariable(name string, index uint64) (Polynomial, error) {
	id, err := VariableNameToID(name, index)
	if err != nil {
		return Polynomial{}, err
	}
	return NewLinearTerm(1, id), nil
}

// Var is the panicking convenience form of NewVariable with index 1.
func Var(name string) Polynomial {
	p, err := NewVariable(name, 1)
	if err != nil {
		panic(err)
	}
	return p
}

// NewLinearTerm constructs the polynomial coeff*v for an existing id.
func NewLinearTerm(coeff float64, v VarType) Polynomial {
	return Polynomial{
		monomials:    []Monomial{{Coefficient: coeff, Terms: []Term{{Var: v, Power: 1}}}},
		isUnivariate: true,
	}
}

// fromMonomials builds a polynomial from a monomial range, de-duplicating
// exponent vectors. Used by term-elision paths such as partial evaluation
// and the angle-sum split.
func fromMonomials(ms []Monomial) Polynomial {
	p := Polynomial{monomials: make([]Monomial, 0, len(ms))}
	for _, m := range ms {
		p.monomials = append(p.monomials, m.clone())
	}
	p.makeMonomialsUnique()
	return p
}

// Clone returns an independent deep copy.
func (p Polynomial) Clone() Polynomial {
	out := Polynomial{
		monomials:    make([]Monomial, len(p.monomials)),
		isUnivariate: p.isUnivariate,
	}
	for i, m := range p.monomials {
		out.monomials[i] = m.clone()
	}
	return out
}

// Monomials exposes the internal monomial collection. Callers must not
// mutate it.
func (p Polynomial) Monomials() []Monomial { return p.monomials }

// NumberOfCoefficients returns the number of monomials.
func (p Polynomial) NumberOfCoefficients() int { return len(p.monomials) }

// IsUnivariate reports whether every non-constant monomial consists of a
// single term and all such terms share one variable.
func (p Polynomial) IsUnivariate() bool { return p.isUnivariate }

// Degree returns the maximum monomial degree (product-of-powers convention).
func (p Polynomial) Degree() int {
	max := 0
	for _, m := range p.monomials {
		if d := m.Degree(); d > max {
			max = d
		}
	}
	return max
}

// GetSimpleVariable returns the variable id when the polynomial is exactly
// one monomial with one power-1 term, and 0 otherwise.
func (p Polynomial) GetSimpleVariable() VarType {
	if len(p.monomials) != 1 {
		return 0
	}
	if len(p.monomials[0].Terms) != 1 {
		return 0
	}
	if p.monomials[0].Terms[0].Power != 1 {
		return 0
	}
	return p.monomials[0].Terms[0].Var
}

// Variables returns the sorted set of variable ids appearing anywhere in
// the polynomial.
func (p Polynomial) Variables() []VarType {
	seen := map[VarType]struct{}{}
	for _, m := range p.monomials {
		for _, t := range m.Terms {
			seen[t.Var] = struct{}{}
		}
	}
	out := make([]VarType, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// makeMonomialsUnique merges monomials with identical exponent vectors,
// accumulating coefficients, and recomputes the univariate flag.
func (p *Polynomial) makeMonomialsUnique() {
	for i := len(p.monomials) - 1; i >= 0; i-- {
		mi := p.monomials[i]
		for j := 0; j < i; j++ {
			if mi.HasSameExponents(p.monomials[j]) {
				p.monomials[j].Coefficient += mi.Coefficient
				p.monomials = append(p.monomials[:i], p.monomials[i+1:]...)
				break
			}
		}
	}
	p.refreshUnivariate()
}

func (p *Polynomial) refreshUnivariate() {
	p.isUnivariate = true
	var seen VarType
	for _, m := range p.monomials {
		if len(m.Terms) == 0 {
			continue
		}
		if len(m.Terms) > 1 {
			p.isUnivariate = false
			return
		}
		switch {
		case seen == 0:
			seen = m.Terms[0].Var
		case m.Terms[0].Var != seen:
			p.isUnivariate = false
			return
		}
	}
}

// AddAssign adds other into the receiver.
func (p *Polynomial) AddAssign(other Polynomial) {
	for _, m := range other.monomials {
		p.monomials = append(p.monomials, m.clone())
	}
	p.makeMonomialsUnique()
}

// SubAssign subtracts other from the receiver.
func (p *Polynomial) SubAssign(other Polynomial) {
	for _, m := range other.monomials {
		neg := m.clone()
		neg.Coefficient = -neg.Coefficient
		p.monomials = append(p.monomials, neg)
	}
	p.makeMonomialsUnique()
}

// MulAssign multiplies the receiver by other: the Cartesian product of
// monomials, merging term lists per variable by summing powers.
func (p *Polynomial) MulAssign(other Polynomial) {
	out := make([]Monomial, 0, len(p.monomials)*len(other.monomials))
	for _, a := range p.monomials {
		for _, b := range other.monomials {
			m := Monomial{
				Coefficient: a.Coefficient * b.Coefficient,
				Terms:       cloneTerms(a.Terms),
			}
			for _, bt := range b.Terms {
				merged := false
				for k := range m.Terms {
					if m.Terms[k].Var == bt.Var {
						m.Terms[k].Power += bt.Power
						merged = true
						break
					}
				}
				if !merged {
					m.Terms = append(m.Terms, bt)
				}
			}
			out = append(out, m)
		}
	}
	p.monomials = out
	p.makeMonomialsUnique()
}

// AddScalarAssign folds scalar into the constant monomial, creating one if
// absent. Exponent vectors are unchanged, so no de-duplication is needed.
func (p *Polynomial) AddScalarAssign(scalar float64) {
	for i := range p.monomials {
		if len(p.monomials[i].Terms) == 0 {
			p.monomials[i].Coefficient += scalar
			return
		}
	}
	p.monomials = append(p.monomials, Monomial{Coefficient: scalar})
}

// SubScalarAssign subtracts a scalar in place.
func (p *Polynomial) SubScalarAssign(scalar float64) {
	p.AddScalarAssign(-scalar)
}

// ScaleAssign multiplies every coefficient by scalar.
func (p *Polynomial) ScaleAssign(scalar float64) {
	for i := range p.monomials {
		p.monomials[i].Coefficient *= scalar
	}
}

// DivScalarAssign divides every coefficient by scalar.
func (p *Polynomial) DivScalarAssign(scalar float64) {
	for i := range p.monomials {
		p.monomials[i].Coefficient /= scalar
	}
}

// Add returns p + other.
func (p Polynomial) Add(other Polynomial) Polynomial {
	r := p.Clone()
	r.AddAssign(other)
	return r
}

// Sub returns p - other.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	r := p.Clone()
	r.SubAssign(other)
	return r
}

// Mul returns p * other.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	r := p.Clone()
	r.MulAssign(other)
	return r
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	r := p.Clone()
	r.ScaleAssign(-1)
	return r
}

// AddScalar returns p + scalar.
func (p Polynomial) AddScalar(scalar float64) Polynomial {
	r := p.Clone()
	r.AddScalarAssign(scalar)
	return r
}

// SubScalar returns p - scalar.
func (p Polynomial) SubScalar(scalar float64) Polynomial {
	r := p.Clone()
	r.SubScalarAssign(scalar)
	return r
}

// Scale returns p * scalar.
func (p Polynomial) Scale(scalar float64) Polynomial {
	r := p.Clone()
	r.ScaleAssign(scalar)
	return r
}

// DivScalar returns p / scalar.
func (p Polynomial) DivScalar(scalar float64) Polynomial {
	r := p.Clone()
	r.DivScalarAssign(scalar)
	return r
}

// Derivative returns the order-th derivative of a univariate polynomial.
// Monomials whose power is smaller than the requested order vanish.
func (p Polynomial) Derivative(order uint) (Polynomial, error) {
	if !p.isUnivariate {
		return Polynomial{}, fmt.Errorf("derivative: %w", ErrNotUnivariate)
	}
	if order == 0 {
		return p.Clone(), nil
	}
	var out []Monomial
	for _, m := range p.monomials {
		if len(m.Terms) == 0 || m.Terms[0].Power < PowerType(order) {
			continue
		}
		d := m.clone()
		for k := uint(0); k < order; k++ {
			d.Coefficient *= float64(d.Terms[0].Power)
			d.Terms[0].Power--
		}
		if d.Terms[0].Power < 1 {
			d.Terms = nil
		}
		out = append(out, d)
	}
	return Polynomial{monomials: out, isUnivariate: true}, nil
}

// Integral returns the antiderivative of a univariate polynomial, appending
// a constant monomial holding the constant of integration. A constant
// monomial acquires a linear term in the variable found elsewhere in the
// polynomial; with no such variable the integral is ambiguous.
func (p Polynomial) Integral(constant float64) (Polynomial, error) {
	if !p.isUnivariate {
		return Polynomial{}, fmt.Errorf("integral: %w", ErrNotUnivariate)
	}
	r := p.Clone()
	for i := range r.monomials {
		m := &r.monomials[i]
		if len(m.Terms) == 0 {
			var v VarType
			for _, other := range r.monomials {
				if len(other.Terms) > 0 {
					v = other.Terms[0].Var
					break
				}
			}
			if v == 0 {
				return Polynomial{}, fmt.Errorf("integral: %w", ErrUnknownVariable)
			}
			m.Terms = append(m.Terms, Term{Var: v, Power: 1})
		} else {
			m.Coefficient /= float64(m.Terms[0].Power + 1)
			m.Terms[0].Power++
		}
	}
	r.monomials = append(r.monomials, Monomial{Coefficient: constant})
	r.isUnivariate = true
	return r, nil
}

// Coefficients returns the dense coefficient vector of a univariate
// polynomial, indexed by power and zero-filled for missing powers.
func (p Polynomial) Coefficients() ([]float64, error) {
	if !p.isUnivariate {
		return nil, fmt.Errorf("coefficients: %w", ErrNotUnivariate)
	}
	out := make([]float64, p.Degree()+1)
	for _, m := range p.monomials {
		if len(m.Terms) == 0 {
			out[0] = m.Coefficient
		} else {
			out[m.Terms[0].Power] = m.Coefficient
		}
	}
	return out, nil
}

// Value evaluates a univariate polynomial at t by Horner's rule.
func (p Polynomial) Value(t float64) (float64, error) {
	coeffs, err := p.Coefficients()
	if err != nil {
		return 0, err
	}
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*t + coeffs[i]
	}
	return acc, nil
}

// EvaluatePartial substitutes the given variables with numeric values,
// folding value^power into each affected monomial's coefficient and eliding
// the substituted terms. Unassigned variables remain symbolic.
func (p Polynomial) EvaluatePartial(env map[VarType]float64) Polynomial {
	out := make([]Monomial, 0, len(p.monomials))
	for _, m := range p.monomials {
		c := m.Coefficient
		var terms []Term
		for _, t := range m.Terms {
			if v, ok := env[t.Var]; ok {
				c *= math.Pow(v, float64(t.Power))
			} else {
				terms = append(terms, t)
			}
		}
		out = append(out, Monomial{Coefficient: c, Terms: terms})
	}
	return fromMonomials(out)
}

// Evaluate substitutes every variable and returns the resulting scalar.
// Any variable left unassigned is an error.
func (p Polynomial) Evaluate(env map[VarType]float64) (float64, error) {
	q := p.EvaluatePartial(env)
	acc := 0.0
	for _, m := range q.monomials {
		if len(m.Terms) > 0 {
			return 0, fmt.Errorf("evaluate: unassigned variable %s: %w",
				IDToVariableName(m.Terms[0].Var), ErrUnknownVariable)
		}
		acc += m.Coefficient
	}
	return acc, nil
}

// Subs renames every occurrence of orig to replacement in place.
func (p *Polynomial) Subs(orig, replacement VarType) {
	for i := range p.monomials {
		for j := range p.monomials[i].Terms {
			if p.monomials[i].Terms[j].Var == orig {
				p.monomials[i].Terms[j].Var = replacement
			}
		}
	}
}

// String renders the polynomial as its monomials joined by " + ".
func (p Polynomial) String() string {
	if len(p.monomials) == 0 {
		return "0"
	}
	parts := make([]string, len(p.monomials))
	for i, m := range p.monomials {
		parts[i] = m.String()
	}
	return strings.Join(parts, " + ")
}
