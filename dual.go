package polytrig

import "gonum.org/v1/gonum/num/dual"

// ValueDual evaluates a univariate polynomial at a dual number by Horner's
// rule, carrying the first derivative through the evaluation. Passing
// dual.Number{Real: t, Emag: 1} yields p(t) in Real and p'(t) in Emag,
// which serves differentiation-aware callers without a symbolic pass.
func (p Polynomial) ValueDual(t dual.Number) (dual.Number, error) {
	coeffs, err := p.Coefficients()
	if err != nil {
		return dual.Number{}, err
	}
	acc := dual.Number{Real: coeffs[len(coeffs)-1]}
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = dual.Add(dual.Mul(acc, t), dual.Number{Real: coeffs[i]})
	}
	return acc, nil
}
