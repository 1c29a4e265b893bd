package polytrig

import "gonum.org/v1/gonum/floats"

// IsApprox compares the dense coefficient vectors of two univariate
// polynomials elementwise within tol, zero-padding the shorter vector.
func (p Polynomial) IsApprox(other Polynomial, tol float64) (bool, error) {
	a, err := p.Coefficients()
	if err != nil {
		return false, err
	}
	b, err := other.Coefficients()
	if err != nil {
		return false, err
	}
	if len(a) < len(b) {
		a = append(a, make([]float64, len(b)-len(a))...)
	} else if len(b) < len(a) {
		b = append(b, make([]float64, len(a)-len(b))...)
	}
	return floats.EqualApprox(a, b, tol), nil
}
