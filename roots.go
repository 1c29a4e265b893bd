package polytrig

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Roots returns all complex roots of a univariate polynomial. Degree 0
// polynomials have no roots; degree 1 uses the closed form -c0/c1; higher
// degrees use the eigenvalues of the companion matrix.
func (p Polynomial) Roots() ([]complex128, error) {
	coeffs, err := p.Coefficients()
	if err != nil {
		return nil, fmt.Errorf("roots: %w", ErrNotUnivariate)
	}
	degree := len(coeffs) - 1
	switch degree {
	case 0:
		return nil, nil
	case 1:
		return []complex128{complex(-coeffs[0]/coeffs[1], 0)}, nil
	default:
		c := mat.NewDense(degree, degree, nil)
		for i := 1; i < degree; i++ {
			c.Set(i, i-1, 1)
		}
		for i := 0; i < degree; i++ {
			c.Set(i, degree-1, -coeffs[i]/coeffs[degree])
		}
		var eig mat.Eigen
		if ok := eig.Factorize(c, mat.EigenNone); !ok {
			return nil, fmt.Errorf("polytrig: companion matrix eigendecomposition failed")
		}
		return eig.Values(nil), nil
	}
}
