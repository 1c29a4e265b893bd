// Package polytrig provides an exact multivariate polynomial algebra engine
// with a trigonometric extension.
//
// Design goals:
//   - Polynomials as monomial lists with automatic exponent-vector merging
//   - A compact, bijective variable name/id codec for indexed families
//   - Univariate calculus, dense coefficient extraction, and complex roots
//   - Sines and cosines of affine arguments rewritten over placeholder
//     variables via the Prosthaphaeresis angle-sum identities
//   - Value semantics throughout: no operation aliases its operands
//
// The engine is purely synchronous and CPU bound. Distinct values are safe
// to use from multiple goroutines without locking.
package polytrig
