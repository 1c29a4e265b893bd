package polytrig

import "errors"

// Failure kinds for the polynomial engine and the trigonometric layer.
// All of them are deterministic given the same input: callers should treat
// a returned error as a modeling mistake to fix, not a transient condition.
var (
	// ErrNotUnivariate indicates a calculus or coefficient-extraction
	// operation on a polynomial that is not univariate.
	ErrNotUnivariate = errors.New("polytrig: only defined for univariate polynomials")

	// ErrUnknownVariable indicates a variable the operation cannot resolve:
	// an unassigned variable in Evaluate, or an integral of a pure-constant
	// polynomial with no variable to attach the synthesized linear term to.
	ErrUnknownVariable = errors.New("polytrig: unknown or unassigned variable")

	// ErrInvalidName indicates a variable name outside the supported
	// alphabet or length range.
	ErrInvalidName = errors.New("polytrig: invalid variable name")

	// ErrIDOverflow indicates a name or index whose encoding exceeds the
	// representable identifier range.
	ErrIDOverflow = errors.New("polytrig: variable id out of range")

	// ErrUnmappedVariable indicates sin/cos of a variable with no registered
	// entry in the SinCosMap.
	ErrUnmappedVariable = errors.New("polytrig: variable has no sin/cos mapping")

	// ErrUnsupportedDegree indicates sin/cos of a polynomial of degree > 1.
	ErrUnsupportedDegree = errors.New("polytrig: sin/cos of polynomials with degree > 1 is not supported")

	// ErrUnsupportedCoefficient indicates sin/cos of a linear term whose
	// coefficient is not an integer, so angle-sum peeling cannot apply.
	ErrUnsupportedCoefficient = errors.New("polytrig: sin/cos argument coefficient must be an integer")

	// ErrInvalidDegree indicates a TrigPoly constructed from angle/sine/
	// cosine polynomials that are not all single simple variables.
	ErrInvalidDegree = errors.New("polytrig: q, s, and c must all be simple degree-1 polynomials")
)
