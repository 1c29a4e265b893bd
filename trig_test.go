package polytrig

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTheta builds the standard fixture: theta over x with s1 = sin(x1) and
// c1 = cos(x1).
func newTheta(t *testing.T) (theta TrigPoly, sid, cid VarType) {
	t.Helper()
	x, s, c := Var("x"), Var("s"), Var("c")
	theta, err := NewTrigPoly(x, s, c)
	require.NoError(t, err)
	return theta, s.GetSimpleVariable(), c.GetSimpleVariable()
}

// trigEnv evaluates a trig expansion numerically at angle t by assigning
// the placeholder variables their true sine and cosine.
func trigEnv(sid, cid VarType, angle float64) map[VarType]float64 {
	return map[VarType]float64{sid: math.Sin(angle), cid: math.Cos(angle)}
}

func TestSin_SimpleVariable(t *testing.T) {
	theta, _, _ := newTheta(t)

	st, err := Sin(theta)
	require.NoError(t, err)
	assert.Equal(t, "s1", st.String())
}

func TestCos_SimpleVariable(t *testing.T) {
	theta, _, _ := newTheta(t)

	ct, err := Cos(theta)
	require.NoError(t, err)
	assert.Equal(t, "c1", ct.String())
}

func TestSinCos_NegatedAngle(t *testing.T) {
	theta, _, _ := newTheta(t)

	st, err := Sin(theta.Neg())
	require.NoError(t, err)
	assert.Equal(t, "-1*s1", st.String())

	ct, err := Cos(theta.Neg())
	require.NoError(t, err)
	assert.Equal(t, "c1", ct.String())
}

func TestCos_DoubleAngle(t *testing.T) {
	theta, sid, cid := newTheta(t)

	ct, err := Cos(theta.Add(theta))
	require.NoError(t, err)
	assert.Equal(t, "c1^2 + -1*s1^2", ct.String())

	for _, angle := range []float64{0, 0.3, -1.1, math.Pi / 4} {
		v, err := ct.Polynomial().Evaluate(trigEnv(sid, cid, angle))
		require.NoError(t, err)
		assert.InDelta(t, math.Cos(2*angle), v, 1e-12, "angle %g", angle)
	}
}

func TestSin_DoubleAngle(t *testing.T) {
	theta, sid, cid := newTheta(t)

	st, err := Sin(theta.Add(theta))
	require.NoError(t, err)
	assert.Equal(t, "2*s1*c1", st.String())

	for _, angle := range []float64{0, 0.3, -1.1, math.Pi / 4} {
		v, err := st.Polynomial().Evaluate(trigEnv(sid, cid, angle))
		require.NoError(t, err)
		assert.InDelta(t, math.Sin(2*angle), v, 1e-12, "angle %g", angle)
	}
}

func TestSinCos_TripleAngle(t *testing.T) {
	theta, sid, cid := newTheta(t)

	st, err := Sin(theta.Scale(3))
	require.NoError(t, err)
	ct, err := Cos(theta.Scale(-3))
	require.NoError(t, err)

	for _, angle := range []float64{0.2, -0.7, 1.5} {
		env := trigEnv(sid, cid, angle)

		sv, err := st.Polynomial().Evaluate(env)
		require.NoError(t, err)
		assert.InDelta(t, math.Sin(3*angle), sv, 1e-12, "sin at %g", angle)

		cv, err := ct.Polynomial().Evaluate(env)
		require.NoError(t, err)
		assert.InDelta(t, math.Cos(-3*angle), cv, 1e-12, "cos at %g", angle)
	}
}

func TestSinCos_ShiftedAngle(t *testing.T) {
	theta, sid, cid := newTheta(t)

	st, err := Sin(theta.AddScalar(1))
	require.NoError(t, err)
	ct, err := Cos(theta.AddScalar(1))
	require.NoError(t, err)

	for _, angle := range []float64{0, 0.7, -2.4} {
		env := trigEnv(sid, cid, angle)

		sv, err := st.Polynomial().Evaluate(env)
		require.NoError(t, err)
		assert.InDelta(t, math.Sin(angle+1), sv, 1e-12, "sin at %g", angle)

		cv, err := ct.Polynomial().Evaluate(env)
		require.NoError(t, err)
		assert.InDelta(t, math.Cos(angle+1), cv, 1e-12, "cos at %g", angle)
	}
}

func TestSinCos_Constants(t *testing.T) {
	st, err := Sin(NewTrigConstant(math.Pi / 2))
	require.NoError(t, err)
	v, err := st.Polynomial().Value(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)

	ct, err := Cos(NewTrigConstant(math.Pi))
	require.NoError(t, err)
	v, err = ct.Polynomial().Value(0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, v, 1e-12)

	// A polynomial with no monomials at all.
	empty, err := NewConstant(5).Derivative(1)
	require.NoError(t, err)
	zero := WrapTrig(empty, SinCosMap{})
	st, err = Sin(zero)
	require.NoError(t, err)
	v, err = st.Polynomial().Value(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-12)

	ct, err = Cos(zero)
	require.NoError(t, err)
	v, err = ct.Polynomial().Value(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-12)
}

func TestSinCos_Errors(t *testing.T) {
	theta, _, _ := newTheta(t)

	// Quadratic argument.
	sq := WrapTrig(Var("x").Mul(Var("x")), theta.SinCosMap())
	_, err := Sin(sq)
	assert.ErrorIs(t, err, ErrUnsupportedDegree)
	_, err = Cos(sq)
	assert.ErrorIs(t, err, ErrUnsupportedDegree)

	// Cross terms have product degree 1 but are not affine.
	cross := WrapTrig(Var("x").Mul(Var("y")), theta.SinCosMap())
	_, err = Sin(cross)
	assert.ErrorIs(t, err, ErrUnsupportedDegree)

	// Non-integer coefficient.
	_, err = Sin(theta.Scale(0.5))
	assert.ErrorIs(t, err, ErrUnsupportedCoefficient)
	_, err = Cos(theta.Scale(-2.5))
	assert.ErrorIs(t, err, ErrUnsupportedCoefficient)

	// Variable without a sin/cos mapping.
	unmapped := WrapTrig(Var("y"), SinCosMap{})
	_, err = Sin(unmapped)
	assert.ErrorIs(t, err, ErrUnmappedVariable)
	_, err = Cos(unmapped)
	assert.ErrorIs(t, err, ErrUnmappedVariable)
}

func TestNewTrigPoly_RequiresSimpleVariables(t *testing.T) {
	x, s, c := Var("x"), Var("s"), Var("c")

	_, err := NewTrigPoly(x.Mul(x), s, c)
	assert.ErrorIs(t, err, ErrInvalidDegree)

	_, err = NewTrigPoly(x.AddScalar(1), s, c)
	assert.ErrorIs(t, err, ErrInvalidDegree)

	_, err = NewTrigPoly(x, NewConstant(1), c)
	assert.ErrorIs(t, err, ErrInvalidDegree)
}

func TestTrigPoly_MapUnionRightWins(t *testing.T) {
	x, s, c := Var("x"), Var("s"), Var("c")
	xid := x.GetSimpleVariable()

	left, err := NewTrigPoly(x, s, c)
	require.NoError(t, err)

	s2, err := NewVariable("s", 2)
	require.NoError(t, err)
	c2, err := NewVariable("c", 2)
	require.NoError(t, err)
	right, err := NewTrigPoly(x, s2, c2)
	require.NoError(t, err)

	sum := left.Add(right)
	got := sum.SinCosMap()[xid]
	assert.Equal(t, s2.GetSimpleVariable(), got.S)
	assert.Equal(t, c2.GetSimpleVariable(), got.C)
}

func TestTrigPoly_Arithmetic(t *testing.T) {
	theta, sid, cid := newTheta(t)

	st, err := Sin(theta)
	require.NoError(t, err)
	ct, err := Cos(theta)
	require.NoError(t, err)

	// sin^2 + cos^2 evaluates to 1 for any angle.
	identity := st.Mul(st).Add(ct.Mul(ct))
	for _, angle := range []float64{0, 0.9, -2.2} {
		v, err := identity.Polynomial().Evaluate(trigEnv(sid, cid, angle))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-12, "angle %g", angle)
	}

	scaled := st.Scale(2).AddScalar(1)
	assert.Equal(t, "2*s1 + 1", scaled.String())
	assert.Equal(t, "s1", st.String(), "receiver must not be mutated")

	assert.Equal(t, "-1*s1", st.Neg().String())
	assert.Equal(t, "s1 + -1*c1", st.Sub(ct).String())
	assert.Equal(t, 1, st.Degree())
}

func TestTrigPoly_ValueSemantics(t *testing.T) {
	theta, _, _ := newTheta(t)
	xid := Var("x").GetSimpleVariable()

	m := theta.SinCosMap()
	delete(m, xid)
	assert.Contains(t, theta.SinCosMap(), xid, "getter must return a copy")

	p := theta.Polynomial()
	p.ScaleAssign(0)
	assert.Equal(t, "x1", theta.String(), "getter must return a copy")
}
