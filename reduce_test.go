package symbolic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/symbolic"
)

// sameFloat compares two floats, treating NaNs as equal and otherwise
// allowing a small absolute error.
func sameFloat(t *testing.T, want, got float64) bool {
	t.Helper()
	switch {
	case math.IsNaN(want):
		return assert.True(t, math.IsNaN(got), "want NaN, got %g", got)
	case math.IsInf(want, 0):
		return assert.Equal(t, want, got)
	default:
		return assert.InDelta(t, want, got, 1e-12)
	}
}

func TestReduce(t *testing.T) {
	cases := []struct {
		name string
		e    *symbolic.Expression
		// collapsed is whether the whole tree should become a number.
		collapsed bool
		val       float64
		// after is the expected rendering after the reduction, if non-empty.
		after string
	}{
		{"mul", call(symbolic.Multiply, num(2), num(3)), true, 6, "Number{6}"},
		{"mul-var", call(symbolic.Multiply, vr("x"), num(3)), false, 0, "Multiply{Variable{x},Number{3}}"},
		{"mul-nested", call(symbolic.Multiply, num(2), call(symbolic.Multiply, num(3), num(4))), true, 24, "Number{24}"},
		{"mul-partial", call(symbolic.Multiply, vr("x"), call(symbolic.Multiply, num(3), num(4))), false, 0, "Multiply{Variable{x},Number{12}}"},
		{"mul-left-partial", call(symbolic.Multiply, call(symbolic.Multiply, num(3), num(4)), vr("x")), false, 0, "Multiply{Number{12},Variable{x}}"},
		{"no-assoc", call(symbolic.Multiply, call(symbolic.Multiply, vr("x"), num(3)), num(4)), false, 0, "Multiply{Multiply{Variable{x},Number{3}},Number{4}}"},
		{"add", call(symbolic.Add, call(symbolic.Multiply, num(2), num(3)), num(4)), true, 10, "Number{10}"},
		{"deep-partial", call(symbolic.Add, vr("x"), call(symbolic.Add, vr("y"), call(symbolic.Multiply, num(2), num(3)))), false, 0, "Add{Variable{x},Add{Variable{y},Number{6}}}"},
		{"sub", call(symbolic.Subtract, num(2), num(3)), true, -1, "Number{-1}"},
		{"div", call(symbolic.Divide, num(1), num(4)), true, 0.25, "Number{0.25}"},
		{"div-zero", call(symbolic.Divide, num(1), num(0)), true, math.Inf(1), "Number{inf}"},
		{"div-neg-zero", call(symbolic.Divide, num(-1), num(0)), true, math.Inf(-1), "Number{-inf}"},
		{"zero-div-zero", call(symbolic.Divide, num(0), num(0)), true, math.NaN(), "Number{NaN}"},
		{"neg", call(symbolic.Negate, call(symbolic.Add, num(1), num(2))), true, -3, "Number{-3}"},
		{"neg-var", call(symbolic.Negate, vr("x")), false, 0, "Negate{Variable{x}}"},
		{"pow", call(symbolic.Power, num(2), num(10)), true, 1024, "Number{1024}"},
		{"pow-neg-base", call(symbolic.Power, num(-2), num(3)), true, -8, "Number{-8}"},
		{"pow-zero", call(symbolic.Power, num(0), num(0)), true, 1, "Number{1}"},
		{"pow-frac", call(symbolic.Power, num(2), num(0.5)), true, math.Sqrt2, ""},
		{"pow-neg-frac", call(symbolic.Power, num(-8), num(1.0 / 3)), true, math.NaN(), "Number{NaN}"},
		{"pow-overflow", call(symbolic.Power, num(10), num(400)), true, math.Inf(1), "Number{inf}"},
		{"exp", call(symbolic.Exp, num(1)), true, math.E, ""},
		{"exp-zero", call(symbolic.Exp, num(0)), true, 1, ""},
		{"exp-overflow", call(symbolic.Exp, num(1000)), true, math.Inf(1), "Number{inf}"},
		{"exp-underflow", call(symbolic.Exp, num(math.Inf(-1))), true, 0, "Number{0}"},
		{"log", call(symbolic.Log, call(symbolic.Exp, num(2))), true, 2, ""},
		{"log-ten", call(symbolic.Log, num(10)), true, math.Ln10, ""},
		{"log-zero", call(symbolic.Log, num(0)), true, math.Inf(-1), "Number{-inf}"},
		{"log-neg", call(symbolic.Log, num(-1)), true, math.NaN(), "Number{NaN}"},
		{"log-var", call(symbolic.Log, call(symbolic.Multiply, vr("x"), call(symbolic.Exp, num(0)))), false, 0, "Log{Multiply{Variable{x},Number{1}}}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := c.e.NodeCount()
			o := c.e.Reduce()
			v, ok := o.Number()
			if assert.Equal(t, c.collapsed, ok, "outcome %v", o) && ok {
				sameFloat(t, c.val, v)
				// The root itself is replaced.
				w, isnum := c.e.Number()
				assert.True(t, isnum)
				sameFloat(t, v, w)
			}
			if c.after != "" {
				assert.Equal(t, c.after, c.e.String())
			}
			assert.LessOrEqual(t, c.e.NodeCount(), before)
			assert.False(t, c.e.Reducible(), "still reducible: %v", c.e)
		})
	}
}

func TestReduceLeaves(t *testing.T) {
	n := num(5)
	assert.Equal(t, symbolic.Collapsed(5), n.Reduce())
	assert.Equal(t, "Number{5}", n.String())
	assert.False(t, n.Reducible())

	x := vr("x")
	assert.Equal(t, symbolic.StayedInPlace, x.Reduce())
	assert.Equal(t, "Variable{x}", x.String())
	assert.False(t, x.Reducible())
}

func TestReduceIdempotent(t *testing.T) {
	cases := []*symbolic.Expression{
		call(symbolic.Multiply, vr("x"), num(3)),
		call(symbolic.Multiply, vr("x"), call(symbolic.Multiply, num(3), num(4))),
		call(symbolic.Add, call(symbolic.Negate, vr("x")), call(symbolic.Power, vr("y"), call(symbolic.Add, num(1), num(1)))),
	}
	for _, e := range cases {
		t.Run(e.String(), func(t *testing.T) {
			assert.Equal(t, symbolic.StayedInPlace, e.Reduce())
			s := e.String()
			for i := 0; i < 3; i++ {
				assert.Equal(t, symbolic.StayedInPlace, e.Reduce())
				assert.Equal(t, s, e.String())
			}
		})
	}
}

func TestReducible(t *testing.T) {
	cases := []struct {
		name string
		e    *symbolic.Expression
		want bool
	}{
		{"num-num", call(symbolic.Multiply, num(2), num(3)), true},
		{"num-var", call(symbolic.Multiply, num(2), vr("x")), false},
		{"var-var", call(symbolic.Multiply, vr("x"), vr("y")), false},
		{"op-num", call(symbolic.Multiply, call(symbolic.Multiply, num(2), num(3)), num(4)), true},
		{"op-var", call(symbolic.Multiply, call(symbolic.Multiply, num(2), num(3)), vr("x")), true},
		{"stuck-op-num", call(symbolic.Multiply, call(symbolic.Multiply, num(2), vr("x")), num(4)), false},
		{"unary", call(symbolic.Negate, num(1)), true},
		{"unary-var", call(symbolic.Negate, vr("x")), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.e.Reducible())
			if !c.want {
				// An irreducible tree is a fixed point.
				s := c.e.String()
				assert.Equal(t, symbolic.StayedInPlace, c.e.Reduce())
				assert.Equal(t, s, c.e.String())
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Collapsed{6}", symbolic.Collapsed(6).String())
	assert.Equal(t, "Collapsed{-0.5}", symbolic.Collapsed(-0.5).String())
	assert.Equal(t, "StayedInPlace", symbolic.StayedInPlace.String())
	_, ok := symbolic.StayedInPlace.Number()
	assert.False(t, ok)
}
