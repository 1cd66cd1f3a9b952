package symbolic

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// OperatorKind identifies an operator. The set of operators is closed.
type OperatorKind int8

const (
	operatorNone OperatorKind = iota

	Multiply // arg0 * arg1
	Add      // arg0 + arg1
	Subtract // arg0 - arg1
	Divide   // arg0 / arg1
	Negate   // -arg0
	Power    // arg0 ^ arg1
	Exp      // e ^ arg0
	Log      // natural logarithm of arg0

	operatorEnd
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=OperatorKind
//go:generate go mod tidy

// opinfo describes how an operator kind behaves.
type opinfo struct {
	// arity is the exact number of arguments the operator takes.
	arity int
	// reduce performs one reduction step over the operator's arguments.
	reduce func(args []*Expression) Outcome
}

// operators is filled in init because reduction refers back to it.
var operators [operatorEnd]opinfo

func init() {
	operators = [operatorEnd]opinfo{
		Multiply: {2, scalar(func(x []float64) float64 { return x[0] * x[1] })},
		Add:      {2, scalar(func(x []float64) float64 { return x[0] + x[1] })},
		Subtract: {2, scalar(func(x []float64) float64 { return x[0] - x[1] })},
		Divide:   {2, scalar(func(x []float64) float64 { return x[0] / x[1] })},
		Negate:   {1, scalar(func(x []float64) float64 { return -x[0] })},
		Power:    {2, scalar(pow)},
		Exp:      {1, scalar(exp)},
		Log:      {1, scalar(ln)},
	}
}

// scalar adapts a function of the arguments' values into the reduction of an
// operator that evaluates its arguments and then combines them.
func scalar(f func([]float64) float64) func([]*Expression) Outcome {
	return func(args []*Expression) Outcome {
		return reduceArgs(args, f)
	}
}

func (k OperatorKind) info() *opinfo {
	if k <= operatorNone || k >= operatorEnd {
		panic("symbolic: invalid operator kind " + k.String())
	}
	return &operators[k]
}

// Arity returns the number of arguments the operator takes.
func (k OperatorKind) Arity() int {
	return k.info().arity
}

// Operators returns every operator kind in definition order.
func Operators() []OperatorKind {
	r := make([]OperatorKind, 0, operatorEnd-operatorNone-1)
	for k := operatorNone + 1; k < operatorEnd; k++ {
		r = append(r, k)
	}
	return r
}

// LookupOperator returns the operator kind with the given name, as it appears
// in debug representations.
func LookupOperator(name string) (OperatorKind, bool) {
	for k := operatorNone + 1; k < operatorEnd; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return operatorNone, false
}

// extprec is the precision in bits at which transcendental operators are
// computed before rounding to float64.
const extprec = 128

func bigf(v float64) *big.Float {
	return new(big.Float).SetPrec(extprec).SetFloat64(v)
}

func rounded(r *big.Float) float64 {
	f, _ := r.Float64()
	return f
}

// normal reports whether v is finite, nonzero, and not subnormal.
func normal(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) >= 0x1p-1022
}

func pow(x []float64) float64 {
	a, b := x[0], x[1]
	m := math.Pow(a, b)
	// Negative bases, zero, and anything that over- or underflows are
	// handled entirely by math.Pow.
	if a <= 0 || math.IsInf(a, 0) || math.IsInf(b, 0) || !normal(m) {
		return m
	}
	r := new(big.Float).SetPrec(extprec)
	bigfloat.Pow(r, bigf(a), bigf(b))
	return rounded(r)
}

func exp(x []float64) float64 {
	m := math.Exp(x[0])
	if !normal(m) {
		return m
	}
	r := new(big.Float).SetPrec(extprec)
	bigfloat.Exp(r, bigf(x[0]))
	return rounded(r)
}

func ln(x []float64) float64 {
	a := x[0]
	if !(a > 0) || math.IsInf(a, 1) {
		return math.Log(a)
	}
	r := new(big.Float).SetPrec(extprec)
	bigfloat.Log(r, bigf(a))
	return rounded(r)
}
