package symbolic

import (
	"math"
	"strconv"
	"strings"
)

// Expression is a node in an expression tree, together with everything
// beneath it. An Expression holds exactly one element: a number, a variable,
// or an operator application. Each Expression has exactly one owner, either
// the caller holding the root or the operator holding it as an argument.
// Only Num, Var, Apply, and New produce valid expressions; methods panic on
// the zero value.
type Expression struct {
	kind Kind

	num  float64
	name string
	op   *Operator
}

// Kind is the kind of element an Expression holds.
type Kind int8

const (
	kindNone Kind = iota

	KindNumber   // num is the value
	KindVariable // name is the variable name
	KindOperator // op is the operator application
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// Num creates a number literal.
func Num(v float64) *Expression {
	return &Expression{kind: KindNumber, num: v}
}

// Var creates a variable with the given name.
func Var(name string) *Expression {
	return &Expression{kind: KindVariable, name: name}
}

// Apply wraps an operator application in an expression. The expression takes
// ownership of op.
func Apply(op *Operator) *Expression {
	return &Expression{kind: KindOperator, op: op}
}

// Kind returns the kind of element e holds.
func (e *Expression) Kind() Kind {
	return e.kind
}

// Number returns the value of e if it is a number.
func (e *Expression) Number() (float64, bool) {
	return e.num, e.kind == KindNumber
}

// Variable returns the name of e if it is a variable.
func (e *Expression) Variable() (string, bool) {
	return e.name, e.kind == KindVariable
}

// Operator returns the operator application held by e, if any. The operator
// is still owned by e.
func (e *Expression) Operator() (*Operator, bool) {
	return e.op, e.kind == KindOperator
}

// setNumber replaces the content of e with a number, dropping any subtree.
func (e *Expression) setNumber(v float64) {
	*e = Expression{kind: KindNumber, num: v}
}

// Reduce performs one reduction step on e. If e is an operator that collapses
// to a number, e is replaced in place by that number. Numbers always report
// Collapsed with their own value, and variables always stay in place.
func (e *Expression) Reduce() Outcome {
	switch e.kind {
	case KindNumber:
		return Collapsed(e.num)
	case KindVariable:
		return StayedInPlace
	case KindOperator:
		r := e.op.Reduce()
		if v, ok := r.Number(); ok {
			e.setNumber(v)
		}
		return r
	default:
		panic("symbolic: invalid expression kind " + e.kind.String())
	}
}

// Reducible returns whether Reduce would change e. Leaves are never
// reducible.
func (e *Expression) Reducible() bool {
	return e.kind == KindOperator && e.op.Reducible()
}

// Clone returns a deep copy of e.
func (e *Expression) Clone() *Expression {
	r := *e
	if e.kind == KindOperator {
		r.op = e.op.clone()
	}
	return &r
}

// NodeCount returns the number of nodes in the tree rooted at e.
func (e *Expression) NodeCount() int {
	if e.kind != KindOperator {
		return 1
	}
	n := 1
	for _, a := range e.op.args {
		n += a.NodeCount()
	}
	return n
}

// Depth returns the height of the tree rooted at e. Leaves have depth 1.
func (e *Expression) Depth() int {
	if e.kind != KindOperator {
		return 1
	}
	d := 0
	for _, a := range e.op.args {
		if k := a.Depth(); k > d {
			d = k
		}
	}
	return d + 1
}

// Vars returns the sorted list of distinct variable names in e.
func (e *Expression) Vars() []string {
	seen := make(map[string]bool)
	e.walk(func(x *Expression) {
		if x.kind == KindVariable {
			seen[x.name] = true
		}
	})
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Substitute replaces every variable in e that has a value in vars with a
// number holding that value. It returns the number of variables replaced.
// Substitution is not a reduction step; call Reduce afterward to fold the
// newly numeric subtrees.
func (e *Expression) Substitute(vars map[string]float64) int {
	n := 0
	e.walk(func(x *Expression) {
		if x.kind != KindVariable {
			return
		}
		if v, ok := vars[x.name]; ok {
			x.setNumber(v)
			n++
		}
	})
	return n
}

// walk calls f on each node of the tree in preorder.
func (e *Expression) walk(f func(*Expression)) {
	f(e)
	if e.kind == KindOperator {
		for _, a := range e.op.args {
			a.walk(f)
		}
	}
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// String returns the debug representation of e, e.g.
// "Multiply{Variable{x},Number{12}}".
func (e *Expression) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expression) fmt(b *strings.Builder) {
	switch e.kind {
	case KindNumber:
		b.WriteString("Number{")
		b.WriteString(fmtnum(e.num))
		b.WriteByte('}')
	case KindVariable:
		b.WriteString("Variable{")
		b.WriteString(e.name)
		b.WriteByte('}')
	case KindOperator:
		e.op.fmt(b)
	default:
		panic("symbolic: invalid expression kind " + e.kind.String() + " after writing " + b.String())
	}
}

// fmtnum formats a number in its shortest decimal form, never using an
// exponent.
func fmtnum(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
