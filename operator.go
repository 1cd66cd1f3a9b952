package symbolic

import (
	"strconv"
	"strings"
)

// Operator is an application of an operator to an ordered list of argument
// expressions. The operator owns its arguments. The number of arguments is
// fixed by the operator's kind and never changes after construction.
type Operator struct {
	kind OperatorKind
	args []*Expression
}

// NewOperator creates an application of the operator kind to args. If the
// number of args is wrong for the kind, the error is an *ArityError. The
// operator takes ownership of args, which must not be shared with any other
// tree. NewOperator panics if any argument is nil.
func NewOperator(kind OperatorKind, args ...*Expression) (*Operator, error) {
	info := kind.info()
	if len(args) != info.arity {
		return nil, &ArityError{Expected: info.arity, Actual: len(args)}
	}
	for i, a := range args {
		if a == nil {
			panic("symbolic: nil argument " + strconv.Itoa(i) + " to " + kind.String())
		}
	}
	// The caller's slice must not alias the argument list.
	a := make([]*Expression, len(args))
	copy(a, args)
	return &Operator{kind: kind, args: a}, nil
}

// New is a shortcut to create an operator application and wrap it in an
// expression.
func New(kind OperatorKind, args ...*Expression) (*Expression, error) {
	op, err := NewOperator(kind, args...)
	if err != nil {
		return nil, err
	}
	return Apply(op), nil
}

// Must panics if err is non-nil and otherwise returns e. It is intended for
// building literal trees, e.g. Must(New(Multiply, Num(2), Var("x"))).
func Must(e *Expression, err error) *Expression {
	if err != nil {
		panic("symbolic: " + err.Error())
	}
	return e
}

// Kind returns the operator's kind.
func (op *Operator) Kind() OperatorKind {
	return op.kind
}

// Name returns the operator's name as it appears in debug representations.
func (op *Operator) Name() string {
	return op.kind.String()
}

// Args returns the operator's arguments. The returned slice is a copy, but
// the expressions it points to are still owned by op.
func (op *Operator) Args() []*Expression {
	r := make([]*Expression, len(op.args))
	copy(r, op.args)
	return r
}

// Reduce performs one reduction step on the operator. Arguments which
// collapse to numbers are replaced by those numbers in place, even when the
// operator as a whole stays in place. Calling Reduce on an operator that
// cannot progress returns StayedInPlace without modifying anything.
func (op *Operator) Reduce() Outcome {
	return op.kind.info().reduce(op.args)
}

// Reducible returns whether Reduce would change the operator: either every
// argument is a number, or some argument is itself a reducible operator.
func (op *Operator) Reducible() bool {
	numeric := true
	for _, a := range op.args {
		switch a.kind {
		case KindNumber: // do nothing
		case KindVariable:
			numeric = false
		case KindOperator:
			if a.op.Reducible() {
				return true
			}
			numeric = false
		default:
			panic("symbolic: invalid expression kind " + a.kind.String())
		}
	}
	return numeric
}

func (op *Operator) clone() *Operator {
	r := Operator{kind: op.kind, args: make([]*Expression, len(op.args))}
	for i, a := range op.args {
		r.args[i] = a.Clone()
	}
	return &r
}

// String returns the debug representation of the operator application.
func (op *Operator) String() string {
	var b strings.Builder
	op.fmt(&b)
	return b.String()
}

func (op *Operator) fmt(b *strings.Builder) {
	b.WriteString(op.kind.String())
	b.WriteByte('{')
	for i, a := range op.args {
		if i > 0 {
			b.WriteByte(',')
		}
		a.fmt(b)
	}
	b.WriteByte('}')
}
