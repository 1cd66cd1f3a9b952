// Package document encodes and decodes expression trees as YAML or JSON
// documents.
//
// A node is a number, a variable name, or an operator application:
//
//	op: Multiply
//	args:
//	  - x
//	  - op: Multiply
//	    args: [3, 4]
//
// Leaves may also be written in object form, as {num: 3} or {var: x}, which
// is needed for variables whose names would otherwise read as numbers.
package document

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/zephyrtronium/symbolic"
)

// Node is a decoded document node. Exactly one of Num, Var, or Op is set in a
// well-formed node.
type Node struct {
	Num  *float64 `json:"num,omitempty" yaml:"num,omitempty"`
	Var  string   `json:"var,omitempty" yaml:"var,omitempty"`
	Op   string   `json:"op,omitempty" yaml:"op,omitempty"`
	Args []*Node  `json:"args,omitempty" yaml:"args,omitempty"`
}

// Expression builds the expression tree described by n. Errors are wrapped
// with the path to the offending node, e.g. "args[1]: args[0]: ...". An
// operator with the wrong number of arguments gives an error which unwraps to
// *symbolic.ArityError.
func (n *Node) Expression() (*symbolic.Expression, error) {
	if n == nil {
		return nil, &NodeError{Reason: "empty node"}
	}
	set := 0
	if n.Num != nil {
		set++
	}
	if n.Var != "" {
		set++
	}
	if n.Op != "" {
		set++
	}
	switch {
	case set == 0:
		return nil, &NodeError{Reason: "node has none of num, var, op"}
	case set > 1:
		return nil, &NodeError{Reason: "node has more than one of num, var, op"}
	case n.Op == "" && len(n.Args) != 0:
		return nil, &NodeError{Reason: "args on a leaf node"}
	case n.Num != nil:
		return symbolic.Num(*n.Num), nil
	case n.Var != "":
		return symbolic.Var(n.Var), nil
	}
	k, ok := symbolic.LookupOperator(n.Op)
	if !ok {
		return nil, &OperatorError{Name: n.Op}
	}
	args := make([]*symbolic.Expression, len(n.Args))
	for i, a := range n.Args {
		e, err := a.Expression()
		if err != nil {
			return nil, errors.Wrapf(err, "args[%d]", i)
		}
		args[i] = e
	}
	e, err := symbolic.New(k, args...)
	if err != nil {
		return nil, errors.Wrap(err, n.Op)
	}
	return e, nil
}

// FromExpression creates the document node describing e.
func FromExpression(e *symbolic.Expression) *Node {
	if v, ok := e.Number(); ok {
		return &Node{Num: &v}
	}
	if name, ok := e.Variable(); ok {
		return &Node{Var: name}
	}
	op, ok := e.Operator()
	if !ok {
		panic("document: invalid expression kind " + e.Kind().String())
	}
	args := op.Args()
	n := Node{Op: op.Name(), Args: make([]*Node, len(args))}
	for i, a := range args {
		n.Args[i] = FromExpression(a)
	}
	return &n
}

// OperatorError is an error indicating an operator name that does not name
// any operator.
type OperatorError struct {
	// Name is the name that was not understood.
	Name string
}

func (err *OperatorError) Error() string {
	return "unknown operator " + strconv.Quote(err.Name)
}

// NodeError is an error indicating a node that is not a number, a variable,
// or an operator application.
type NodeError struct {
	// Reason describes what is wrong with the node.
	Reason string
}

func (err *NodeError) Error() string {
	return "malformed node: " + err.Reason
}
