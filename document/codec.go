package document

import (
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// plain has the fields of Node without its marshaling methods.
type plain Node

// UnmarshalYAML decodes a node from a number scalar, a string scalar, or a
// mapping.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.ShortTag() {
		case "!!int", "!!float":
			var v float64
			if err := value.Decode(&v); err != nil {
				return err
			}
			*n = Node{Num: &v}
		case "!!str":
			*n = Node{Var: value.Value}
		default:
			return &NodeError{Reason: "line " + strconv.Itoa(value.Line) + ": unexpected scalar " + strconv.Quote(value.Value)}
		}
		return nil
	case yaml.MappingNode:
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*n = Node(p)
		return nil
	default:
		return &NodeError{Reason: "line " + strconv.Itoa(value.Line) + ": expected a scalar or a mapping"}
	}
}

// MarshalYAML encodes leaves as scalars and operators as mappings.
func (n *Node) MarshalYAML() (interface{}, error) {
	switch {
	case n.Num != nil:
		return *n.Num, nil
	case n.Var != "":
		return n.Var, nil
	default:
		return (*plain)(n), nil
	}
}

// UnmarshalJSON decodes a node from a number, a string, or an object.
func (n *Node) UnmarshalJSON(b []byte) error {
	iter := json.BorrowIterator(b)
	defer json.ReturnIterator(iter)
	return readJSON(iter, n)
}

// readJSON decodes one node from iter. A value of the wrong shape is skipped
// and reported as a *NodeError, leaving iter at the next value.
func readJSON(iter *jsoniter.Iterator, n *Node) error {
	var bad error
	shape := func(reason string) {
		if bad == nil {
			bad = &NodeError{Reason: reason}
		}
	}
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		v := iter.ReadFloat64()
		*n = Node{Num: &v}
	case jsoniter.StringValue:
		*n = Node{Var: iter.ReadString()}
	case jsoniter.ObjectValue:
		*n = Node{}
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			switch field {
			case "num":
				if iter.WhatIsNext() != jsoniter.NumberValue {
					shape(`"num" is not a number`)
					iter.Skip()
					break
				}
				v := iter.ReadFloat64()
				n.Num = &v
			case "var", "op":
				if iter.WhatIsNext() != jsoniter.StringValue {
					shape(strconv.Quote(field) + " is not a string")
					iter.Skip()
					break
				}
				if field == "var" {
					n.Var = iter.ReadString()
				} else {
					n.Op = iter.ReadString()
				}
			case "args":
				if iter.WhatIsNext() != jsoniter.ArrayValue {
					shape(`"args" is not an array`)
					iter.Skip()
					break
				}
				iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
					var a Node
					if err := readJSON(iter, &a); err != nil && bad == nil {
						bad = errors.Wrapf(err, "args[%d]", len(n.Args))
					}
					n.Args = append(n.Args, &a)
					return true
				})
			default:
				iter.Skip()
			}
			return true
		})
	default:
		iter.Skip()
		shape("expected a number, string, or object")
	}
	// A number that ends the input leaves io.EOF behind.
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}
	return bad
}

// MarshalJSON encodes leaves as numbers and strings and operators as objects.
// Infinite and NaN numbers cannot be encoded as JSON.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch {
	case n.Num != nil:
		return json.Marshal(*n.Num)
	case n.Var != "":
		return json.Marshal(n.Var)
	default:
		return json.Marshal((*plain)(n))
	}
}
