// Package symbolic implements a reduction engine for symbolic algebraic
// expressions.
//
// An expression is a tree whose leaves are numbers and variables and whose
// internal nodes are operator applications, such as Multiply or Add. Reducing
// an expression rewrites it in place toward a more evaluated form: every
// operator whose arguments are all numbers collapses to a number, so
// "Multiply{Number{2},Number{3}}" becomes "Number{6}". Subtrees that reach a
// variable stay in place, but any numeric subtrees beneath them still fold, so
// "Multiply{Variable{x},Multiply{Number{3},Number{4}}}" becomes
// "Multiply{Variable{x},Number{12}}".
//
// A Reducer binds variables to values and then reduces an expression until no
// further progress is possible.
//
// Operators are not rearranged. Multiply{Multiply{a,b},c} and
// Multiply{a,Multiply{b,c}} are different trees and reduce independently.
//
package symbolic
