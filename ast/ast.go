// Package ast defines the expression tree built by the parser.
//
// Literals hold a value.Value, but the tree is not a value: the executor
// reduces it to one.
package ast

import (
	"fmt"

	"go.creack.net/calc/value"
)

// Expr is a node of the expression tree.
type Expr interface {
	Dump() string
	expr()
}

// Dump returns the fully parenthesized form of e, or "<nil>".
func Dump(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.Dump()
}

func (e LiteralExpr) Dump() string { return e.Value.String() }

func (e SymbolExpr) Dump() string { return e.Name }

func (e BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", Dump(e.Left), e.Operator.Value, Dump(e.Right))
}

func (e PrefixExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", e.Operator.Value, Dump(e.Right))
}

func (e AssignmentExpr) Dump() string {
	return fmt.Sprintf("(%s = %s)", e.Assignee.Name, Dump(e.Right))
}

// Literal is a shorthand for a literal node.
func Literal(v value.Value) LiteralExpr {
	return LiteralExpr{Value: v}
}
