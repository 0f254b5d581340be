package ast

import (
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/value"
)

// LiteralExpr is a number written in the source.
type LiteralExpr struct {
	Value value.Value
}

func (LiteralExpr) expr() {}

// SymbolExpr references a variable.
type SymbolExpr struct {
	Name string
	Pos  int
}

func (SymbolExpr) expr() {}

type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (BinaryExpr) expr() {}

type PrefixExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (PrefixExpr) expr() {}

// AssignmentExpr binds Right to Assignee. It evaluates to value.Absence.
type AssignmentExpr struct {
	Assignee SymbolExpr
	Operator lexer.Token
	Right    Expr
}

func (AssignmentExpr) expr() {}
