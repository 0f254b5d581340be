// Package executor evaluates expression trees against an Environment.
package executor

import (
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
	"go.creack.net/calc/value"
)

// Executor holds evaluation settings. The zero value is ready to use.
type Executor struct {
	// Prec is the precision in bits of Float powers, 0 for value.DefaultPrec.
	Prec uint
}

// Evaluate lexes, parses and evaluates one line with the default settings.
func Evaluate(line string, env Environment) (value.Value, error) {
	return Executor{}.Evaluate(line, env)
}

// Eval evaluates a parsed tree with the default settings.
func Eval(expr ast.Expr, env Environment) (value.Value, error) {
	return Executor{}.Eval(expr, env)
}

// Format renders v for display. Absence renders as the empty string and
// must not be printed. The environment is unused by the numeric values and
// may be nil.
func Format(v value.Value, _ Environment) string {
	if value.IsAbsent(v) {
		return ""
	}
	return v.String()
}

// Evaluate lexes, parses and evaluates one line. On error the environment
// is left exactly as it was. A nil env can be read from but an assignment
// to it fails with ErrNoEnvironment.
func (x Executor) Evaluate(line string, env Environment) (value.Value, error) {
	expr, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	return x.Eval(expr, env)
}

// Eval evaluates expr. Assignments are applied to env only if the whole
// evaluation succeeds.
func (x Executor) Eval(expr ast.Expr, env Environment) (value.Value, error) {
	s := newScope(env)
	v, err := x.eval(expr, s)
	if err != nil {
		return nil, err
	}
	s.commit()
	return v, nil
}

func (x Executor) eval(expr ast.Expr, s *scope) (value.Value, error) {
	switch e := expr.(type) {
	case ast.LiteralExpr:
		return e.Value, nil
	case ast.SymbolExpr:
		v, ok := s.lookup(e.Name)
		if !ok {
			return nil, &EvaluationError{Name: e.Name, Err: ErrUnresolved}
		}
		return v, nil
	case ast.AssignmentExpr:
		v, err := x.eval(e.Right, s)
		if err != nil {
			return nil, err
		}
		if value.IsAbsent(v) {
			return nil, &EvaluationError{Err: fmt.Errorf("cannot assign to %q: %w", e.Assignee.Name, ErrAbsentOperand)}
		}
		if s.env == nil {
			return nil, &EvaluationError{Name: e.Assignee.Name, Err: ErrNoEnvironment}
		}
		s.assign(e.Assignee.Name, v)
		return value.Absence{}, nil
	case ast.PrefixExpr:
		v, err := x.eval(e.Right, s)
		if err != nil {
			return nil, err
		}
		return x.prefix(e.Operator, v)
	case ast.BinaryExpr:
		l, err := x.eval(e.Left, s)
		if err != nil {
			return nil, err
		}
		r, err := x.eval(e.Right, s)
		if err != nil {
			return nil, err
		}
		return x.binary(e.Operator, l, r)
	default:
		return nil, &EvaluationError{Err: fmt.Errorf("unsupported expression %T: %w", expr, ErrTypeMismatch)}
	}
}

var binaryOps = map[lexer.TokenType]value.Op{
	lexer.TokPlus:  value.OpAdd,
	lexer.TokDash:  value.OpSub,
	lexer.TokStar:  value.OpMul,
	lexer.TokSlash: value.OpQuo,
	lexer.TokCaret: value.OpPow,
}

func (x Executor) binary(operator lexer.Token, l, r value.Value) (value.Value, error) {
	op, ok := binaryOps[operator.Type]
	if !ok {
		return nil, &EvaluationError{Err: fmt.Errorf("binary operator %q: %w", operator.Value, ErrTypeMismatch)}
	}
	v, err := value.Binary(op, l, r, x.Prec)
	if err != nil {
		return nil, &EvaluationError{Err: err}
	}
	return v, nil
}

func (x Executor) prefix(operator lexer.Token, v value.Value) (value.Value, error) {
	var (
		res value.Value
		err error
	)
	switch operator.Type {
	case lexer.TokDash:
		res, err = value.Neg(v)
	case lexer.TokPlus:
		res, err = value.Pos(v)
	default:
		err = fmt.Errorf("prefix operator %q: %w", operator.Value, ErrTypeMismatch)
	}
	if err != nil {
		return nil, &EvaluationError{Err: err}
	}
	return res, nil
}
