package parser

import (
	"math"
	"strconv"
	"strings"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/value"
)

func parseExpr(p *parser, bp bindingPower) ast.Expr {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		if p.curToken.Type == lexer.TokEOF {
			p.fail("unexpected end of input")
		}
		p.fail("expected an expression")
	}
	left := nudFn(p)

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn, exists := p.ledLookupTable[p.curToken.Type]
		if !exists {
			p.fail("unexpected operator")
		}
		left = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
	}

	return left
}

func parsePrimaryExpr(p *parser) ast.Expr {
	switch p.curToken.Type {
	case lexer.TokNumber:
		val := p.curToken.Value
		var lit value.Value
		if strings.Contains(val, ".") {
			number, err := strconv.ParseFloat(val, 64)
			if err != nil {
				p.fail("invalid number")
			}
			lit = value.Float(number)
		} else {
			number, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				p.fail("invalid number")
			}
			lit = value.Integer(number)
		}
		p.nextToken()
		return ast.Literal(lit)
	case lexer.TokIdentifier:
		sym := ast.SymbolExpr{Name: p.curToken.Value, Pos: p.curToken.Pos()}
		p.nextToken()
		return sym
	default:
		p.fail("expected a number or identifier")
		return nil
	}
}

func parseGroupingExpr(p *parser) ast.Expr {
	p.expect("expected '('", lexer.TokParenLeft)
	p.nextToken()
	expr := parseExpr(p, bpDefault)
	p.expect("missing closing parenthesis", lexer.TokParenRight)
	p.nextToken()
	return expr
}

// minIntMagnitude is the literal that only fits int64 once negated.
const minIntMagnitude = "9223372036854775808"

func parsePrefixExpr(p *parser) ast.Expr {
	operator := p.curToken
	p.nextToken()
	if operator.Type == lexer.TokDash && p.curToken.Type == lexer.TokNumber && p.curToken.Value == minIntMagnitude {
		return parseMinIntLiteral(p)
	}
	right := parseExpr(p, bpUnary)

	return ast.PrefixExpr{
		Operator: operator,
		Right:    right,
	}
}

// parseMinIntLiteral reads -9223372036854775808 as one literal, so every
// printed Integer parses back. An operator binding tighter than the minus
// would apply to the unsigned magnitude, which does not fit.
func parseMinIntLiteral(p *parser) ast.Expr {
	magnitude := p.curToken
	p.nextToken()
	if p.bindingPowerLookupTable[p.curToken.Type] > bpUnary {
		panic(&ParseError{Token: magnitude, Msg: "invalid number"})
	}
	return ast.Literal(value.Integer(math.MinInt64))
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) ast.Expr {
	operator := p.curToken
	p.nextToken()
	right := parseExpr(p, bp)

	return ast.BinaryExpr{
		Left:     left,
		Operator: operator,
		Right:    right,
	}
}

// parseRightBinaryExpr lets the right operand absorb operators of the same
// binding power, making the operator right-associative.
func parseRightBinaryExpr(p *parser, left ast.Expr, bp bindingPower) ast.Expr {
	operator := p.curToken
	p.nextToken()
	right := parseExpr(p, bp-1)

	return ast.BinaryExpr{
		Left:     left,
		Operator: operator,
		Right:    right,
	}
}

func parseAssignmentExpr(p *parser, left ast.Expr, bp bindingPower) ast.Expr {
	assignee, ok := left.(ast.SymbolExpr)
	if !ok {
		p.fail("invalid assignment target %s", ast.Dump(left))
	}
	operator := p.curToken
	p.nextToken()
	right := parseExpr(p, bp-1)

	return ast.AssignmentExpr{
		Assignee: assignee,
		Operator: operator,
		Right:    right,
	}
}
