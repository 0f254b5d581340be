// Package parser builds an expression tree from a line of tokens.
package parser

import (
	"errors"
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// ParseError reports a token the grammar does not accept at its position.
type ParseError struct {
	Token lexer.Token
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token.Type == lexer.TokEOF {
		return fmt.Sprintf("parse error at offset %d: %s (got end of input)", e.Token.Pos(), e.Msg)
	}
	return fmt.Sprintf("parse error at offset %d: %s (got %q)", e.Token.Pos(), e.Msg, e.Token.Value)
}

type parser struct {
	lex *lexer.Lexer

	prevToken lexer.Token
	curToken  lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(lex *lexer.Lexer) *parser {
	p := &parser{
		lex:                     lex,
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	return p
}

// Parse parses one line into exactly one expression. Lexing errors are
// returned as *lexer.LexError, grammar errors as *ParseError. There is no
// recovery: on error the tree is nil.
func Parse(line string) (ast.Expr, error) {
	return ParseLexer(lexer.New(line))
}

// ParseLexer parses the tokens of lex up to TokEOF.
func ParseLexer(lex *lexer.Lexer) (expr ast.Expr, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var lexErr *lexer.LexError
		var parseErr *ParseError
		rErr, ok := r.(error)
		switch {
		case ok && errors.As(rErr, &lexErr):
			expr, err = nil, lexErr
		case ok && errors.As(rErr, &parseErr):
			expr, err = nil, parseErr
		default:
			panic(r)
		}
	}()

	p := newParser(lex)
	p.nextToken()
	expr = parseExpr(p, bpDefault)
	p.expect("unexpected token after expression", lexer.TokEOF)
	return expr, nil
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	p.curToken = p.lex.NextToken()
	if p.curToken.Type == lexer.TokError {
		panic(p.lex.Err())
	}
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(msg string, kind ...lexer.TokenType) lexer.Token {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken
	}
	p.fail("%s", msg)
	return p.curToken
}

// fail aborts the parse with a *ParseError on the current token.
func (p *parser) fail(format string, args ...any) {
	panic(&ParseError{Token: p.curToken, Msg: fmt.Sprintf(format, args...)})
}
