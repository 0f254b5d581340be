package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Operators.
	TokPlus   // '+'.
	TokDash   // '-'.
	TokStar   // '*'.
	TokSlash  // '/'.
	TokCaret  // '^'.
	TokEquals // '='.

	// Punctuation.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",

	TokPlus:   "PLUS",
	TokDash:   "DASH",
	TokStar:   "STAR",
	TokSlash:  "SLASH",
	TokCaret:  "CARET",
	TokEquals: "EQUALS",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperator reports whether the type is an arithmetic or assignment operator.
func (tt TokenType) IsOperator() bool {
	return tt >= TokPlus && tt <= TokEquals
}

// IsPunctuation reports whether the type is a grouping character.
func (tt TokenType) IsPunctuation() bool {
	return tt == TokParenLeft || tt == TokParenRight
}

// Token represents a lexical token of an expression line.
type Token struct {
	Type  TokenType
	Value string

	pos int // Byte offset of the first character.
}

// Pos returns the byte offset of the token in the line.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return fmt.Sprintf("EOF[%d]", t.pos)
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}

func (t Token) errorString() string {
	out := fmt.Sprintf("ERROR [%d]: %s", t.pos, t.Value)
	return out
}
