// Package lexer splits an expression line into tokens.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const digits = "0123456789"

// LexError reports a character the lexer does not recognize.
type LexError struct {
	Char   rune
	Offset int // Byte offset in the line.
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Offset)
}

type Lexer struct {
	input string

	curToken Token
	err      *LexError

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given line.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Lex scans the whole line. The returned tokens end with TokEOF.
func Lex(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return tokens, l.Err()
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

// NextToken returns the next token. Once an error or EOF is returned, every
// later call returns EOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error behind the last TokError token, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) acceptRunFunc(valid func(rune) bool) bool {
	accepted := false
	for {
		r := l.next()
		if r == 0 || !valid(r) {
			break
		}
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// fail emits an error token for r at offset and drops the rest of the input.
func (l *Lexer) fail(r rune, offset int) stateFn {
	l.err = &LexError{Char: r, Offset: offset}
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Error(),
		pos:   offset,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
