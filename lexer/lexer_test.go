package lexer

import (
	"errors"
	"testing"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokEOF || tok.Type == TokError {
			break
		}
	}
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if expectedToken.Type != TokError && token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}

		if token.pos != expectedToken.pos {
			t.Fatalf("tests[%d] - wrong position. expected=%d, got=%d (%s)",
				i, expectedToken.pos, token.pos, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
}

func TestLexerEmpty(t *testing.T) {
	testLexer(t, "", []Token{
		{Type: TokEOF, Value: "", pos: 0},
	})
	testLexer(t, " \t ", []Token{
		{Type: TokEOF, Value: "", pos: 3},
	})
}

func TestLexerNumbers(t *testing.T) {
	testLexer(t, "42 3.14 7.", []Token{
		{Type: TokNumber, Value: "42", pos: 0},
		{Type: TokNumber, Value: "3.14", pos: 3},
		{Type: TokNumber, Value: "7.", pos: 8},
		{Type: TokEOF, Value: "", pos: 10},
	})
}

func TestLexerIdentifiers(t *testing.T) {
	testLexer(t, "pi _tmp Xy", []Token{
		{Type: TokIdentifier, Value: "pi", pos: 0},
		{Type: TokIdentifier, Value: "_tmp", pos: 3},
		{Type: TokIdentifier, Value: "Xy", pos: 8},
		{Type: TokEOF, Value: "", pos: 10},
	})
}

func TestLexerIdentifierThenDigits(t *testing.T) {
	// Identifiers are letters and underscores only, digits start a new token.
	testLexer(t, "x1", []Token{
		{Type: TokIdentifier, Value: "x", pos: 0},
		{Type: TokNumber, Value: "1", pos: 1},
		{Type: TokEOF, Value: "", pos: 2},
	})
}

func TestLexerExpression(t *testing.T) {
	testLexer(t, "2+3*4", []Token{
		{Type: TokNumber, Value: "2", pos: 0},
		{Type: TokPlus, Value: "+", pos: 1},
		{Type: TokNumber, Value: "3", pos: 2},
		{Type: TokStar, Value: "*", pos: 3},
		{Type: TokNumber, Value: "4", pos: 4},
		{Type: TokEOF, Value: "", pos: 5},
	})
}

func TestLexerAssignment(t *testing.T) {
	testLexer(t, "x = -(y ^ 2) / 3", []Token{
		{Type: TokIdentifier, Value: "x", pos: 0},
		{Type: TokEquals, Value: "=", pos: 2},
		{Type: TokDash, Value: "-", pos: 4},
		{Type: TokParenLeft, Value: "(", pos: 5},
		{Type: TokIdentifier, Value: "y", pos: 6},
		{Type: TokCaret, Value: "^", pos: 8},
		{Type: TokNumber, Value: "2", pos: 10},
		{Type: TokParenRight, Value: ")", pos: 11},
		{Type: TokSlash, Value: "/", pos: 13},
		{Type: TokNumber, Value: "3", pos: 15},
		{Type: TokEOF, Value: "", pos: 16},
	})
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	testLexer(t, "1 + $", []Token{
		{Type: TokNumber, Value: "1", pos: 0},
		{Type: TokPlus, Value: "+", pos: 2},
		{Type: TokError, pos: 4},
	})
}

func TestLexerStopsAfterError(t *testing.T) {
	l := New("# 1")
	if tok := l.NextToken(); tok.Type != TokError {
		t.Fatalf("Expected error token, got %s", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != TokEOF {
			t.Fatalf("Expected EOF after error, got %s", tok)
		}
	}
}

func TestLex(t *testing.T) {
	tokens, err := Lex("1 / 0")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if len(tokens) != 4 || tokens[3].Type != TokEOF {
		t.Fatalf("Unexpected tokens: %v", tokens)
	}

	_, err = Lex("2 % 3")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected a *LexError, got %v", err)
	}
	if lexErr.Char != '%' || lexErr.Offset != 2 {
		t.Fatalf("Unexpected error detail: %+v", lexErr)
	}
	if got, want := lexErr.Error(), `unexpected character '%' at offset 2`; got != want {
		t.Fatalf("Unexpected message: %q, want %q", got, want)
	}
}

func TestLexMultibyteOffset(t *testing.T) {
	_, err := Lex("é + €")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected a *LexError, got %v", err)
	}
	// 'é' is a letter, '€' is not; offsets are in bytes.
	if lexErr.Char != '€' || lexErr.Offset != 5 {
		t.Fatalf("Unexpected error detail: %+v", lexErr)
	}
}

func TestTokenCategories(t *testing.T) {
	for _, tt := range []TokenType{TokPlus, TokDash, TokStar, TokSlash, TokCaret, TokEquals} {
		if !tt.IsOperator() {
			t.Errorf("%s should be an operator", tt)
		}
	}
	for _, tt := range []TokenType{TokParenLeft, TokParenRight} {
		if !tt.IsPunctuation() || tt.IsOperator() {
			t.Errorf("%s should be punctuation", tt)
		}
	}
	if TokNumber.IsOperator() || TokIdentifier.IsPunctuation() {
		t.Error("literals are neither operators nor punctuation")
	}
}
