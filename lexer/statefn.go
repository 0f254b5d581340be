package lexer

import "unicode"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokDash,
	'*': TokStar,
	'/': TokSlash,
	'^': TokCaret,
	'=': TokEquals,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case r == 0 && l.pos >= len(l.input):
		l.next()
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.acceptRun(" \t\r\n")
		l.ignore()
		return lexText
	case r >= '0' && r <= '9':
		return lexNumber
	case isIdentifierRune(r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.fail(r, l.pos)
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRunFunc(isIdentifierRune)
	return l.emit(TokIdentifier)
}

func isIdentifierRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
