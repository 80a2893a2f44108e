// Package lexer tokenizes kaleidoc source code
package lexer

// Lexer tokenizes source code
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // next reading position
	ch      byte // current character
	line    int
	column  int
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	l.skipComments()

	tok := Token{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		tok.Type = TokenEOF
		tok.Literal = ""
	case '+':
		tok = l.newToken(TokenPlus)
	case '-':
		tok = l.newToken(TokenMinus)
	case '*':
		tok = l.newToken(TokenStar)
	case '/':
		tok = l.newToken(TokenSlash)
	case '%':
		tok = l.newToken(TokenPercent)
	case '(':
		tok = l.newToken(TokenLParen)
	case ')':
		tok = l.newToken(TokenRParen)
	case ',':
		tok = l.newToken(TokenComma)
	case ';':
		tok = l.newToken(TokenSemicolon)
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = LookupIdent(tok.Literal)
			return tok
		}
		if isDigit(l.ch) {
			tok.Type = TokenNumber
			tok.Literal = l.readNumber()
			return tok
		}
		tok = l.newToken(TokenIllegal)
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(tokenType TokenType) Token {
	return Token{
		Type:    tokenType,
		Literal: l.input[l.pos : l.pos+1],
		Line:    l.line,
		Column:  l.column,
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComments skips '#' comments, which run to end of line
func (l *Lexer) skipComments() {
	for l.ch == '#' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		l.skipWhitespace()
	}
}

// readIdentifier reads an identifier: a letter followed by letters or digits
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal with an optional fractional part
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
