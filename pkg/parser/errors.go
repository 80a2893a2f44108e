package parser

import (
	"fmt"

	"github.com/kaleido-lang/kaleidoc/pkg/lexer"
)

// UnexpectedTokenError reports a token that the grammar forbids at the
// point where it was seen.
type UnexpectedTokenError struct {
	Token lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("line %d, col %d: unexpected token %s",
		e.Token.Line, e.Token.Column, tokenString(e.Token))
}

// UnexpectedEOIError reports that the input ended where a token was
// required.
type UnexpectedEOIError struct {
	Line   int
	Column int
}

func (e *UnexpectedEOIError) Error() string {
	return fmt.Sprintf("line %d, col %d: unexpected end of input", e.Line, e.Column)
}

// ExpectedTokenError reports that a specific token was required and
// something else was found.
type ExpectedTokenError struct {
	Expected lexer.TokenType
	Got      lexer.Token
}

func (e *ExpectedTokenError) Error() string {
	return fmt.Sprintf("line %d, col %d: expected %s, got %s",
		e.Got.Line, e.Got.Column, e.Expected, tokenString(e.Got))
}

// NestingDepthError reports that expression nesting exceeded the
// parser's depth limit.
type NestingDepthError struct {
	Limit int
}

func (e *NestingDepthError) Error() string {
	return fmt.Sprintf("expression nesting exceeds limit of %d", e.Limit)
}

func tokenString(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TokenIdent, lexer.TokenNumber, lexer.TokenIllegal:
		return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
	}
	return tok.Type.String()
}
