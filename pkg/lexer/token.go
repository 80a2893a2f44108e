package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenIdent  // foo, x
	TokenNumber // 42, 3.14

	// Keywords
	TokenDef    // def
	TokenExtern // extern

	// Operators
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenComma     // ,
	TokenSemicolon // ;
)

var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenIllegal:   "ILLEGAL",
	TokenIdent:     "IDENT",
	TokenNumber:    "NUMBER",
	TokenDef:       "def",
	TokenExtern:    "extern",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenSlash:     "/",
	TokenPercent:   "%",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenComma:     ",",
	TokenSemicolon: ";",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsOperator reports whether the token type is a binary operator.
// The precedence climber only ever continues past operator tokens;
// everything else terminates an expression.
func (t TokenType) IsOperator() bool {
	switch t {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent:
		return true
	}
	return false
}

// Token represents a lexical token. Literal is a substring of the
// source text and is only valid as long as the source is.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// keywords maps keyword strings to token types
var keywords = map[string]TokenType{
	"def":    TokenDef,
	"extern": TokenExtern,
}

// operators maps operator symbols to token types
var operators = map[string]TokenType{
	"+": TokenPlus,
	"-": TokenMinus,
	"*": TokenStar,
	"/": TokenSlash,
	"%": TokenPercent,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}

// LookupOperator returns the token type for an operator symbol such as
// "+" or "%". The second result is false for symbols the lexer does not
// produce.
func LookupOperator(sym string) (TokenType, bool) {
	tok, ok := operators[sym]
	return tok, ok
}
