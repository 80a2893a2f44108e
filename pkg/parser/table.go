package parser

import "github.com/kaleido-lang/kaleidoc/pkg/lexer"

// OpTable maps binary operator tokens to a non-negative binding
// strength. Higher strengths bind tighter. The table is read-only
// during parsing; a single table can serve concurrent parses.
type OpTable map[lexer.TokenType]int

// DefaultTable returns the standard operator precedences:
// additive operators bind at 20, multiplicative at 40.
func DefaultTable() OpTable {
	return OpTable{
		lexer.TokenPlus:    20,
		lexer.TokenMinus:   20,
		lexer.TokenStar:    40,
		lexer.TokenSlash:   40,
		lexer.TokenPercent: 40,
	}
}

// TableFromSymbols builds an OpTable from operator symbols, as read
// from a configuration file. Unknown symbols are rejected.
func TableFromSymbols(symbols map[string]int) (OpTable, error) {
	table := make(OpTable, len(symbols))
	for sym, prec := range symbols {
		tok, ok := lexer.LookupOperator(sym)
		if !ok {
			return nil, &UnknownOperatorError{Symbol: sym}
		}
		table[tok] = prec
	}
	return table, nil
}

// UnknownOperatorError reports an operator symbol with no token type
type UnknownOperatorError struct {
	Symbol string
}

func (e *UnknownOperatorError) Error() string {
	return "unknown operator symbol: " + e.Symbol
}
