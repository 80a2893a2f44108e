// Package parser implements a recursive descent parser with precedence
// climbing for binary expressions
package parser

import (
	"strconv"

	"github.com/kaleido-lang/kaleidoc/pkg/ast"
	"github.com/kaleido-lang/kaleidoc/pkg/lexer"
)

// DefaultMaxDepth bounds expression nesting. Parenthesized primaries
// and the climber recurse with native call depth, so adversarial input
// must not be allowed to exhaust the stack.
const DefaultMaxDepth = 512

// Parser parses a token stream into an AST. Every parse method returns
// the first error encountered, never a partial tree.
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	ops       OpTable
	depth     int
	maxDepth  int
}

// New creates a new Parser over the given lexer using the default
// operator table
func New(l *lexer.Lexer) *Parser {
	return NewWithTable(l, DefaultTable())
}

// NewWithTable creates a new Parser using an explicit operator table
func NewWithTable(l *lexer.Lexer, ops OpTable) *Parser {
	p := &Parser{
		l:        l,
		ops:      ops,
		maxDepth: DefaultMaxDepth,
	}
	// Read two tokens to initialize curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// SetMaxDepth overrides the expression nesting limit
func (p *Parser) SetMaxDepth(n int) {
	if n > 0 {
		p.maxDepth = n
	}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) eoi() error {
	return &UnexpectedEOIError{Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) enterNesting() error {
	p.depth++
	if p.depth > p.maxDepth {
		return &NestingDepthError{Limit: p.maxDepth}
	}
	return nil
}

func (p *Parser) leaveNesting() {
	p.depth--
}

// ParseProgram parses top-level declarations until end of input.
// Stray semicolons between declarations are skipped.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for {
		switch p.curToken.Type {
		case lexer.TokenEOF:
			return prog, nil
		case lexer.TokenSemicolon:
			p.nextToken()
		case lexer.TokenDef:
			fn, err := p.ParseDefinition()
			if err != nil {
				return nil, err
			}
			prog.Decls = append(prog.Decls, fn)
		case lexer.TokenExtern:
			proto, err := p.ParseExtern()
			if err != nil {
				return nil, err
			}
			prog.Decls = append(prog.Decls, proto)
		default:
			fn, err := p.ParseTopLevelExpr()
			if err != nil {
				return nil, err
			}
			prog.Decls = append(prog.Decls, fn)
		}
	}
}

// ParseExtern parses an external declaration: the extern keyword
// followed by a prototype
func (p *Parser) ParseExtern() (*ast.Prototype, error) {
	p.nextToken() // swallow the extern keyword
	return p.ParsePrototype()
}

// ParsePrototype parses a function signature: a name, an opening
// parenthesis, zero or more parameter names with no separators, and a
// closing parenthesis
func (p *Parser) ParsePrototype() (*ast.Prototype, error) {
	if !p.curTokenIs(lexer.TokenIdent) {
		return nil, &ExpectedTokenError{Expected: lexer.TokenIdent, Got: p.curToken}
	}
	name := p.curToken.Literal
	p.nextToken()

	if !p.curTokenIs(lexer.TokenLParen) {
		return nil, &ExpectedTokenError{Expected: lexer.TokenLParen, Got: p.curToken}
	}
	p.nextToken()

	var params []string
	for p.curTokenIs(lexer.TokenIdent) {
		params = append(params, p.curToken.Literal)
		p.nextToken()
	}

	if !p.curTokenIs(lexer.TokenRParen) {
		return nil, &ExpectedTokenError{Expected: lexer.TokenRParen, Got: p.curToken}
	}
	p.nextToken()

	return &ast.Prototype{Name: name, Params: params}, nil
}

// ParseDefinition parses a function definition: the def keyword, a
// prototype, and one expression as the body
func (p *Parser) ParseDefinition() (*ast.Function, error) {
	p.nextToken() // swallow the def keyword

	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Proto: proto, Body: body}, nil
}

// ParseTopLevelExpr parses one expression and wraps it in a zero-arg
// anonymous function so the downstream stages handle it uniformly
func (p *Parser) ParseTopLevelExpr() (*ast.Function, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	proto := &ast.Prototype{Name: ast.AnonymousName}
	return &ast.Function{Proto: proto, Body: expr}, nil
}

// ParseExpression parses a full expression: a primary followed by zero
// or more binary operator continuations
func (p *Parser) ParseExpression() (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

// parsePrimary dispatches on the lookahead token to parse one atomic
// expression
func (p *Parser) parsePrimary() (ast.Expr, error) {
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.leaveNesting()

	switch p.curToken.Type {
	case lexer.TokenIdent:
		return p.parseIdentifierExpr()
	case lexer.TokenNumber:
		return p.parseNumberExpr()
	case lexer.TokenLParen:
		return p.parseParenExpr()
	case lexer.TokenEOF:
		return nil, p.eoi()
	default:
		return nil, &UnexpectedTokenError{Token: p.curToken}
	}
}

func (p *Parser) parseNumberExpr() (ast.Expr, error) {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		return nil, &UnexpectedTokenError{Token: p.curToken}
	}
	p.nextToken()
	return &ast.NumberExpr{Value: value}, nil
}

// parseIdentifierExpr parses a variable reference or, when the name is
// followed by an argument list, a call expression
func (p *Parser) parseIdentifierExpr() (ast.Expr, error) {
	name := p.curToken.Literal

	if !p.peekTokenIs(lexer.TokenLParen) {
		p.nextToken()
		return &ast.VariableExpr{Name: name}, nil
	}

	p.nextToken() // move to '('
	p.nextToken() // consume '('

	var args []ast.Expr
	for !p.curTokenIs(lexer.TokenRParen) {
		if p.curTokenIs(lexer.TokenEOF) {
			return nil, p.eoi()
		}

		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.curTokenIs(lexer.TokenComma) {
			p.nextToken()
			continue
		}
		if p.curTokenIs(lexer.TokenEOF) {
			return nil, p.eoi()
		}
		if !p.curTokenIs(lexer.TokenRParen) {
			return nil, &UnexpectedTokenError{Token: p.curToken}
		}
	}
	p.nextToken() // consume ')'

	return &ast.CallExpr{Callee: name, Args: args}, nil
}

// parseParenExpr parses a parenthesized expression. Parentheses only
// affect grouping; the inner expression is returned unchanged.
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	p.nextToken() // consume '('

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if p.curTokenIs(lexer.TokenEOF) {
		return nil, p.eoi()
	}
	if !p.curTokenIs(lexer.TokenRParen) {
		return nil, &ExpectedTokenError{Expected: lexer.TokenRParen, Got: p.curToken}
	}
	p.nextToken()

	return expr, nil
}

// precedence returns the binding strength of a token, or -1 when it
// cannot continue a binary expression. An operator token missing from
// the table is a hard error, not a silent terminator.
func (p *Parser) precedence(tok lexer.Token) (int, error) {
	if !tok.Type.IsOperator() {
		return -1, nil
	}
	prec, ok := p.ops[tok.Type]
	if !ok {
		return 0, &UnexpectedTokenError{Token: tok}
	}
	return prec, nil
}

// parseBinOpRHS folds (operator, primary) pairs into lhs while the
// pending operator binds at least as tightly as minPrec. Equal
// precedence folds left-associatively; when the operator after the
// right-hand primary binds tighter, the climber recurses so that the
// tighter operator nests deeper.
func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expr) (ast.Expr, error) {
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.leaveNesting()

	for {
		tokPrec, err := p.precedence(p.curToken)
		if err != nil {
			return nil, err
		}
		if tokPrec < minPrec {
			return lhs, nil
		}

		opTok := p.curToken
		p.nextToken()

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		nextPrec, err := p.precedence(p.curToken)
		if err != nil {
			return nil, err
		}
		if tokPrec < nextPrec {
			rhs, err = p.parseBinOpRHS(tokPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryExpr{Op: binaryOps[opTok.Type], Left: lhs, Right: rhs}
	}
}

// binaryOps maps operator tokens to AST operators
var binaryOps = map[lexer.TokenType]ast.BinaryOp{
	lexer.TokenPlus:    ast.OpAdd,
	lexer.TokenMinus:   ast.OpSub,
	lexer.TokenStar:    ast.OpMul,
	lexer.TokenSlash:   ast.OpDiv,
	lexer.TokenPercent: ast.OpMod,
}
