// Package ast provides AST printing functionality
package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer outputs the AST in surface syntax. Binary expressions are
// fully parenthesized so that reparsing the output reproduces the
// same tree.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintProgram prints a complete program
func (p *Printer) PrintProgram(prog *Program) {
	for _, decl := range prog.Decls {
		p.printDecl(decl)
		fmt.Fprintln(p.w)
	}
}

func (p *Printer) printDecl(decl Decl) {
	switch d := decl.(type) {
	case *Prototype:
		fmt.Fprintf(p.w, "extern %s;", protoString(d))
	case *Function:
		if d.IsAnonymous() {
			fmt.Fprintf(p.w, "%s;", ExprString(d.Body))
		} else {
			fmt.Fprintf(p.w, "def %s %s;", protoString(d.Proto), ExprString(d.Body))
		}
	default:
		fmt.Fprintf(p.w, "# unknown declaration %T", decl)
	}
}

func protoString(proto *Prototype) string {
	return fmt.Sprintf("%s(%s)", proto.Name, strings.Join(proto.Params, " "))
}

// ExprString renders an expression as surface syntax
func ExprString(expr Expr) string {
	switch e := expr.(type) {
	case *NumberExpr:
		// Plain decimal form only; the lexer has no exponent syntax,
		// so printed literals must relex as a single number token.
		return strconv.FormatFloat(e.Value, 'f', -1, 64)
	case *VariableExpr:
		return e.Name
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", ExprString(e.Left), e.Op, ExprString(e.Right))
	case *CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = ExprString(arg)
		}
		return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
	default:
		return fmt.Sprintf("<unknown expression %T>", expr)
	}
}
