// Package ast defines the abstract syntax tree produced by the parser
package ast

// AnonymousName is the reserved name given to the synthesized prototype
// wrapping a top-level expression.
const AnonymousName = "<anonymous>"

// Node is the base interface for all AST nodes
type Node interface {
	implNode()
}

// Expr is the interface for all expression nodes
type Expr interface {
	Node
	implExpr()
}

// Decl is the interface for top-level declarations
type Decl interface {
	Node
	implDecl()
}

// BinaryOp represents binary operators
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (op BinaryOp) String() string {
	names := []string{"+", "-", "*", "/", "%"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// NumberExpr represents a numeric literal
type NumberExpr struct {
	Value float64
}

// VariableExpr represents a reference to a named value
type VariableExpr struct {
	Name string
}

// BinaryExpr represents a binary expression. Left and Right are owned
// by this node.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// CallExpr represents a function call with positional arguments
type CallExpr struct {
	Callee string
	Args   []Expr
}

// Prototype represents a function signature: a name and its parameter
// names. Duplicate parameter names are not rejected at this layer.
type Prototype struct {
	Name   string
	Params []string
}

// Function represents a function definition: a prototype and one
// expression as the body
type Function struct {
	Proto *Prototype
	Body  Expr
}

// IsAnonymous reports whether the function wraps a top-level expression
func (f *Function) IsAnonymous() bool {
	return f.Proto != nil && f.Proto.Name == AnonymousName
}

// Program is an ordered sequence of top-level declarations
type Program struct {
	Decls []Decl
}

// Marker methods for interface implementation
func (*NumberExpr) implNode() {}
func (*NumberExpr) implExpr() {}

func (*VariableExpr) implNode() {}
func (*VariableExpr) implExpr() {}

func (*BinaryExpr) implNode() {}
func (*BinaryExpr) implExpr() {}

func (*CallExpr) implNode() {}
func (*CallExpr) implExpr() {}

func (*Prototype) implNode() {}
func (*Prototype) implDecl() {}

func (*Function) implNode() {}
func (*Function) implDecl() {}
