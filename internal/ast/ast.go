// Package ast defines the Lett expression AST.
//
// Nodes are immutable once constructed and form a tagged union over
// variable references, integer constants, binary addition, and
// let-bindings. Parenthesization in the source is not represented.
package ast

import "fmt"

// Expr represents all expression nodes
type Expr interface {
	// String returns a canonical parenthesized rendering of the node
	String() string
	// Accept implements the visitor pattern
	Accept(visitor Visitor) any

	exprNode()
}

// Variable represents a reference to a bound name
type Variable struct {
	Name string
}

func (v *Variable) String() string             { return v.Name }
func (v *Variable) Accept(visitor Visitor) any { return visitor.VisitVariable(v) }
func (v *Variable) exprNode()                  {}

// IntegerLiteral represents a non-negative integer constant
type IntegerLiteral struct {
	Value int64
}

func (i *IntegerLiteral) String() string             { return fmt.Sprintf("%d", i.Value) }
func (i *IntegerLiteral) Accept(visitor Visitor) any { return visitor.VisitIntegerLiteral(i) }
func (i *IntegerLiteral) exprNode()                  {}

// Add represents binary addition of two sub-expressions
type Add struct {
	Left  Expr
	Right Expr
}

func (a *Add) String() string             { return fmt.Sprintf("(%s + %s)", a.Left, a.Right) }
func (a *Add) Accept(visitor Visitor) any { return visitor.VisitAdd(a) }
func (a *Add) exprNode()                  {}

// Let represents a let-binding: the name, the bound expression, and the
// body the binding scopes over
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

func (l *Let) String() string {
	return fmt.Sprintf("(let %s = %s in %s)", l.Name, l.Value, l.Body)
}
func (l *Let) Accept(visitor Visitor) any { return visitor.VisitLet(l) }
func (l *Let) exprNode()                  {}
