package ast

// Visitor is the traversal interface over expression nodes. Accept
// dispatches to the method matching the node's concrete type; visitors
// drive recursion into children themselves.
type Visitor interface {
	VisitVariable(v *Variable) any
	VisitIntegerLiteral(i *IntegerLiteral) any
	VisitAdd(a *Add) any
	VisitLet(l *Let) any
}
