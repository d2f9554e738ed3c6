package ast

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		expr     Expr
		expected string
	}{
		{&Variable{Name: "x"}, "x"},
		{&IntegerLiteral{Value: 42}, "42"},
		{&Add{Left: &IntegerLiteral{Value: 1}, Right: &Variable{Name: "y"}}, "(1 + y)"},
		{
			&Let{
				Name:  "x",
				Value: &IntegerLiteral{Value: 1},
				Body:  &Add{Left: &Variable{Name: "x"}, Right: &IntegerLiteral{Value: 2}},
			},
			"(let x = 1 in (x + 2))",
		},
	}

	for i, tt := range tests {
		if got := tt.expr.String(); got != tt.expected {
			t.Fatalf("tests[%d] - rendering wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

// tagVisitor records which visit method Accept dispatched to.
type tagVisitor struct{}

func (tagVisitor) VisitVariable(*Variable) any             { return "variable" }
func (tagVisitor) VisitIntegerLiteral(*IntegerLiteral) any { return "integer" }
func (tagVisitor) VisitAdd(*Add) any                       { return "add" }
func (tagVisitor) VisitLet(*Let) any                       { return "let" }

func TestAcceptDispatch(t *testing.T) {
	tests := []struct {
		expr     Expr
		expected string
	}{
		{&Variable{Name: "x"}, "variable"},
		{&IntegerLiteral{Value: 1}, "integer"},
		{&Add{Left: &IntegerLiteral{Value: 1}, Right: &IntegerLiteral{Value: 2}}, "add"},
		{&Let{Name: "x", Value: &IntegerLiteral{Value: 1}, Body: &Variable{Name: "x"}}, "let"},
	}

	for i, tt := range tests {
		if got := tt.expr.Accept(tagVisitor{}); got != tt.expected {
			t.Fatalf("tests[%d] - dispatch wrong. expected=%q, got=%v", i, tt.expected, got)
		}
	}
}
