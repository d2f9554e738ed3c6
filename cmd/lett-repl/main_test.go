package main

import "testing"

func TestSplitDefinition(t *testing.T) {
	tests := []struct {
		input    string
		name     string
		rhs      string
		expected bool
	}{
		{"x = 1", "x", "1", true},
		{"x=1+2", "x", "1+2", true},
		{"  sum  =  a + b  ", "sum", "a + b", true},
		{"let x = 1 in x", "", "", false}, // whole line is an expression
		{"(x) = 1", "", "", false},
		{"x + y = 1", "", "", false},
		{"= 1", "", "", false},
		{"x =", "", "", false},
		{"1 + 2", "", "", false},
		{"12 = 3", "", "", false},
	}

	for i, tt := range tests {
		name, rhs, ok := splitDefinition(tt.input)
		if ok != tt.expected {
			t.Fatalf("tests[%d] - splitDefinition(%q) ok = %v, expected %v", i, tt.input, ok, tt.expected)
		}
		if ok && (name != tt.name || rhs != tt.rhs) {
			t.Fatalf("tests[%d] - splitDefinition(%q) = %q, %q; expected %q, %q",
				i, tt.input, name, rhs, tt.name, tt.rhs)
		}
	}
}

func TestREPLEvaluate(t *testing.T) {
	r := NewREPL(false, "", 10)

	out, err := r.Evaluate("x = 1 + 2")
	if err != nil {
		t.Fatalf("definition failed: %v", err)
	}
	if out != "x = 3" {
		t.Fatalf("definition output wrong: %s", out)
	}

	out, err = r.Evaluate("let y = 2 in x + y")
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if out != "5" {
		t.Fatalf("evaluation output wrong: %s", out)
	}

	if _, err := r.Evaluate("unknown + 1"); err == nil {
		t.Fatal("expected unbound variable error")
	}
}
