// Package eval evaluates Lett expression ASTs.
package eval

import (
	"errors"
	"fmt"

	"github.com/lett-lang/lett/internal/ast"
)

// ErrUnbound reports a variable reference with no binding in scope.
var ErrUnbound = errors.New("unbound variable")

// Env is an immutable chained scope. The zero value (nil) is the empty
// environment; Extend returns a child without touching the parent, so
// environments can be shared freely across evaluations.
type Env struct {
	name   string
	value  int64
	parent *Env
}

// Extend returns a new environment with name bound to value, shadowing
// any outer binding of the same name.
func (e *Env) Extend(name string, value int64) *Env {
	return &Env{name: name, value: value, parent: e}
}

// Lookup resolves a name against the innermost binding.
func (e *Env) Lookup(name string) (int64, bool) {
	for env := e; env != nil; env = env.parent {
		if env.name == name {
			return env.value, true
		}
	}
	return 0, false
}

// Evaluate reduces an expression to its integer value under env.
func Evaluate(e ast.Expr, env *Env) (int64, error) {
	ev := &evaluator{env: env}
	switch r := e.Accept(ev).(type) {
	case int64:
		return r, nil
	case error:
		return 0, r
	default:
		return 0, fmt.Errorf("unexpected evaluation result %T", r)
	}
}

// evaluator walks the AST as an ast.Visitor. Each visit returns either
// an int64 or an error.
type evaluator struct {
	env *Env
}

func (ev *evaluator) VisitVariable(v *ast.Variable) any {
	val, ok := ev.env.Lookup(v.Name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnbound, v.Name)
	}
	return val
}

func (ev *evaluator) VisitIntegerLiteral(i *ast.IntegerLiteral) any {
	return i.Value
}

func (ev *evaluator) VisitAdd(a *ast.Add) any {
	left, err := Evaluate(a.Left, ev.env)
	if err != nil {
		return err
	}
	right, err := Evaluate(a.Right, ev.env)
	if err != nil {
		return err
	}
	return left + right
}

func (ev *evaluator) VisitLet(l *ast.Let) any {
	bound, err := Evaluate(l.Value, ev.env)
	if err != nil {
		return err
	}
	body, err := Evaluate(l.Body, ev.env.Extend(l.Name, bound))
	if err != nil {
		return err
	}
	return body
}
