// Package grammar defines the Lett expression grammar on top of the
// parsec combinators.
//
// The surface grammar is
//
//	Expr -> Term ('+' Term)*
//	Term -> "let" Ident '=' Expr "in" Expr
//	      | Ident
//	      | Number
//	      | '(' Expr ')'
//
// which is the left-recursion-free form of "Expr -> Expr '+' Term |
// Term": one leading Term followed by a tail of '+'-prefixed Terms,
// folded back left-associatively. The keywords "let" and "in" are
// ordinary identifier tokens matched by text, not reserved by the
// lexer, so a variable may be named "let" or "in"; both the keyword and
// the identifier alternatives are then explored and the
// full-consumption filter in ParseString picks whichever completes.
package grammar

import (
	"errors"
	"fmt"

	"github.com/lett-lang/lett/internal/ast"
	"github.com/lett-lang/lett/internal/lexer"
	"github.com/lett-lang/lett/internal/parsec"
)

// symbol matches one symbol token with the given literal.
func symbol(lit string) parsec.Parser[lexer.Token] {
	return parsec.Satisfy(func(t lexer.Token) bool {
		return t.Type == lexer.TokenSymbol && t.Literal == lit
	})
}

// keyword matches an identifier token whose text equals word.
func keyword(word string) parsec.Parser[lexer.Token] {
	return parsec.Satisfy(func(t lexer.Token) bool {
		return t.Type == lexer.TokenIdentifier && t.Literal == word
	})
}

// identifier matches any identifier token and yields its text,
// including the words the grammar otherwise treats as keywords.
func identifier() parsec.Parser[string] {
	return parsec.Accept(func(t lexer.Token) (string, bool) {
		return t.Literal, t.Type == lexer.TokenIdentifier
	})
}

// expression is the entry-point parser, built once.
var expression = buildExpression()

func buildExpression() parsec.Parser[ast.Expr] {
	var expr parsec.Parser[ast.Expr]
	exprRef := parsec.Lazy(func() parsec.Parser[ast.Expr] { return expr })

	letTerm := parsec.Bind(parsec.Right(keyword("let"), identifier()),
		func(name string) parsec.Parser[ast.Expr] {
			return parsec.Bind(parsec.Right(symbol("="), exprRef),
				func(value ast.Expr) parsec.Parser[ast.Expr] {
					return parsec.Map(parsec.Right(keyword("in"), exprRef),
						func(body ast.Expr) ast.Expr {
							return &ast.Let{Name: name, Value: value, Body: body}
						})
				})
		})

	variable := parsec.Accept(func(t lexer.Token) (ast.Expr, bool) {
		if t.Type != lexer.TokenIdentifier {
			return nil, false
		}
		return &ast.Variable{Name: t.Literal}, true
	})

	number := parsec.Accept(func(t lexer.Token) (ast.Expr, bool) {
		if t.Type != lexer.TokenNumber {
			return nil, false
		}
		return &ast.IntegerLiteral{Value: t.Value}, true
	})

	paren := parsec.Left(parsec.Right(symbol("("), exprRef), symbol(")"))

	term := parsec.Choice(letTerm, variable, number, paren)

	// Term, then a possibly empty tail of '+'-prefixed Terms, folded
	// onto the head so that "1 + 2 + 3" becomes ((1+2)+3).
	tail := parsec.Many(parsec.Right(symbol("+"), term))
	expr = parsec.Bind(term, func(head ast.Expr) parsec.Parser[ast.Expr] {
		return parsec.Map(tail, func(rest []ast.Expr) ast.Expr {
			acc := head
			for _, t := range rest {
				acc = &ast.Add{Left: acc, Right: t}
			}
			return acc
		})
	})

	return expr
}

// Expression returns the parser for a full Lett expression.
func Expression() parsec.Parser[ast.Expr] {
	return expression
}

// Parse runs the expression grammar over a token sequence and returns
// the raw result set, partial parses included.
func Parse(ts []lexer.Token) []parsec.Result[ast.Expr] {
	return expression.Parse(ts)
}

var (
	// ErrNoParse reports that no full-consumption parse exists.
	ErrNoParse = errors.New("no parse")
	// ErrAmbiguous reports more than one full-consumption parse; the
	// grammar is built to be unambiguous for well-formed input, so this
	// surfaces a construction defect (or a variable named "let"/"in").
	ErrAmbiguous = errors.New("ambiguous parse")
)

// ParseString lexes src and parses it as a single expression that must
// consume all input. On ambiguity the first full parse is returned
// together with ErrAmbiguous so callers that ignore the error still get
// the canonical result.
func ParseString(src string) (ast.Expr, error) {
	tokens := lexer.New(src).Tokenize()
	results := Parse(tokens)

	var full []ast.Expr
	for _, r := range results {
		if len(r.Rest) == 0 {
			full = append(full, r.Value)
		}
	}

	switch {
	case len(full) == 1:
		return full[0], nil
	case len(full) > 1:
		return full[0], fmt.Errorf("%w: %d full parses", ErrAmbiguous, len(full))
	case len(results) > 0:
		// Only partial parses: point at the first token the longest of
		// them could not consume.
		best := results[0]
		for _, r := range results[1:] {
			if len(r.Rest) < len(best.Rest) {
				best = r
			}
		}
		next := best.Rest[0]
		return nil, fmt.Errorf("%w: unexpected %q at line %d, column %d",
			ErrNoParse, next.Literal, next.Span.Start.Line, next.Span.Start.Column)
	default:
		return nil, ErrNoParse
	}
}
