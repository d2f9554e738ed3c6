// Package parsec implements a backtracking parser-combinator library
// over Lett token sequences.
//
// A Parser is a pure function from an input token sequence to the
// complete ordered set of (value, remaining-input) pairs, the "list of
// successes" model. An empty result set is the only failure signal;
// there are no errors, no exceptions, and no shared state anywhere in
// the package. Alternation concatenates result sets in order,
// sequencing enumerates them depth-first left-to-right, so downstream
// code may rely on result order (e.g. "first full parse wins") but must
// never assume uniqueness.
//
// Grammars are built structurally from the four primitives (Fail,
// Succeed, Satisfy, Accept) and the algebra (Alt, Map, Apply, Bind);
// recursive productions go through Lazy. True left recursion does not
// terminate under this model and is a construction-time defect, not a
// runtime condition the package guards against.
package parsec

import "github.com/lett-lang/lett/internal/lexer"

// Result is one way a parser can succeed: the produced value and the
// input left over after the consumed prefix.
type Result[T any] struct {
	Value T
	Rest  []lexer.Token
}

// Parser wraps the bare parsing function. Two parsers are
// interchangeable iff they produce the same result set for every input;
// there is no other identity.
type Parser[T any] struct {
	run func(ts []lexer.Token) []Result[T]
}

// New wraps a parsing function. The function must be pure: it may read
// the given token slice but never modify it, and it must not retain
// state across calls.
func New[T any](run func(ts []lexer.Token) []Result[T]) Parser[T] {
	return Parser[T]{run: run}
}

// Parse runs the parser on a token sequence and returns every
// (value, leftover) pair, in left-to-right depth-first order. A nil or
// empty slice means the parser failed.
func (p Parser[T]) Parse(ts []lexer.Token) []Result[T] {
	return p.run(ts)
}

// Fail is the empty language: it fails on every input. It is the
// identity element of Alt.
func Fail[T any]() Parser[T] {
	return New(func(ts []lexer.Token) []Result[T] {
		return nil
	})
}

// Succeed is the empty word: it succeeds with v on every input without
// consuming anything. It is the unit of Bind and the left identity of
// sequencing.
func Succeed[T any](v T) Parser[T] {
	return New(func(ts []lexer.Token) []Result[T] {
		return []Result[T]{{Value: v, Rest: ts}}
	})
}

// Accept consumes exactly one token iff the input is non-empty and f is
// defined on its first token, producing f's image as the value. Nothing
// is consumed on failure.
func Accept[T any](f func(lexer.Token) (T, bool)) Parser[T] {
	return New(func(ts []lexer.Token) []Result[T] {
		if len(ts) == 0 {
			return nil
		}
		v, ok := f(ts[0])
		if !ok {
			return nil
		}
		return []Result[T]{{Value: v, Rest: ts[1:]}}
	})
}

// Satisfy consumes exactly one token iff the input is non-empty and the
// predicate holds on its first token. It is Accept specialized to the
// partial identity function.
func Satisfy(pred func(lexer.Token) bool) Parser[lexer.Token] {
	return Accept(func(t lexer.Token) (lexer.Token, bool) {
		return t, pred(t)
	})
}

// Alt is ordered alternation: a's results followed by b's results on
// the same input. Duplicates are preserved, never deduplicated.
// Associative, with Fail as identity on both sides.
func Alt[T any](a, b Parser[T]) Parser[T] {
	return New(func(ts []lexer.Token) []Result[T] {
		ra := a.Parse(ts)
		rb := b.Parse(ts)
		out := make([]Result[T], 0, len(ra)+len(rb))
		out = append(out, ra...)
		return append(out, rb...)
	})
}

// Choice folds Alt over any number of alternatives, first one wins
// ordering. Choice() is Fail.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	out := Fail[T]()
	for i := len(ps) - 1; i >= 0; i-- {
		out = Alt(ps[i], out)
	}
	return out
}

// Map transforms every result value with f, leaving consumption
// behavior and result order untouched. Satisfies the functor laws:
// mapping the identity is a no-op, and mapping f∘g equals mapping g
// then mapping f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return New(func(ts []lexer.Token) []Result[B] {
		ra := p.Parse(ts)
		if len(ra) == 0 {
			return nil
		}
		out := make([]Result[B], len(ra))
		for i, r := range ra {
			out[i] = Result[B]{Value: f(r.Value), Rest: r.Rest}
		}
		return out
	})
}

// Bind is monadic sequencing: run p, and for each of its results run
// f(value) on the leftover input, concatenating everything in p-result
// order. Succeed is its left and right identity and Bind is associative
// up to the nesting of values.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return New(func(ts []lexer.Token) []Result[B] {
		var out []Result[B]
		for _, r := range p.Parse(ts) {
			out = append(out, f(r.Value).Parse(r.Rest)...)
		}
		return out
	})
}

// Apply is applicative sequencing: run the function parser, then the
// argument parser on each leftover, and apply. The enumeration is the
// outer loop over pf's results with an inner loop per result, so branch
// counts add up per pf branch rather than multiplying uniformly.
func Apply[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Bind(pf, func(f func(A) B) Parser[B] {
		return Map(pa, f)
	})
}

// Lazy defers construction of a parser until it is first run, which is
// what lets mutually recursive productions refer to each other. The
// thunk is re-entered on every Parse call; it must be cheap and pure.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return New(func(ts []lexer.Token) []Result[T] {
		return f().Parse(ts)
	})
}
