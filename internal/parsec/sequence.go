package parsec

import "github.com/lett-lang/lett/internal/lexer"

// Pair holds the two values produced by Seq2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq2 runs a then b on a's leftovers, pairing their values.
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return Bind(a, func(av A) Parser[Pair[A, B]] {
		return Map(b, func(bv B) Pair[A, B] {
			return Pair[A, B]{First: av, Second: bv}
		})
	})
}

// Left runs a then b, keeping a's value. Used to discard trailing
// punctuation.
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Bind(a, func(av A) Parser[A] {
		return Map(b, func(B) A { return av })
	})
}

// Right runs a then b, keeping b's value. Used to discard leading
// punctuation and keywords.
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Bind(a, func(A) Parser[B] { return b })
}

// Many matches p zero or more times, collecting the values in match
// order. The longest match comes first in the result set: each result
// for n repetitions precedes every result for fewer repetitions, which
// mirrors the production  Many(p) -> p Many(p) | ε  explored
// depth-first. p must consume input on success or Many will not
// terminate.
func Many[T any](p Parser[T]) Parser[[]T] {
	var many Parser[[]T]
	many = New(func(ts []lexer.Token) []Result[[]T] {
		var out []Result[[]T]
		for _, head := range p.Parse(ts) {
			for _, tail := range many.Parse(head.Rest) {
				vs := make([]T, 0, len(tail.Value)+1)
				vs = append(vs, head.Value)
				vs = append(vs, tail.Value...)
				out = append(out, Result[[]T]{Value: vs, Rest: tail.Rest})
			}
		}
		return append(out, Result[[]T]{Value: nil, Rest: ts})
	})
	return many
}
