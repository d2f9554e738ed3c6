package parsec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/lett-lang/lett/internal/lexer"
	"github.com/lett-lang/lett/internal/parsec"
)

func toks(src string) []lexer.Token {
	return lexer.New(src).Tokenize()
}

// word matches any identifier token and yields its text.
func word() parsec.Parser[string] {
	return parsec.Accept(func(t lexer.Token) (string, bool) {
		return t.Literal, t.Type == lexer.TokenIdentifier
	})
}

// inputs is the shared set of token sequences the law tests quantify
// over: empty, single, multi, and shapes the parsers under test reject.
var inputs = []string{
	"",
	"a",
	"a b",
	"a b c",
	"1",
	"a 1 b",
	"+ a",
}

// requireSameResults asserts two parsers produce identical ordered
// result sets on every input in the shared set. Nil and empty result
// sets are the same failure.
func requireSameResults[T any](t *testing.T, a, b parsec.Parser[T]) {
	t.Helper()
	for _, src := range inputs {
		ts := toks(src)
		if diff := cmp.Diff(a.Parse(ts), b.Parse(ts), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("result sets differ on %q (-a +b):\n%s", src, diff)
		}
	}
}

func TestFailProducesNoResults(t *testing.T) {
	p := parsec.Fail[string]()
	for _, src := range inputs {
		require.Empty(t, p.Parse(toks(src)))
	}
}

func TestSucceedConsumesNothing(t *testing.T) {
	p := parsec.Succeed("v")
	for _, src := range inputs {
		ts := toks(src)
		results := p.Parse(ts)
		require.Len(t, results, 1)
		require.Equal(t, "v", results[0].Value)
		require.Equal(t, ts, results[0].Rest)
	}
}

func TestSatisfyConsumesExactlyOne(t *testing.T) {
	isNumber := func(t lexer.Token) bool { return t.Type == lexer.TokenNumber }
	p := parsec.Satisfy(isNumber)

	results := p.Parse(toks("1 2"))
	require.Len(t, results, 1)
	require.Equal(t, int64(1), results[0].Value.Value)
	require.Len(t, results[0].Rest, 1)

	// Predicate failure and empty input both fail without consuming.
	require.Empty(t, p.Parse(toks("a 2")))
	require.Empty(t, p.Parse(nil))
}

func TestAcceptGeneralizesSatisfy(t *testing.T) {
	double := parsec.Accept(func(t lexer.Token) (int64, bool) {
		return 2 * t.Value, t.Type == lexer.TokenNumber
	})

	results := double.Parse(toks("21"))
	require.Len(t, results, 1)
	require.Equal(t, int64(42), results[0].Value)
	require.Empty(t, results[0].Rest)

	require.Empty(t, double.Parse(toks("x")))
	require.Empty(t, double.Parse(nil))
}

func TestAltConcatenatesInOrder(t *testing.T) {
	hello := parsec.Map(word(), func(string) string { return "first" })
	world := parsec.Map(word(), func(string) string { return "second" })

	results := parsec.Alt(hello, world).Parse(toks("a"))
	require.Len(t, results, 2)
	require.Equal(t, "first", results[0].Value)
	require.Equal(t, "second", results[1].Value)
}

func TestAltPreservesDuplicates(t *testing.T) {
	p := word()
	results := parsec.Alt(p, p).Parse(toks("a"))
	require.Len(t, results, 2)
	require.Equal(t, results[0], results[1])
}

func TestChoiceEmptyIsFail(t *testing.T) {
	require.Empty(t, parsec.Choice[string]().Parse(toks("a")))
}

func TestSequencingEnumerationOrder(t *testing.T) {
	// ambig either consumes one token or consumes nothing, so it has
	// two results everywhere; sequencing it with itself must enumerate
	// outer-then-inner, left to right, summing per-branch counts.
	ambig := parsec.Alt(word(), parsec.Succeed("ε"))

	results := parsec.Seq2(ambig, ambig).Parse(toks("a b"))
	require.Len(t, results, 4)

	type shape struct {
		first, second string
		leftover      int
	}
	got := make([]shape, len(results))
	for i, r := range results {
		got[i] = shape{r.Value.First, r.Value.Second, len(r.Rest)}
	}
	want := []shape{
		{"a", "b", 0},
		{"a", "ε", 1},
		{"ε", "a", 1},
		{"ε", "ε", 2},
	}
	require.Equal(t, want, got)
}

func TestManyLongestFirst(t *testing.T) {
	results := parsec.Many(word()).Parse(toks("a b c"))
	require.Len(t, results, 4)

	lengths := make([]int, len(results))
	for i, r := range results {
		lengths[i] = len(r.Value)
	}
	require.Equal(t, []int{3, 2, 1, 0}, lengths)

	require.Equal(t, []string{"a", "b", "c"}, results[0].Value)
	require.Empty(t, results[0].Rest)
}

func TestLazyDefersConstruction(t *testing.T) {
	built := false
	p := parsec.Lazy(func() parsec.Parser[string] {
		built = true
		return word()
	})
	require.False(t, built)

	results := p.Parse(toks("a"))
	require.True(t, built)
	require.Len(t, results, 1)
	require.Equal(t, "a", results[0].Value)
}

func TestLeftRightDiscard(t *testing.T) {
	num := parsec.Accept(func(t lexer.Token) (int64, bool) {
		return t.Value, t.Type == lexer.TokenNumber
	})

	left := parsec.Left(word(), num).Parse(toks("a 1"))
	require.Len(t, left, 1)
	require.Equal(t, "a", left[0].Value)

	right := parsec.Right(word(), num).Parse(toks("a 1"))
	require.Len(t, right, 1)
	require.Equal(t, int64(1), right[0].Value)
}
