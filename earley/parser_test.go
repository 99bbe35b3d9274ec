package earley

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgparse/internal/fixtures"
)

func Test_Parser_Recognize(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		accepts bool
	}{
		{name: "arithmetic accepts", input: "1+2*3", accepts: true},
		{name: "arithmetic rejects trailing operator", input: "1+", accepts: false},
		{name: "arithmetic rejects empty input", input: "", accepts: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser(fixtures.Arithmetic())
			ok, err := p.Recognize(fixtures.Tokenize(tc.input), "<start>")
			if tc.accepts {
				assert.NoError(t, err)
				assert.True(t, ok)
				return
			}
			assert.False(t, ok)
			assert.Error(t, err)
		})
	}
}

func Test_Parser_Recognize_leftRecursion(t *testing.T) {
	p := NewParser(fixtures.LeftRecursive())
	ok, err := p.Recognize(fixtures.Tokenize("aaaa"), "<start>")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func Test_Parser_Recognize_rightRecursion_LeoOptimized(t *testing.T) {
	p := NewParser(fixtures.RightRecursive())
	ok, err := p.Recognize(fixtures.Tokenize("aaaaaaaaaa"), "<start>")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func Test_Parser_ParseOn_singleTreeForUnambiguousGrammar(t *testing.T) {
	p := NewParser(fixtures.Arithmetic())
	f, err := p.ParseOn(fixtures.Tokenize("1+2"), "<start>")
	assert.NoError(t, err)

	tree := f.FirstTree()
	assert.NotNil(t, tree)
	assert.Equal(t, "1+2", tree.ToString())
}

func Test_Extractor_enumeratesDistinctTreesForAmbiguousGrammar(t *testing.T) {
	p := NewParser(fixtures.AmbiguousArithmetic())
	f, err := p.ParseOn(fixtures.Tokenize("1+2+3"), "<start>")
	assert.NoError(t, err)

	ex := NewExtractor(f)
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		tree := ex.ExtractATree()
		if tree == nil {
			break
		}
		// every derivation must yield the original input regardless of
		// which grouping it picked.
		assert.Equal(t, "1+2+3", tree.ToString())
		seen[tree.Structure()] = true
	}
	assert.GreaterOrEqual(t, len(seen), 2, "1+2+3 has more than one left/right grouping under a flattened <expr> rule")
}

func Test_Extractor_terminatesOnCyclicUnitProductions(t *testing.T) {
	p := NewParser(fixtures.CyclicUnit())
	f, err := p.ParseOn(fixtures.Tokenize("x"), "<start>")
	assert.NoError(t, err)

	ex := NewExtractor(f)
	tree := ex.ExtractATree()
	assert.NotNil(t, tree)
	assert.Equal(t, "x", tree.ToString())

	// further calls must terminate rather than loop forever rediscovering
	// the same cycle.
	for i := 0; i < 5; i++ {
		ex.ExtractATree()
	}
}

func Test_NaiveRecognizer_matchesParserOnBoundedInput(t *testing.T) {
	g := fixtures.Arithmetic()
	p := NewParser(g)
	n := NewNaiveRecognizer(p, 10000)

	got, err := n.Recognize(fixtures.Tokenize("1+2*3"), "<start>")
	assert.NoError(t, err)
	assert.True(t, got)
}

func Test_Grammar_JSONLike(t *testing.T) {
	p := NewParser(fixtures.JSONLike())
	// "str" and "num" are single multi-character terminals in this grammar,
	// so the input is given as tokens rather than split per character.
	ok, err := p.Recognize([]string{"{", "str", ":", "num", ",", "str", ":", "num", "}"}, "<start>")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func Test_Grammar_NullableGrammar(t *testing.T) {
	p := NewParser(fixtures.NullableGrammar())
	ok, err := p.Recognize(fixtures.Tokenize("ab"), "<start>")
	assert.NoError(t, err)
	assert.True(t, ok)

	// <A> can also derive empty, so "b" alone must also be accepted.
	ok, err = p.Recognize(fixtures.Tokenize("b"), "<start>")
	assert.NoError(t, err)
	assert.True(t, ok)
}
