package gll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgparse/internal/fixtures"
)

func Test_Program_Recognize(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		accepts bool
	}{
		{name: "arithmetic accepts", input: "1+2*3", accepts: true},
		{name: "arithmetic rejects trailing operator", input: "1+", accepts: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pr := Compile(fixtures.Arithmetic())
			ok, err := pr.Recognize(fixtures.Tokenize(tc.input), "<start>")
			if tc.accepts {
				assert.NoError(t, err)
				assert.True(t, ok)
				return
			}
			assert.False(t, ok)
		})
	}
}

func Test_Program_Recognize_leftRecursion(t *testing.T) {
	pr := Compile(fixtures.LeftRecursive())
	ok, err := pr.Recognize(fixtures.Tokenize("aaaa"), "<start>")
	assert.NoError(t, err)
	assert.True(t, ok, "GLL's GSS must collapse left recursion without looping")
}

func Test_Program_Recognize_withSelectivePruning_agreesWithDefault(t *testing.T) {
	g := fixtures.Arithmetic()
	plain := Compile(g)
	pruned := Compile(g, WithSelectivePruning())

	for _, input := range []string{"1+2*3", "(1+2)*3", "1+", "", "9"} {
		text := fixtures.Tokenize(input)
		gotPlain, _ := plain.Recognize(text, "<start>")
		gotPruned, _ := pruned.Recognize(text, "<start>")
		assert.Equal(t, gotPlain, gotPruned, "selective pruning must never change the accept/reject outcome for input %q", input)
	}
}

func Test_Program_ParseOn_singleTreeForUnambiguousGrammar(t *testing.T) {
	pr := Compile(fixtures.Arithmetic())
	sppf, err := pr.ParseOn(fixtures.Tokenize("1+2"), "<start>")
	assert.NoError(t, err)

	ex := NewExtractor(sppf)
	tree := ex.ExtractATree()
	assert.NotNil(t, tree)
	assert.Equal(t, "1+2", tree.ToString())
	// <start> -> <expr> is a unit production; the extracted root must still
	// be <start>, not the <expr> node the unit production wraps.
	assert.Equal(t, "<start>", tree.Symbol)
}

func Test_Extractor_enumeratesDistinctTreesForAmbiguousGrammar(t *testing.T) {
	pr := Compile(fixtures.AmbiguousArithmetic())
	sppf, err := pr.ParseOn(fixtures.Tokenize("1+2+3"), "<start>")
	assert.NoError(t, err)

	ex := NewExtractor(sppf)
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
	assert.GreaterOrEqual(t, len(seen), 2)
}

func Test_Extractor_preservesUnitProductionChainToRoot(t *testing.T) {
	pr := Compile(fixtures.CyclicUnit())
	sppf, err := pr.ParseOn(fixtures.Tokenize("x"), "<start>")
	assert.NoError(t, err)

	ex := NewExtractor(sppf)
	tree := ex.ExtractATree()
	assert.NotNil(t, tree)
	assert.Equal(t, "x", tree.ToString())
	assert.Equal(t, "(<start> (<a> (<b> x)))", tree.Structure(),
		"the <start> -> <a> -> <b> -> x unit chain must survive extraction, not collapse to the bare terminal")

	// further calls must terminate rather than loop forever rediscovering
	// the same cycle.
	for i := 0; i < 5; i++ {
		ex.ExtractATree()
	}
}

func Test_NaiveRecognizer_divergesOnLeftRecursionWithoutGSS(t *testing.T) {
	pr := Compile(fixtures.LeftRecursive())
	n := NewNaiveRecognizer(pr, 2000)

	_, err := n.Recognize(fixtures.Tokenize("aab"), "<start>")
	assert.Error(t, err, "without a GSS, left recursion re-enters the same call state down an ever-deeper chain and exhausts the step budget")
}

func Test_NaiveRecognizer_matchesProgramOnNonLeftRecursiveGrammar(t *testing.T) {
	g := fixtures.Arithmetic()
	n := NewNaiveRecognizer(Compile(g), 100000)

	got, err := n.Recognize(fixtures.Tokenize("1+2*3"), "<start>")
	assert.NoError(t, err)
	assert.True(t, got)
}

func Test_Grammar_NullableGrammar(t *testing.T) {
	pr := Compile(fixtures.NullableGrammar())

	ok, err := pr.Recognize(fixtures.Tokenize("ab"), "<start>")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = pr.Recognize(fixtures.Tokenize("b"), "<start>")
	assert.NoError(t, err)
	assert.True(t, ok)
}

