package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Grammar_AddRule(t *testing.T) {
	testCases := []struct {
		name      string
		head      string
		prod      Production
		expectErr bool
	}{
		{name: "valid nonterminal head", head: "<start>", prod: Production{"a"}},
		{name: "valid epsilon alternative", head: "<start>", prod: Production{}},
		{name: "bare word head rejected", head: "start", prod: Production{"a"}, expectErr: true},
		{name: "empty head rejected", head: "", prod: Production{"a"}, expectErr: true},
		{name: "empty string terminal rejected", head: "<start>", prod: Production{""}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrammar()
			err := g.AddRule(tc.head, tc.prod)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_Grammar_AddRule_preservesOrderAndDuplicates(t *testing.T) {
	assert := assert.New(t)

	g := NewGrammar()
	assert.NoError(g.AddRule("<start>", Production{"a"}))
	assert.NoError(g.AddRule("<start>", Production{"a"}))
	assert.NoError(g.AddRule("<other>", Production{"b"}))

	r, ok := g.Rule("<start>")
	assert.True(ok)
	assert.Len(r.Productions, 2, "duplicate alternatives are permitted and kept distinct")

	assert.Equal([]string{"<start>", "<other>"}, g.NonTerminals())
}

func Test_Grammar_IsNonTerminal(t *testing.T) {
	testCases := []struct {
		name   string
		sym    string
		expect bool
	}{
		{name: "wrapped name", sym: "<expr>", expect: true},
		{name: "bare word", sym: "expr", expect: false},
		{name: "empty string", sym: "", expect: false},
		{name: "single angle bracket", sym: "<", expect: false},
		{name: "lone brackets", sym: "<>", expect: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, IsNonTerminal(tc.sym))
		})
	}
}

func Test_Grammar_Validate(t *testing.T) {
	t.Run("empty grammar is invalid", func(t *testing.T) {
		g := NewGrammar()
		assert.Error(t, g.Validate())
	})

	t.Run("undefined nonterminal is invalid", func(t *testing.T) {
		g := NewGrammar()
		assert.NoError(t, g.AddRule("<start>", Production{"<missing>"}))
		assert.Error(t, g.Validate())
	})

	t.Run("fully defined grammar is valid", func(t *testing.T) {
		g := NewGrammar()
		assert.NoError(t, g.AddRule("<start>", Production{"<a>"}))
		assert.NoError(t, g.AddRule("<a>", Production{"x"}))
		assert.NoError(t, g.Validate())
	})
}

func Test_Grammar_Nullable(t *testing.T) {
	g := NewGrammar()
	_ = g.AddRule("<start>", Production{"<a>", "<b>"})
	_ = g.AddRule("<a>", Production{"a"})
	_ = g.AddRule("<a>", Production{})
	_ = g.AddRule("<b>", Production{"b"})

	nullable := g.Nullable()
	assert.True(t, nullable["<a>"])
	assert.False(t, nullable["<b>"])
	assert.False(t, nullable["<start>"], "<start> requires <b> which is never nullable")
}

func Test_Grammar_FirstAndFollow(t *testing.T) {
	g := NewGrammar()
	_ = g.AddRule("<start>", Production{"<a>", "<b>"})
	_ = g.AddRule("<a>", Production{"a"})
	_ = g.AddRule("<a>", Production{})
	_ = g.AddRule("<a>", Production{"<c>"})
	_ = g.AddRule("<b>", Production{"b"})
	_ = g.AddRule("<c>", Production{"<a>"})
	_ = g.AddRule("<c>", Production{"<b>"})

	ff := g.FirstAndFollow("<start>")

	assert.True(t, ff.Nullable["<a>"])
	assert.False(t, ff.Nullable["<b>"])
	assert.Subset(t, keys(ff.First["<a>"]), []string{"a", "b"}, "FIRST(<a>) reaches through the nullable <c> branch into <b>'s FIRST set")
	assert.True(t, ff.Follow["<a>"]["b"], "FOLLOW(<a>) gains FIRST(<b>) since <a> is immediately followed by <b> in <start>")
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
