// Package ptree is the derivation tree shape both engines' tree extractors
// produce: a symbol with an ordered list of children. Building and printing
// a tree is deliberately minimal here; richer rendering belongs to the demo
// tooling, not this library.
package ptree

import "strings"

// Tree is one node of a derivation tree. A terminal match is a Tree with no
// Children; an epsilon match is a Tree whose Symbol is the nonterminal that
// matched empty and whose Children is empty too, distinguished from a
// terminal only by context (callers that need to tell them apart can check
// grammar.IsNonTerminal(t.Symbol)).
type Tree struct {
	Symbol   string
	Children []*Tree
}

// New builds a Tree node with the given children.
func New(symbol string, children ...*Tree) *Tree {
	return &Tree{Symbol: symbol, Children: children}
}

// ToString renders the tree as its yield: the concatenation, in order, of
// every terminal leaf symbol in the tree (a childless nonterminal, i.e. an
// epsilon match, contributes nothing). This is the "a tree round-trips to its
// matched input" property from the spec's testable properties, made
// concrete: for a token stream of single-character terminals, ToString
// reproduces the original input exactly.
func (t *Tree) ToString() string {
	if t == nil {
		return ""
	}
	var leaves []string
	collectLeaves(t, &leaves)
	return strings.Join(leaves, "")
}

func collectLeaves(t *Tree, out *[]string) {
	if len(t.Children) == 0 {
		s := t.Symbol
		epsilonMatch := len(s) >= 2 && s[0] == '<' && s[len(s)-1] == '>'
		if s != "" && !epsilonMatch {
			*out = append(*out, s)
		}
		return
	}
	for _, c := range t.Children {
		collectLeaves(c, out)
	}
}

// Structure renders t's full shape as a parenthesized structural
// serialization, e.g. "(<expr> (<expr> 1) + (<expr> 2))". Two trees with
// identical yields (ToString) can still derive the input differently;
// Structure is what distinguishes them, for callers (tests, ambiguity
// reporting) that need to tell distinct derivations apart rather than just
// confirm a derivation exists.
func (t *Tree) Structure() string {
	if t == nil {
		return "()"
	}
	if len(t.Children) == 0 {
		return t.Symbol
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		parts[i] = c.Structure()
	}
	return "(" + t.Symbol + " " + strings.Join(parts, " ") + ")"
}

// Equal reports whether a and b have the same shape: same symbol at every
// node, same number of children in the same order.
func Equal(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Symbol != b.Symbol {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
