// Package gll implements Generalized LL parsing over a Graph-Structured
// Stack (GSS) and a Shared Packed Parse Forest (SPPF), with a
// grammar-to-slot-table compilation step standing in for the reference's
// generated-source dispatch.
package gll

import "github.com/dekarrin/cfgparse/grammar"

// slot identifies one position within one alternative of one nonterminal:
// the GLL label "(X ::= alpha . beta)" collapsed to the three integers/
// strings needed to look it up again (NonTerminal, AltIndex, Dot). It plays
// the same role here that a label string like "('<A>',0,1)" plays in the
// reference.
type slot struct {
	sym string
	alt int
	dot int
}

// Program is a grammar compiled into the slot table the GLL driver
// interprets. Compile is the Go-idiomatic stand-in for the reference's
// compile_grammar: instead of emitting source and exec'ing it, it builds a
// data table a single dispatch loop walks.
type Program struct {
	g    *grammar.Grammar
	alts map[string][]grammar.Production

	pruning    bool
	selectSets map[selectKey]map[string]bool

	nullable map[string]bool
}

// Compile builds a Program for g. Unlike NewParser in earley, Compile does
// no per-grammar precomputation beyond indexing alternatives by name; the
// FIRST/FOLLOW sets used by the optional selective-pruning hook are
// computed lazily only if a caller opts into WithSelectivePruning.
func Compile(g *grammar.Grammar, opts ...Option) *Program {
	alts := map[string][]grammar.Production{}
	for _, r := range g.Rules() {
		alts[r.NonTerminal] = r.Productions
	}
	pr := &Program{g: g, alts: alts}
	for _, opt := range opts {
		opt(pr)
	}
	return pr
}

func (pr *Program) expr(sl slot) grammar.Production {
	return pr.alts[sl.sym][sl.alt]
}

func (pr *Program) finished(sl slot) bool {
	return sl.dot >= len(pr.expr(sl))
}

// atDot returns the symbol at sl's dot position, and false if sl is
// finished.
func (pr *Program) atDot(sl slot) (string, bool) {
	e := pr.expr(sl)
	if sl.dot >= len(e) {
		return "", false
	}
	return e[sl.dot], true
}

func (pr *Program) ensureNullable() {
	if pr.nullable != nil {
		return
	}
	pr.nullable = pr.g.FirstAndFollow("").Nullable
}

// shortcutGetNodeP is GLL.py's is_non_nullable_alpha(alpha) applied to the
// slot passed into getNodeP: true exactly when the symbol just matched
// (alpha, the production prefix up to sl's dot) is a single non-nullable
// symbol. getNodeP's caller only ever reaches this state with sl.dot == 1,
// since a later dot means alpha already has a real left-context SPPF node
// rather than the dummy.
func (pr *Program) shortcutGetNodeP(sl slot) bool {
	if sl.dot != 1 {
		return false
	}
	first := pr.expr(sl)[0]
	if !grammar.IsNonTerminal(first) {
		return true
	}
	pr.ensureNullable()
	return !pr.nullable[first]
}
