// Package grammar is the concrete representation of the context-free
// grammars that earley and gll parse against. It owns no parsing logic of
// its own beyond the fixed-point set computations (nullable, FIRST, FOLLOW)
// that both engines need before they can run.
package grammar

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dekarrin/cfgparse/internal/util"
)

// Symbol is either a terminal or a nonterminal name. Nonterminal names are
// wrapped in angle brackets, e.g. "<expr>"; anything else is a terminal.
type Symbol = string

// Production is one ordered right-hand side alternative for a rule. A
// Production of length 0 is an epsilon alternative. The empty string is
// never a valid element of a Production; use a zero-length Production for
// epsilon instead.
type Production []Symbol

// Equal reports whether p and o contain the same symbols in the same order.
func (p Production) Equal(o Production) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the production the way the grammars in this package's
// tests and the demo tools print them: space-joined symbols, or "ε" for the
// empty alternative.
func (p Production) String() string {
	if len(p) == 0 {
		return "ε"
	}
	return strings.Join([]string(p), " ")
}

// Rule is all alternatives for a single nonterminal head.
type Rule struct {
	NonTerminal string
	Productions []Production
}

func (r Rule) String() string {
	alts := make([]string, len(r.Productions))
	for i := range r.Productions {
		alts[i] = r.Productions[i].String()
	}
	return fmt.Sprintf("%s -> %s", r.NonTerminal, strings.Join(alts, " | "))
}

// Grammar is an ordered collection of Rules, one per nonterminal head.
// Insertion order of heads is preserved so that diagnostics and chart dumps
// are deterministic across runs without needing to sort on every access.
type Grammar struct {
	order []string
	rules map[string]*Rule
}

// NewGrammar returns an empty Grammar ready for AddRule calls.
func NewGrammar() *Grammar {
	return &Grammar{rules: map[string]*Rule{}}
}

// IsNonTerminal reports whether sym is written in the "<name>" form this
// package treats as a nonterminal reference. Everything else, including the
// empty string, is a terminal (though the empty string is rejected as a
// terminal by AddRule).
func IsNonTerminal(sym Symbol) bool {
	return len(sym) >= 2 && strings.HasPrefix(sym, "<") && strings.HasSuffix(sym, ">")
}

// AddRule adds prod as an alternative for head, creating head's Rule if this
// is its first alternative. It returns an error if head is not a valid
// nonterminal name or prod contains the empty string as a terminal.
func (g *Grammar) AddRule(head string, prod Production) error {
	if !IsNonTerminal(head) {
		return fmt.Errorf("grammar: rule head %q is not a nonterminal of the form \"<name>\"", head)
	}
	for _, sym := range prod {
		if sym == "" {
			return fmt.Errorf("grammar: rule for %s contains the empty string as a terminal; use a zero-length Production for epsilon instead", head)
		}
	}

	r, ok := g.rules[head]
	if !ok {
		r = &Rule{NonTerminal: head}
		g.rules[head] = r
		g.order = append(g.order, head)
	}
	r.Productions = append(r.Productions, prod)
	return nil
}

// Rule returns the Rule for head and whether it exists.
func (g *Grammar) Rule(head string) (Rule, bool) {
	r, ok := g.rules[head]
	if !ok {
		return Rule{}, false
	}
	return *r, true
}

// StartAlternatives returns the alternatives of start, or nil if start has
// no rule. Earley uses this to seed column 0 with one item per
// alternative; GLL reads the same alternatives from its compiled Program
// and spawns one thread per alternative.
func (g *Grammar) StartAlternatives(start string) []Production {
	r, ok := g.rules[start]
	if !ok {
		return nil
	}
	return r.Productions
}

// Rules returns every Rule in the grammar, in the order their heads were
// first added.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.order))
	for i, head := range g.order {
		out[i] = *g.rules[head]
	}
	return out
}

// NonTerminals returns the grammar's nonterminal names, in the order they
// were first added as a rule head.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Symbols returns every distinct symbol (terminal and nonterminal)
// referenced anywhere in the grammar, deterministically sorted using a
// locale-aware collator rather than a raw byte-order sort.Strings, so that
// diagnostics print in a stable, human-reasonable order regardless of which
// symbols happen to be angle-bracketed.
func (g *Grammar) Symbols() []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, head := range g.order {
		add(head)
		for _, prod := range g.rules[head].Productions {
			for _, sym := range prod {
				add(sym)
			}
		}
	}

	col := collate.New(language.Und)
	sort.Slice(out, func(i, j int) bool {
		return col.CompareString(out[i], out[j]) < 0
	})
	return out
}

// Validate performs the lightweight structural checks the spec calls
// optional: every nonterminal referenced on a right-hand side must have its
// own rule, and the grammar must define at least one rule. This is never
// required before a Parse call; it exists purely as an opt-in diagnostic.
func (g *Grammar) Validate() error {
	if len(g.order) == 0 {
		return fmt.Errorf("grammar: no rules defined")
	}

	var undefined []string
	undefSeen := map[string]bool{}
	for _, head := range g.order {
		for _, prod := range g.rules[head].Productions {
			for _, sym := range prod {
				if IsNonTerminal(sym) {
					if _, ok := g.rules[sym]; !ok && !undefSeen[sym] {
						undefSeen[sym] = true
						undefined = append(undefined, sym)
					}
				}
			}
		}
	}

	if len(undefined) > 0 {
		sort.Strings(undefined)
		return fmt.Errorf("grammar: referenced nonterminal(s) have no rule: %s", util.MakeTextList(undefined))
	}

	return nil
}
