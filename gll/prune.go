package gll

import "github.com/dekarrin/cfgparse/grammar"

// Option configures a Program at compile time.
type Option func(*Program)

// WithSelectivePruning enables a FIRST/FOLLOW-based thread-pruning hook
// modeled on GLL.py's test_select: before descending into a nonterminal
// alternative, skip it if the current lookahead token cannot start that
// alternative (by FIRST, extended through FOLLOW when the alternative is
// nullable). This only discards threads that could never contribute to an
// accepted parse, so it never changes Recognize's accept/reject outcome
// or ParseOn's resulting SPPF, only the number of descriptors the driver
// has to process to get there. Off by default.
func WithSelectivePruning() Option {
	return func(pr *Program) {
		pr.pruning = true
	}
}

func (pr *Program) ensureSelectSets() {
	if pr.selectSets != nil {
		return
	}
	pr.selectSets = map[selectKey]map[string]bool{}
	ff := pr.g.FirstAndFollow("")
	for name := range pr.alts {
		for altIdx, prod := range pr.alts[name] {
			set := map[string]bool{}
			nullable := true
			for _, sym := range prod {
				if grammar.IsNonTerminal(sym) {
					for t := range ff.First[sym] {
						set[t] = true
					}
					if !ff.Nullable[sym] {
						nullable = false
						break
					}
				} else {
					set[sym] = true
					nullable = false
					break
				}
			}
			if nullable {
				for t := range ff.Follow[name] {
					set[t] = true
				}
			}
			pr.selectSets[selectKey{name, altIdx}] = set
		}
	}
}

type selectKey struct {
	sym string
	alt int
}

// selectable reports whether alternative altIdx of sym could possibly
// match starting with lookahead. A Program with pruning disabled always
// answers true, since the hook must never change acceptance. FOLLOW sets
// here carry no explicit end-of-input marker, so an empty lookahead (the
// descriptor sits at end-of-input) is always selectable too: refusing to
// descend there could prune a thread that legitimately accepts at EOF.
func (pr *Program) selectable(sym string, altIdx int, lookahead string) bool {
	if !pr.pruning || lookahead == "" {
		return true
	}
	pr.ensureSelectSets()
	set := pr.selectSets[selectKey{sym, altIdx}]
	return set[lookahead]
}
