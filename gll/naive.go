package gll

import (
	"github.com/dekarrin/cfgparse/grammar"
	"github.com/dekarrin/cfgparse/parseerr"
)

// naiveThread is one call-stack-threaded recognizer state: a slot to
// resume a caller at, chained through callers all the way back to nil
// (the top-level call), with no sharing between branches. This is the
// reference's CallStack-based NaiveThreadedRecognizer: it recognizes
// exactly what the GSS-based driver does for non-left-recursive grammars,
// but a left-recursive alternative re-enters the same (slot, position)
// pair down an ever-deeper, never-merged call chain; unless an accepting
// thread turns up first, the budget below is the only thing that stops it.
type naiveThread struct {
	l      slot
	i      int
	caller *naiveThread
}

// NaiveRecognizer is a bounded-step recognizer built without a
// Graph-Structured Stack, included to demonstrate concretely why GLL
// needs one: on a left-recursive grammar, the call chain it threads
// through never collapses the way a GSS node would. Threads are explored
// depth-first, so an input the grammar derives is still accepted once the
// call chain is deep enough, but an input it does not derive is never
// rejected: the recognizer burns its step budget instead.
type NaiveRecognizer struct {
	pr       *Program
	maxSteps int
}

// NewNaiveRecognizer builds a NaiveRecognizer that gives up with a
// parseerr.BudgetExceeded after maxSteps call-stack threads have been
// explored.
func NewNaiveRecognizer(pr *Program, maxSteps int) *NaiveRecognizer {
	return &NaiveRecognizer{pr: pr, maxSteps: maxSteps}
}

// Recognize threads the naive call stack until it accepts, rejects
// outright, or burns its step budget.
func (n *NaiveRecognizer) Recognize(text []string, start string) (bool, error) {
	alts := n.pr.alts[start]
	if alts == nil {
		return false, parseerr.NewSyntax(0, text)
	}

	steps := 0
	var stack []*naiveThread
	for altIdx := range alts {
		stack = append(stack, &naiveThread{l: slot{start, altIdx, 0}, i: 0})
	}

	for len(stack) > 0 {
		steps++
		if steps > n.maxSteps {
			return false, parseerr.NewBudgetExceeded(steps)
		}

		th := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.pr.finished(th.l) {
			if th.caller == nil {
				if th.i == len(text) {
					return true, nil
				}
				continue
			}
			stack = append(stack, &naiveThread{l: advance(th.caller.l), i: th.i, caller: th.caller.caller})
			continue
		}

		sym, _ := n.pr.atDot(th.l)
		if grammar.IsNonTerminal(sym) {
			for altIdx := range n.pr.alts[sym] {
				stack = append(stack, &naiveThread{l: slot{sym, altIdx, 0}, i: th.i, caller: th})
			}
			continue
		}

		if th.i < len(text) && text[th.i] == sym {
			stack = append(stack, &naiveThread{l: advance(th.l), i: th.i + 1, caller: th.caller})
		}
	}

	return false, parseerr.NewSyntax(0, text)
}

func advance(sl slot) slot {
	return slot{sl.sym, sl.alt, sl.dot + 1}
}
