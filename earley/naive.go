package earley

import "github.com/dekarrin/cfgparse/parseerr"

// NaiveRecognizer is a bounded-step wrapper around Parser.Recognize,
// grounded on the reference's NaiveThreadedRecognizer: a defensive budget
// on total chart operations, for hosts that want a hard ceiling on work
// done per call rather than trusting Leo's asymptotic bound to save them
// from a pathological grammar.
type NaiveRecognizer struct {
	p        *Parser
	maxSteps int
}

// NewNaiveRecognizer wraps p with a budget of maxSteps total
// predict/scan/complete operations.
func NewNaiveRecognizer(p *Parser, maxSteps int) *NaiveRecognizer {
	return &NaiveRecognizer{p: p, maxSteps: maxSteps}
}

// Recognize runs exactly like Parser.Recognize, except it returns
// parseerr.BudgetExceeded instead of completing if the chart fill would
// take more than n.maxSteps total chart operations.
func (n *NaiveRecognizer) Recognize(text []string, start string) (bool, error) {
	steps := 0
	n.p.tracef("naive recognizer: budget=%d", n.maxSteps)

	budgetHook := func() bool {
		steps++
		return steps <= n.maxSteps
	}

	ok, err := n.p.recognizeBudgeted(text, start, budgetHook)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, parseerr.NewBudgetExceeded(steps)
	}
	return true, nil
}
