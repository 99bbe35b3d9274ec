// Package parseerr holds the error types returned by earley and gll. Each
// is a small struct implementing error with a constructor function, so the
// engines return these types rather than bare fmt.Errorf strings at the
// call site.
package parseerr

import "fmt"

// Syntax is returned when a parse does not complete: the input was
// rejected, or only a strict prefix of it could be derived from the
// grammar. Pos is the index into the input at which the derivation stalled;
// Suffix is what remained unconsumed from that point. gll.Program does not
// track a stall position: its Syntax errors carry Pos 0 and the whole input
// as Suffix.
type Syntax struct {
	Pos    int
	Suffix []string
}

func (e *Syntax) Error() string {
	if len(e.Suffix) == 0 {
		return fmt.Sprintf("syntax error: input rejected at position %d", e.Pos)
	}
	return fmt.Sprintf("syntax error at position %d: unexpected %q", e.Pos, e.Suffix[0])
}

// NewSyntax builds a Syntax error for the given stall position and
// unconsumed suffix.
func NewSyntax(pos int, suffix []string) error {
	return &Syntax{Pos: pos, Suffix: suffix}
}

// BudgetExceeded is returned by the bounded-step recognizers (earley's
// naive recognizer, gll.NaiveRecognizer) when their step budget is spent
// before the input is fully consumed. Engines backed by a GSS or a Leo
// chart do not need a budget and never return this.
type BudgetExceeded struct {
	Steps int
}

func (e *BudgetExceeded) Error() string {
	return fmt.Sprintf("parse budget exceeded after %d steps", e.Steps)
}

// NewBudgetExceeded builds a BudgetExceeded error for the given step count.
func NewBudgetExceeded(steps int) error {
	return &BudgetExceeded{Steps: steps}
}
