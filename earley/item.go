// Package earley implements context-free grammar recognition and parsing
// via Earley's algorithm, with Joop Leo's right-recursion optimization and
// an enhanced extractor for enumerating trees out of an ambiguous forest.
package earley

import (
	"fmt"
	"strings"

	"github.com/dekarrin/cfgparse/grammar"
)

// Item is one Earley chart entry: a grammar rule, a position (the dot)
// within one of its alternatives, and the input range it spans so far.
// Its shape mirrors an LR item's dot notation ("NonTerminal -> Left . Right")
// with the addition of the start/end column indices Earley items carry.
type Item struct {
	Name     string
	AltIndex int
	Expr     grammar.Production
	Dot      int
	Start    int
	End      int
}

type itemKey struct {
	name     string
	altIndex int
	dot      int
	start    int
}

func (it *Item) key() itemKey {
	return itemKey{it.Name, it.AltIndex, it.Dot, it.Start}
}

// Finished reports whether the dot has reached the end of the alternative.
func (it *Item) Finished() bool {
	return it.Dot >= len(it.Expr)
}

// AtDot returns the symbol immediately after the dot, and false if the item
// is already Finished.
func (it *Item) AtDot() (string, bool) {
	if it.Finished() {
		return "", false
	}
	return it.Expr[it.Dot], true
}

// Advance returns a copy of it with the dot moved one position to the
// right. Start is preserved; End is left for the caller (normally
// Column.Add) to assign.
func (it *Item) Advance() *Item {
	return &Item{
		Name:     it.Name,
		AltIndex: it.AltIndex,
		Expr:     it.Expr,
		Dot:      it.Dot + 1,
		Start:    it.Start,
	}
}

// Left returns the symbols before the dot.
func (it *Item) Left() grammar.Production { return it.Expr[:it.Dot] }

// Right returns the symbols from the dot onward.
func (it *Item) Right() grammar.Production { return it.Expr[it.Dot:] }

func (it *Item) String() string {
	left := strings.Join(it.Left(), " ")
	right := strings.Join(it.Right(), " ")
	if left != "" {
		left += " "
	}
	if right != "" {
		right = " " + right
	}
	return fmt.Sprintf("%s -> %s.%s [%d:%d]", it.Name, left, right, it.Start, it.End)
}
