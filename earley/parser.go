package earley

import (
	"fmt"

	"github.com/dekarrin/cfgparse/grammar"
	"github.com/dekarrin/cfgparse/parseerr"
)

// Parser recognizes and parses input against a fixed grammar using Earley's
// algorithm with Leo's right-recursion optimization. A Parser is built once
// per grammar via NewParser and can be reused across many Parse/Recognize
// calls; each call allocates its own chart, so nothing about a single call
// is shared mutable state.
type Parser struct {
	g        *grammar.Grammar
	nullable map[string]bool

	// postdots records the Leo deterministic-chain links discovered during
	// the most recent fillChart call, keyed by the matching parent item's
	// identity. See leo.go's expandTransitive.
	postdots map[itemKey]*Item

	// trace, if set, receives a line of text per predict/scan/complete
	// step. Unset by default; no output happens unless a caller opts in.
	trace func(string)
}

// NewParser builds a Parser for g. The nullable set is computed once here
// rather than per call, since it depends only on the grammar.
func NewParser(g *grammar.Grammar) *Parser {
	return &Parser{g: g, nullable: g.Nullable()}
}

// RegisterTraceListener installs fn to receive a line of diagnostic text
// for every chart operation performed by subsequent Parse/Recognize calls.
// Passing nil disables tracing.
func (p *Parser) RegisterTraceListener(fn func(string)) {
	p.trace = fn
}

func (p *Parser) tracef(format string, args ...any) {
	if p.trace == nil {
		return
	}
	p.trace(fmt.Sprintf(format, args...))
}

type chart struct {
	columns []*Column
}

// fillChart builds and saturates the chart for text against start, the way
// EarleyParser.fill_chart/chart_parse does: seed column 0 with the start
// symbol's alternatives, then for each column in order process every item
// in it (predicting, scanning into the next column, or completing back into
// the start column), letting the slice grow as predictions/completions are
// appended.
func (p *Parser) fillChart(text []string, start string) (*chart, error) {
	ch, ok, err := p.fillChartBudgeted(text, start, nil)
	if err != nil {
		return nil, err
	}
	_ = ok // fillChartBudgeted with a nil hook never reports budget exhaustion
	return ch, nil
}

// fillChartBudgeted is fillChart with an optional per-step hook: if hook is
// non-nil and returns false, the fill stops early and ok is false. Used by
// NaiveRecognizer to impose a hard ceiling on chart operations.
func (p *Parser) fillChartBudgeted(text []string, start string, hook func() bool) (ch *chart, ok bool, err error) {
	alts := p.g.StartAlternatives(start)
	if alts == nil {
		return nil, false, parseerr.NewSyntax(0, text)
	}

	cols := make([]*Column, len(text)+1)
	cols[0] = newColumn(0, "")
	for i := 1; i <= len(text); i++ {
		cols[i] = newColumn(i, text[i-1])
	}

	for altIdx, prod := range alts {
		cols[0].Add(&Item{Name: start, AltIndex: altIdx, Expr: prod, Dot: 0, Start: 0})
	}

	ch = &chart{columns: cols}
	p.postdots = map[itemKey]*Item{}

	for i, col := range cols {
		for j := 0; j < len(col.Items); j++ {
			if hook != nil && !hook() {
				return ch, false, nil
			}

			it := col.Items[j]
			p.tracef("column %d: %s", i, it)

			if it.Finished() {
				p.leoComplete(ch, col, it)
				continue
			}

			sym, _ := it.AtDot()
			if grammar.IsNonTerminal(sym) {
				p.predict(col, sym, it)
			} else if i+1 < len(cols) && cols[i+1].Token == sym {
				p.scan(cols[i+1], it)
			}
		}
	}

	return ch, true, nil
}

// predict adds one chart item per alternative of sym starting at col, the
// way EarleyParser.predict does. It also implements the Aycock-Horspool
// nullable fix: if sym can derive the empty string, the item that triggered
// this prediction (parent) is immediately advanced past sym in the same
// column, since no input needs to be consumed to satisfy a nullable
// nonterminal.
func (p *Parser) predict(col *Column, sym string, parent *Item) {
	rule, ok := p.g.Rule(sym)
	if !ok {
		return
	}
	for altIdx, prod := range rule.Productions {
		col.Add(&Item{Name: sym, AltIndex: altIdx, Expr: prod, Dot: 0, Start: col.Index})
	}
	if p.nullable[sym] {
		col.Add(parent.Advance())
	}
}

// scan advances it into next if next's token is the symbol it expects,
// mirroring EarleyParser.scan. The caller has already checked the token
// matches; next is the column the advanced item belongs in.
func (p *Parser) scan(next *Column, it *Item) {
	next.Add(it.Advance())
}
