package earley

// Joop Leo's right-recursion optimization. A right-recursive rule like
// <A> -> a <A> produces a chain of O(n) otherwise-identical completions at
// every column; leoComplete collapses that chain to a single transitive
// item per column, memoized in Column.transitives, cut down to O(1) per
// column instead of O(n).

// earleyComplete is the ordinary (non-Leo) completion step:
// EarleyParser.complete. For every unfinished item in it's start column
// that was waiting on it.Name, advance it into col.
func (p *Parser) earleyComplete(ch *chart, col *Column, it *Item) {
	startCol := ch.columns[it.Start]
	for _, parent := range startCol.Items {
		sym, ok := parent.AtDot()
		if ok && sym == it.Name {
			col.Add(parent.Advance())
		}
	}
}

// leoComplete is LeoParser.leo_complete: try a deterministic reduction
// first, and only fall back to the full O(n) fan-out of earleyComplete when
// the start column does not hold exactly one parent item waiting on this
// completion with that symbol as its last (i.e. the completion is not part
// of a pure deterministic right-recursive chain).
func (p *Parser) leoComplete(ch *chart, col *Column, it *Item) {
	top := p.deterministicReduction(ch, it)
	if top != nil {
		col.Add(&Item{Name: top.Name, AltIndex: top.AltIndex, Expr: top.Expr, Dot: top.Dot, Start: top.Start})
		return
	}
	p.earleyComplete(ch, col, it)
}

func (p *Parser) deterministicReduction(ch *chart, state *Item) *Item {
	return p.getTop(ch, state)
}

// uniqPostdot is LeoParser.uniq_postdot: find the unique item in stA's start
// column whose dot sits immediately before stA.Name, provided there is
// exactly one such item and it is one symbol away from being finished
// itself (s.Dot == len(s.Expr)-1). That is precisely the "deterministic
// path" Leo's optimization summarizes.
func (p *Parser) uniqPostdot(ch *chart, stA *Item) (*Item, bool) {
	colS1 := ch.columns[stA.Start]

	var parents []*Item
	for _, s := range colS1.Items {
		if len(s.Expr) == 0 {
			continue
		}
		sym, ok := s.AtDot()
		if ok && sym == stA.Name {
			parents = append(parents, s)
		}
	}
	if len(parents) != 1 {
		return nil, false
	}

	matching := parents[0]
	if matching.Dot != len(matching.Expr)-1 {
		return nil, false
	}

	if p.postdots == nil {
		p.postdots = map[itemKey]*Item{}
	}
	p.postdots[matching.key()] = stA
	return matching, true
}

// getTop is LeoParser.get_top: walk up the deterministic chain of
// single-parent completions, memoizing the topmost result per (symbol,
// column) in that column's transitives table.
func (p *Parser) getTop(ch *chart, stateA *Item) *Item {
	stBInc, ok := p.uniqPostdot(ch, stateA)
	if !ok {
		return nil
	}

	tName := stBInc.Name
	eCol := ch.columns[stBInc.End]

	if existing, ok := eCol.transitive(tName); ok {
		return existing
	}

	stB := stBInc.Advance()
	top := p.getTop(ch, stB)
	if top == nil {
		top = stB
	}

	eCol.addTransitive(tName, top)
	return top
}

// expandTransitive re-materializes the chain of intermediate completions
// Leo's optimization suppressed, ending at endCol, the way
// LeoParser.expand_tstate does. It must run once per completed start item
// before forest reconstruction, since parse_paths expects to find those
// intermediate items sitting in their columns.
func (p *Parser) expandTransitive(state *Item, endCol *Column) {
	if state == nil || p.postdots == nil {
		return
	}
	trigger, ok := p.postdots[state.key()]
	if !ok {
		return
	}

	endCol.Add(&Item{
		Name: trigger.Name, AltIndex: trigger.AltIndex, Expr: trigger.Expr,
		Dot: trigger.Dot + 1, Start: trigger.Start,
	})

	back := &Item{
		Name: trigger.Name, AltIndex: trigger.AltIndex, Expr: trigger.Expr,
		Dot: trigger.Dot - 1, Start: trigger.Start, End: endCol.Index,
	}
	p.expandTransitive(back, endCol)
}
