package grammar

// Nullable computes the set of nonterminals that can derive the empty
// string, via the same fixed-point iteration as the reference nullable(g):
// start from the nonterminals with a direct epsilon alternative, then
// repeatedly pull into that set any nonterminal with at least one
// alternative consisting only of already-nullable symbols, until a full
// pass adds nothing.
func (g *Grammar) Nullable() map[string]bool {
	nullable := map[string]bool{}

	for _, head := range g.order {
		for _, prod := range g.rules[head].Productions {
			if len(prod) == 0 {
				nullable[head] = true
			}
		}
	}

	for {
		changed := false

		for _, head := range g.order {
			if nullable[head] {
				continue
			}

			rule := g.rules[head]
		altLoop:
			for _, prod := range rule.Productions {
				for _, sym := range prod {
					if !nullable[sym] {
						continue altLoop
					}
				}
				// every symbol in this alternative (possibly zero of them)
				// is nullable, so head is nullable too.
				nullable[head] = true
				changed = true
				break altLoop
			}
		}

		if !changed {
			break
		}
	}

	return nullable
}
