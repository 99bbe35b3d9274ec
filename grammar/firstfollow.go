package grammar

// FirstFollow holds the simultaneous FIRST/FOLLOW/nullable fixed point
// computed by FirstAndFollow, mirroring get_first_and_follow from the GLL
// reference. It feeds the optional selective-pruning hook in gll, and the
// gll driver also takes its nullable set from it; earley does not use it.
type FirstFollow struct {
	Nullable map[string]bool
	First    map[string]map[string]bool
	Follow   map[string]map[string]bool
}

// FirstAndFollow computes FIRST and FOLLOW sets for every nonterminal in g,
// plus the same nullable set Nullable returns, all in one fixed-point pass
// the way the reference computes them together rather than as three
// separate passes.
func (g *Grammar) FirstAndFollow(start string) FirstFollow {
	ff := FirstFollow{
		Nullable: map[string]bool{},
		First:    map[string]map[string]bool{},
		Follow:   map[string]map[string]bool{},
	}

	for _, head := range g.order {
		ff.First[head] = map[string]bool{}
		ff.Follow[head] = map[string]bool{}
	}
	if start != "" {
		ff.Follow[start] = map[string]bool{}
	}

	for {
		changed := false

		for _, head := range g.order {
			rule := g.rules[head]
			for _, prod := range rule.Productions {
				if len(prod) == 0 {
					if !ff.Nullable[head] {
						ff.Nullable[head] = true
						changed = true
					}
					continue
				}

				// FIRST(head) gains FIRST of each prefix of leading
				// nullable symbols, plus the first non-nullable symbol's
				// FIRST set (or itself, if a terminal).
				allNullableSoFar := true
				for _, sym := range prod {
					if !allNullableSoFar {
						break
					}
					if IsNonTerminal(sym) {
						for s := range ff.First[sym] {
							if addTo(ff.First[head], s) {
								changed = true
							}
						}
						if !ff.Nullable[sym] {
							allNullableSoFar = false
						}
					} else {
						if addTo(ff.First[head], sym) {
							changed = true
						}
						allNullableSoFar = false
					}
				}
				if allNullableSoFar {
					if !ff.Nullable[head] {
						ff.Nullable[head] = true
						changed = true
					}
				}

				// FOLLOW propagation: for each nonterminal occurrence,
				// FOLLOW gains FIRST of the suffix after it, and if that
				// suffix is nullable, FOLLOW(head) too.
				for i, sym := range prod {
					if !IsNonTerminal(sym) {
						continue
					}
					if _, ok := ff.Follow[sym]; !ok {
						ff.Follow[sym] = map[string]bool{}
					}

					suffix := prod[i+1:]
					suffixNullable := true
					for _, s2 := range suffix {
						if IsNonTerminal(s2) {
							for s := range ff.First[s2] {
								if addTo(ff.Follow[sym], s) {
									changed = true
								}
							}
							if !ff.Nullable[s2] {
								suffixNullable = false
								break
							}
						} else {
							if addTo(ff.Follow[sym], s2) {
								changed = true
							}
							suffixNullable = false
							break
						}
					}

					if suffixNullable {
						for s := range ff.Follow[head] {
							if addTo(ff.Follow[sym], s) {
								changed = true
							}
						}
					}
				}
			}
		}

		if !changed {
			break
		}
	}

	return ff
}

func addTo(set map[string]bool, s string) bool {
	if set[s] {
		return false
	}
	set[s] = true
	return true
}
