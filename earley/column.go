package earley

import "github.com/dekarrin/cfgparse/internal/util"

// Column is one position in the chart: all items whose dot has advanced to
// exactly this point in the input, plus (when Leo's optimization is active)
// any transitive items summarizing a suppressed right-recursive chain
// ending here.
type Column struct {
	Index int
	Token string // the terminal consumed to reach this column; "" for column 0

	Items []*Item

	seen        util.KeySet[itemKey]
	transitives map[string]*Item // postdot symbol -> transitive item, Leo only
}

func newColumn(index int, token string) *Column {
	return &Column{
		Index: index,
		Token: token,
		seen:  util.NewKeySet[itemKey](),
	}
}

// Add inserts it into the column if an equal item (same name, alternative,
// dot, and start column) isn't already present, stamping End to this
// column's index either way. It returns the canonical stored item, which
// may be a previously added one rather than it itself.
func (c *Column) Add(it *Item) *Item {
	it.End = c.Index

	k := it.key()
	if c.seen.Has(k) {
		for _, existing := range c.Items {
			if existing.key() == k {
				return existing
			}
		}
	}

	c.seen.Add(k)
	c.Items = append(c.Items, it)
	return it
}

// addTransitive records a Leo transitive item for the given postdot symbol,
// overwriting any earlier one (uniq_postdot semantics: only the latest
// transitive item per symbol per column is kept).
func (c *Column) addTransitive(postdotSymbol string, it *Item) {
	if c.transitives == nil {
		c.transitives = map[string]*Item{}
	}
	c.transitives[postdotSymbol] = it
}

func (c *Column) transitive(postdotSymbol string) (*Item, bool) {
	if c.transitives == nil {
		return nil, false
	}
	it, ok := c.transitives[postdotSymbol]
	return it, ok
}
