package earley

import (
	"github.com/dekarrin/cfgparse/grammar"
	"github.com/dekarrin/cfgparse/internal/util"
	"github.com/dekarrin/cfgparse/parseerr"
	"github.com/dekarrin/cfgparse/ptree"
)

// ForestNode is one node of a (possibly ambiguous, possibly cyclic) parse
// forest: a symbol name plus every alternative way its span could have been
// derived. Each alternative is an ordered list of pathStep, one per symbol
// of the alternative that produced it. An empty Paths means name matched
// with no further structure: a terminal, or a nonterminal that matched
// epsilon.
type ForestNode struct {
	Name  string
	Paths [][]pathStep
}

// pathStep is one symbol's contribution to a path: either the Earley item
// that derived a nonterminal occurrence ('n'), or the literal terminal that
// was scanned ('t'). Sub-forests for 'n' steps are reconstructed lazily via
// (*Parser).forestFor, exactly as the reference's forest() does, so cyclic
// grammars never force unbounded eager recursion while building Paths.
type pathStep struct {
	kind     byte // 'n' or 't'
	state    *Item
	terminal string
}

type forestNodeID struct {
	name  string
	start int
	end   int
}

// parsePaths is EarleyParser.parse_paths: given the symbols of one
// alternative and the [frm,til] span it must cover, find every way to
// split that span among the alternative's symbols, recursing from the
// rightmost symbol backward. The returned paths are built by prepending as
// the recursion unwinds, so each path is in *reverse* symbol order; the
// caller (parseForestFromItem) reverses it back.
func (p *Parser) parsePaths(expr grammar.Production, ch *chart, frm, til int) [][]pathStep {
	if len(expr) == 0 {
		if frm == til {
			return [][]pathStep{{}}
		}
		return nil
	}

	rest := expr[:len(expr)-1]
	v := expr[len(expr)-1]

	type candidate struct {
		step  pathStep
		start int
	}
	var candidates []candidate

	if !grammar.IsNonTerminal(v) {
		if til > 0 && ch.columns[til].Token == v {
			candidates = append(candidates, candidate{pathStep{kind: 't', terminal: v}, til - 1})
		}
	} else {
		for _, s := range ch.columns[til].Items {
			if s.Finished() && s.Name == v {
				candidates = append(candidates, candidate{pathStep{kind: 'n', state: s}, s.Start})
			}
		}
	}

	var out [][]pathStep
	for _, c := range candidates {
		if len(rest) == 0 {
			if c.start == frm {
				out = append(out, []pathStep{c.step})
			}
			continue
		}
		for _, r := range p.parsePaths(rest, ch, frm, c.start) {
			combined := make([]pathStep, 0, len(r)+1)
			combined = append(combined, c.step)
			combined = append(combined, r...)
			out = append(out, combined)
		}
	}
	return out
}

func (p *Parser) parseForestFromItem(ch *chart, it *Item) *ForestNode {
	var raw [][]pathStep
	if len(it.Expr) > 0 {
		raw = p.parsePaths(it.Expr, ch, it.Start, it.End)
	}

	paths := make([][]pathStep, len(raw))
	for i, pe := range raw {
		rev := make([]pathStep, len(pe))
		for j := range pe {
			rev[len(pe)-1-j] = pe[j]
		}
		paths[i] = rev
	}
	return &ForestNode{Name: it.Name, Paths: paths}
}

// parseForestFromItems is EarleyParser.parse_forest: merge the per-item
// forests of every item in items (they must all share the same Name) into
// one ForestNode, concatenating their alternative paths.
func (p *Parser) parseForestFromItems(ch *chart, items []*Item) *ForestNode {
	name := items[0].Name
	var allPaths [][]pathStep
	for _, it := range items {
		sub := p.parseForestFromItem(ch, it)
		allPaths = append(allPaths, sub.Paths...)
	}
	return &ForestNode{Name: name, Paths: allPaths}
}

// forestFor is EarleyParser.forest: resolve one pathStep into the
// sub-forest it denotes, lazily.
func (p *Parser) forestFor(ch *chart, step pathStep) *ForestNode {
	if step.kind == 't' {
		return &ForestNode{Name: step.terminal}
	}
	return p.parseForestFromItems(ch, []*Item{step.state})
}

// Forest is a completed parse forest together with the chart it was built
// from, bundled so tree extraction can keep resolving pathStep references
// lazily without the caller needing to thread the chart through manually.
type Forest struct {
	root *ForestNode
	ch   *chart
	p    *Parser
}

// ParsePrefix runs the chart fill and returns the longest prefix length that
// can be derived from start, plus every completed item spanning [0,prefix]
// that matches one of start's alternatives. Its only error is a Syntax error
// when start has no rule; otherwise a prefix of zero with no completed items
// simply means no match at all.
func (p *Parser) ParsePrefix(text []string, start string) (prefix int, completed []*Item, err error) {
	alts := p.g.StartAlternatives(start)
	if alts == nil {
		return -1, nil, parseerr.NewSyntax(0, text)
	}

	ch, err := p.fillChart(text, start)
	if err != nil {
		return -1, nil, err
	}

	for i := len(ch.columns) - 1; i >= 0; i-- {
		col := ch.columns[i]
		var matches []*Item
		for _, it := range col.Items {
			if it.Name != start || it.Start != 0 || !it.Finished() {
				continue
			}
			for _, alt := range alts {
				if it.Expr.Equal(alt) {
					matches = append(matches, it)
					break
				}
			}
		}
		if len(matches) > 0 {
			return i, matches, nil
		}
	}
	return 0, nil, nil
}

// Recognize reports whether text is entirely derivable from start.
func (p *Parser) Recognize(text []string, start string) (bool, error) {
	prefix, completed, err := p.ParsePrefix(text, start)
	if err != nil {
		return false, err
	}

	var finished []*Item
	for _, it := range completed {
		if it.Finished() {
			finished = append(finished, it)
		}
	}

	if prefix < len(text) || len(finished) == 0 {
		return false, parseerr.NewSyntax(prefix, text[maxInt(prefix, 0):])
	}
	return true, nil
}

// recognizeBudgeted is Recognize with a step hook, backing NaiveRecognizer.
func (p *Parser) recognizeBudgeted(text []string, start string, hook func() bool) (bool, error) {
	alts := p.g.StartAlternatives(start)
	if alts == nil {
		return false, parseerr.NewSyntax(0, text)
	}

	ch, ok, err := p.fillChartBudgeted(text, start, hook)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	lastCol := ch.columns[len(ch.columns)-1]
	for _, it := range lastCol.Items {
		if it.Name == start && it.Start == 0 && it.Finished() {
			for _, alt := range alts {
				if it.Expr.Equal(alt) {
					return true, nil
				}
			}
		}
	}
	return false, parseerr.NewSyntax(len(text), nil)
}

// ParseOn recognizes text against start and, on success, returns the parse
// forest covering every ambiguous derivation, with transitive (Leo) items
// expanded back into ordinary completions first so forest reconstruction
// sees the same chart shape it would without the optimization.
func (p *Parser) ParseOn(text []string, start string) (*Forest, error) {
	prefix, completed, err := p.ParsePrefix(text, start)
	if err != nil {
		return nil, err
	}

	var finished []*Item
	for _, it := range completed {
		if it.Finished() {
			finished = append(finished, it)
		}
	}
	if prefix < len(text) || len(finished) == 0 {
		return nil, parseerr.NewSyntax(prefix, text[maxInt(prefix, 0):])
	}

	ch, err := p.fillChart(text, start)
	if err != nil {
		return nil, err
	}

	for _, it := range finished {
		back := &Item{Name: it.Name, AltIndex: it.AltIndex, Expr: it.Expr, Dot: it.Dot - 1, Start: it.Start, End: it.End}
		p.expandTransitive(back, ch.columns[it.End])
	}

	root := p.parseForestFromItems(ch, finished)
	return &Forest{root: root, ch: ch, p: p}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FirstTree extracts a single tree by always choosing the first available
// path at every node, the simple (non-enhanced) enumerator the reference
// offers alongside its random and choice-tracking extractors. It does not
// guard against cycles; use ExtractATree (via NewExtractor) for ambiguous
// or cyclic grammars.
func (f *Forest) FirstTree() *ptree.Tree {
	return f.p.firstTree(f.ch, f.root)
}

func (p *Parser) firstTree(ch *chart, node *ForestNode) *ptree.Tree {
	if len(node.Paths) == 0 {
		return ptree.New(node.Name)
	}
	path := node.Paths[0]
	children := make([]*ptree.Tree, len(path))
	for i, step := range path {
		children[i] = p.firstTree(ch, p.forestFor(ch, step))
	}
	return ptree.New(node.Name, children...)
}

// choiceNode is the reference's ChoiceNode: a node in the linked list of
// extraction decisions, letting Extractor revisit a previous choice point
// and try the next untried alternative instead of restarting from scratch.
type choiceNode struct {
	parent *choiceNode
	chosen int
	total  int
	next   *choiceNode
}

func newChoiceNode(parent *choiceNode, total int) *choiceNode {
	return &choiceNode{parent: parent, total: total}
}

func (c *choiceNode) finished() bool {
	return c.chosen >= c.total
}

func (c *choiceNode) increment() *choiceNode {
	c.next = nil
	c.chosen++
	if c.finished() {
		if c.parent == nil {
			return nil
		}
		return c.parent.increment()
	}
	return c
}

// Extractor enumerates distinct trees out of an ambiguous (and potentially
// cyclic) Forest without revisiting the same tree twice and without
// recursing forever into a cycle, mirroring the reference's
// EnhancedExtractor.
type Extractor struct {
	f       *Forest
	choices *choiceNode
}

// NewExtractor builds an Extractor over f, starting from the root choice.
func NewExtractor(f *Forest) *Extractor {
	return &Extractor{f: f, choices: newChoiceNode(nil, 1)}
}

func (e *Extractor) choosePath(arr [][]pathStep, choices *choiceNode) ([]pathStep, *choiceNode, bool) {
	if choices.next != nil {
		if choices.next.finished() {
			return nil, choices.next, false
		}
	} else {
		choices.next = newChoiceNode(choices, len(arr))
	}
	next := choices.next
	return arr[next.chosen], next, true
}

func (e *Extractor) extractANode(node *ForestNode, seen util.KeySet[forestNodeID], choices *choiceNode) (*ptree.Tree, *choiceNode, bool) {
	if len(node.Paths) == 0 {
		return ptree.New(node.Name), choices, true
	}

	path, choices, ok := e.choosePath(node.Paths, choices)
	if !ok {
		return nil, choices, false
	}

	children := make([]*ptree.Tree, 0, len(path))
	for _, step := range path {
		if step.kind == 't' {
			children = append(children, ptree.New(step.terminal))
			continue
		}

		nid := forestNodeID{step.state.Name, step.state.Start, step.state.End}
		if seen.Has(nid) {
			return nil, choices, false
		}

		next := e.f.p.forestFor(e.f.ch, step)
		nextSeen := seen.Copy()
		nextSeen.Add(nid)

		child, newChoices, ok := e.extractANode(next, nextSeen, choices)
		if !ok {
			return nil, newChoices, false
		}
		children = append(children, child)
		choices = newChoices
	}

	return ptree.New(node.Name, children...), choices, true
}

// ExtractATree returns the next not-yet-returned tree, or nil once every
// distinct cycle-free derivation has been exhausted.
func (e *Extractor) ExtractATree() *ptree.Tree {
	for !e.choices.finished() {
		tree, choices, ok := e.extractANode(e.f.root, util.NewKeySet[forestNodeID](), e.choices)
		choices.increment()
		if ok {
			return tree
		}
	}
	return nil
}
