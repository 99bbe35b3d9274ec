package gll

import (
	"fmt"

	"github.com/dekarrin/cfgparse/internal/util"
	"github.com/dekarrin/cfgparse/ptree"
)

// choiceNode mirrors earley's choice-linked-list node; see that package's
// forest.go for the full explanation. It is duplicated here rather than
// shared because the two engines choose among structurally different
// child collections (Earley path lists vs. SPPF packed-node lists), so a
// shared generic type would need to abstract over both shapes for no
// benefit.
type choiceNode struct {
	parent *choiceNode
	chosen int
	total  int
	next   *choiceNode
}

func newChoiceNode(parent *choiceNode, total int) *choiceNode {
	return &choiceNode{parent: parent, total: total}
}

func (c *choiceNode) finished() bool { return c.chosen >= c.total }

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

// Extractor enumerates distinct trees out of an SPPF without revisiting
// the same packed-node choice twice and without recursing forever into a
// cycle (an intermediate/symbol node that is its own ancestor on the
// current path).
type Extractor struct {
	sppf    *SPPF
	choices *choiceNode
}

// NewExtractor builds an Extractor over f.
func NewExtractor(f *SPPF) *Extractor {
	return &Extractor{sppf: f, choices: newChoiceNode(nil, 1)}
}

func (e *Extractor) choosePath(arr []*sppfNode, choices *choiceNode) (*sppfNode, *choiceNode, bool) {
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

// extractANode returns the list of derivation subtrees a node contributes
// to its parent: a single-element list for a symbol node (the node's own
// tree), or the concatenation of left/right contributions for a packed or
// intermediate node, which aren't grammar symbols in their own right and
// so don't wrap their children in a tree node of their own.
func (e *Extractor) extractANode(node *sppfNode, seen util.KeySet[string], choices *choiceNode) ([]*ptree.Tree, *choiceNode, bool) {
	switch node.kind {
	case dummyKind:
		return nil, choices, true

	case symbolKind:
		if len(node.children) == 0 {
			return []*ptree.Tree{ptree.New(node.sym)}, choices, true
		}

		if seen.Has(node.id) {
			return nil, choices, false
		}

		chosen, choices, ok := e.choosePath(node.children, choices)
		if !ok {
			return nil, choices, false
		}

		seen2 := seen.Copy()
		seen2.Add(node.id)
		kids, choices, ok := e.extractANode(chosen, seen2, choices)
		if !ok {
			return nil, choices, false
		}
		return []*ptree.Tree{ptree.New(node.sym, kids...)}, choices, true

	case intermediateKind:
		if len(node.children) == 0 {
			return nil, choices, true
		}

		id := fmt.Sprintf("i:%s", node.id)
		if seen.Has(id) {
			return nil, choices, false
		}

		chosen, choices, ok := e.choosePath(node.children, choices)
		if !ok {
			return nil, choices, false
		}

		seen2 := seen.Copy()
		seen2.Add(id)
		return e.extractANode(chosen, seen2, choices)

	case packedKind:
		var left, right []*ptree.Tree
		var ok bool

		if node.left != nil && node.left != sppfDummy {
			left, choices, ok = e.extractANode(node.left, seen, choices)
			if !ok {
				return nil, choices, false
			}
		}

		right, choices, ok = e.extractANode(node.right, seen, choices)
		if !ok {
			return nil, choices, false
		}

		return append(left, right...), choices, true
	}

	return nil, choices, true
}

// ExtractATree returns the next not-yet-returned tree, or nil once every
// distinct cycle-free derivation has been exhausted.
func (e *Extractor) ExtractATree() *ptree.Tree {
	for !e.choices.finished() {
		trees, choices, ok := e.extractANode(e.sppf.root, util.NewKeySet[string](), e.choices)
		choices.increment()
		if ok && len(trees) == 1 {
			return trees[0]
		}
	}
	return nil
}
