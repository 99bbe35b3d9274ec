package gll

import "github.com/google/uuid"

type sppfKind int

const (
	dummyKind sppfKind = iota
	symbolKind
	intermediateKind
	packedKind
)

// sppfNode is one node of the Shared Packed Parse Forest. A symbol or
// intermediate node with more than one packed child is an ambiguity point:
// more than one way was found to derive the same span. Packed nodes fan
// out into exactly two children, left and right, following a single split
// point k; left is nil for a packed node with no left context (the
// alternative's first symbol).
type sppfNode struct {
	kind sppfKind
	sym  string // set for symbolKind
	sl   slot   // set for intermediateKind and packedKind
	k    int    // split point, packedKind only
	i, j int    // left/right extent

	children []*sppfNode // packedKind children of a symbol/intermediate node
	left     *sppfNode   // packedKind only
	right    *sppfNode   // packedKind only

	id string
}

var sppfDummy = &sppfNode{kind: dummyKind}

// sppfTable deduplicates SPPF nodes by their structural identity, the way
// GLLStructuredStackP.sppf_find_or_create does, so that two threads
// deriving the same span the same way share one node instead of building
// parallel copies.
type sppfTable struct {
	symbols       map[sppfSymbolKey]*sppfNode
	intermediates map[sppfIntermediateKey]*sppfNode
	packed        map[sppfPackedKey]*sppfNode
}

type sppfSymbolKey struct {
	sym  string
	i, j int
}
type sppfIntermediateKey struct {
	sl   slot
	i, j int
}
type sppfPackedKey struct {
	sl   slot
	k    int
	i, j int
}

func newSPPFTable() *sppfTable {
	return &sppfTable{
		symbols:       map[sppfSymbolKey]*sppfNode{},
		intermediates: map[sppfIntermediateKey]*sppfNode{},
		packed:        map[sppfPackedKey]*sppfNode{},
	}
}

// getNodeT is GLLStructuredStackP.getNodeT: a dummy node if x is the
// epsilon marker, otherwise a terminal leaf spanning [i, i+1).
func (t *sppfTable) getNodeT(x string, i int) *sppfNode {
	if x == "" {
		return sppfDummy
	}
	k := sppfSymbolKey{x, i, i + 1}
	if n, ok := t.symbols[k]; ok {
		return n
	}
	n := &sppfNode{kind: symbolKind, sym: x, i: i, j: i + 1, id: uuid.NewString()}
	t.symbols[k] = n
	return n
}

// getNodeP is GLLStructuredStackP.getNodeP: combine left (possibly dummy)
// and right into a packed node, wrapped in a symbol node when sl is at the
// end of its alternative or an intermediate node otherwise, with packed
// nodes deduplicated by (slot, split) within their parent. shortcut is the reference's
// is_non_nullable_alpha(alpha) condition (true only when sl.dot == 1 and
// the single matched symbol is non-nullable); when shortcut holds and sl
// is not yet finished, right itself already has the correct label and no
// wrapping node is built. Crucially, when left is dummy but shortcut does
// not hold (a nullable or epsilon-derived alpha, or a unit production
// where beta is empty) the wrapping node is still built with a single
// child right, matching the reference's else-branch rather than collapsing
// it away.
func (t *sppfTable) getNodeP(sl slot, atEnd, shortcut bool, left, right *sppfNode) *sppfNode {
	if shortcut && !atEnd {
		return right
	}

	var i int
	var parentLeft *sppfNode
	if left != sppfDummy {
		i = left.i
		parentLeft = left
	} else {
		i = right.i
	}
	j := right.j
	k := right.i

	var parent *sppfNode
	if atEnd {
		key := sppfSymbolKey{sl.sym, i, j}
		if n, ok := t.symbols[key]; ok {
			parent = n
		} else {
			parent = &sppfNode{kind: symbolKind, sym: sl.sym, i: i, j: j, id: uuid.NewString()}
			t.symbols[key] = parent
		}
	} else {
		key := sppfIntermediateKey{sl, i, j}
		if n, ok := t.intermediates[key]; ok {
			parent = n
		} else {
			parent = &sppfNode{kind: intermediateKind, sl: sl, i: i, j: j, id: uuid.NewString()}
			t.intermediates[key] = parent
		}
	}

	pk := sppfPackedKey{sl, k, i, j}
	if _, ok := t.packed[pk]; !ok {
		packed := &sppfNode{kind: packedKind, sl: sl, k: k, i: i, j: j, left: parentLeft, right: right, id: uuid.NewString()}
		t.packed[pk] = packed
		parent.children = append(parent.children, packed)
	}

	return parent
}
