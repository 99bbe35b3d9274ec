package gll

import "github.com/google/uuid"

// gssNode is one node of the Graph-Structured Stack: a return label
// (the slot to resume at) plus the input position at which the node was
// created. GSS edges are labeled with the SPPF node built for the segment
// they traverse, exactly as the reference's GSS.graph[node] edge list
// stores (v, sppf) pairs.
type gssNode struct {
	label slot
	pos   int
	id    string

	edges []gssEdge

	// popped records, for every input position control has already popped
	// back to through this node, the combined SPPF built at that point.
	// When a new edge is added to a node that has already been popped
	// through, fn_return must replay those pops along the new edge too;
	// see gss.addEdge.
	popped map[int]*sppfNode
}

type gssEdge struct {
	to *gssNode
	w  *sppfNode
}

type gssKey struct {
	label slot
	pos   int
}

// gss is the per-parse Graph-Structured Stack. Every Program.Recognize /
// Program.ParseOn call builds its own, so nothing here is shared across
// concurrent parses; the only process-wide identifier involved is the
// uuid generator used for diagnostic node ids, which carries no shared
// counter state to race on.
type gss struct {
	nodes map[gssKey]*gssNode
}

func newGSS() *gss {
	return &gss{nodes: map[gssKey]*gssNode{}}
}

// get returns the node for (label, pos), creating it if necessary.
func (g *gss) get(label slot, pos int) *gssNode {
	k := gssKey{label, pos}
	n, ok := g.nodes[k]
	if ok {
		return n
	}
	n = &gssNode{label: label, pos: pos, id: uuid.NewString()}
	g.nodes[k] = n
	return n
}

// addEdge adds an edge from u to v labeled w if it doesn't already exist,
// and returns the set of (position, sppf) pairs that must be immediately
// threaded through the new edge because u was already popped through at
// those positions before this edge existed (GLL's "pop before create"
// race: u is the return-label node, and its popped set accumulates
// independently of which callers have registered edges to it yet).
func (u *gssNode) addEdge(v *gssNode, w *sppfNode) []replay {
	for _, e := range u.edges {
		if e.to == v && e.w == w {
			return nil
		}
	}
	u.edges = append(u.edges, gssEdge{to: v, w: w})

	var out []replay
	for pos, z := range u.popped {
		out = append(out, replay{pos: pos, z: z})
	}
	return out
}

type replay struct {
	pos int
	z   *sppfNode
}

// recordPop marks that n has been popped through at position i with
// combined SPPF z, for the "pop before create" replay above.
func (n *gssNode) recordPop(i int, z *sppfNode) {
	if n.popped == nil {
		n.popped = map[int]*sppfNode{}
	}
	n.popped[i] = z
}
