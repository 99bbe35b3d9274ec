package gll

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/dekarrin/cfgparse/grammar"
	"github.com/dekarrin/cfgparse/internal/util"
	"github.com/dekarrin/cfgparse/parseerr"
)

type descriptor struct {
	l slot
	u *gssNode
	i int
	w *sppfNode
}

type descKey struct {
	l slot
	u *gssNode
	w *sppfNode
}

// bottomLabel is the sentinel GSS label representing "nothing left to
// return to": when a descriptor pops through the bottom node, the whole
// parse has accepted up to that position.
var bottomLabel = slot{sym: "$"}

// driver is one run of the GLL dispatch loop: its own GSS, SPPF table, and
// descriptor queue, built fresh per call so concurrent Recognize/ParseOn
// calls against the same compiled Program never share mutable state.
type driver struct {
	pr   *Program
	text []string

	gss  *gss
	sppf *sppfTable

	r *linkedlistqueue.Queue
	u map[int]util.KeySet[descKey]

	accepted bool
	result   *sppfNode
}

func (pr *Program) newDriver(text []string) *driver {
	return &driver{
		pr:   pr,
		text: text,
		gss:  newGSS(),
		sppf: newSPPFTable(),
		r:    linkedlistqueue.New(),
		u:    map[int]util.KeySet[descKey]{},
	}
}

func (d *driver) addThread(l slot, u *gssNode, i int, w *sppfNode) {
	k := descKey{l, u, w}
	if d.u[i] == nil {
		d.u[i] = util.NewKeySet[descKey]()
	}
	if d.u[i].Has(k) {
		return
	}
	d.u[i].Add(k)
	d.r.Enqueue(descriptor{l, u, i, w})
}

// run drains the descriptor queue, the single dispatch loop the compiled
// Program's slot table is interpreted by (route (a) from the design notes:
// data-driven dispatch rather than generated source).
func (d *driver) run(start string) {
	bottom := d.gss.get(bottomLabel, 0)

	alts := d.pr.alts[start]
	for altIdx := range alts {
		d.addThread(slot{start, altIdx, 0}, bottom, 0, sppfDummy)
	}

	for !d.r.Empty() {
		v, _ := d.r.Dequeue()
		d.step(v.(descriptor))
	}
}

func (d *driver) step(desc descriptor) {
	sl := desc.l

	if d.pr.finished(sl) {
		d.pop(desc.u, desc.i, desc.w)
		return
	}

	sym, _ := d.pr.atDot(sl)
	if grammar.IsNonTerminal(sym) {
		returnSlot := slot{sl.sym, sl.alt, sl.dot + 1}
		node := d.gss.get(returnSlot, desc.i)

		for _, r := range node.addEdge(desc.u, desc.w) {
			combined := d.sppf.getNodeP(returnSlot, d.pr.finished(returnSlot), d.pr.shortcutGetNodeP(returnSlot), desc.w, r.z)
			d.addThread(returnSlot, desc.u, r.pos, combined)
		}

		lookahead := ""
		if desc.i < len(d.text) {
			lookahead = d.text[desc.i]
		}
		for altIdx := range d.pr.alts[sym] {
			if !d.pr.selectable(sym, altIdx, lookahead) {
				continue
			}
			d.addThread(slot{sym, altIdx, 0}, node, desc.i, sppfDummy)
		}
		return
	}

	if desc.i < len(d.text) && d.text[desc.i] == sym {
		cr := d.sppf.getNodeT(sym, desc.i)
		nextSlot := slot{sl.sym, sl.alt, sl.dot + 1}
		combined := d.sppf.getNodeP(nextSlot, d.pr.finished(nextSlot), d.pr.shortcutGetNodeP(nextSlot), desc.w, cr)
		d.addThread(nextSlot, desc.u, desc.i+1, combined)
	}
}

func (d *driver) pop(u *gssNode, i int, w *sppfNode) {
	if u.label == bottomLabel {
		if i == len(d.text) {
			d.accepted = true
			d.result = w
		}
		return
	}

	u.recordPop(i, w)
	for _, e := range u.edges {
		combined := d.sppf.getNodeP(u.label, d.pr.finished(u.label), d.pr.shortcutGetNodeP(u.label), e.w, w)
		d.addThread(u.label, e.to, i, combined)
	}
}

// Recognize reports whether text is entirely derivable from start. On
// rejection the Syntax error carries position 0 and the whole input; the
// position at which the derivation stalled is not tracked.
func (pr *Program) Recognize(text []string, start string) (bool, error) {
	if pr.alts[start] == nil {
		return false, parseerr.NewSyntax(0, text)
	}

	d := pr.newDriver(text)
	d.run(start)

	if !d.accepted {
		return false, parseerr.NewSyntax(0, text)
	}
	return true, nil
}

// SPPF holds the root of a completed Shared Packed Parse Forest. Every node
// reachable from it is already built, so tree extraction needs nothing else.
type SPPF struct {
	root *sppfNode
}

// ParseOn recognizes text against start and, on success, returns the root
// of the resulting SPPF. Its Syntax error on rejection carries position 0
// and the whole input, as Recognize's does.
func (pr *Program) ParseOn(text []string, start string) (*SPPF, error) {
	if pr.alts[start] == nil {
		return nil, parseerr.NewSyntax(0, text)
	}

	d := pr.newDriver(text)
	d.run(start)

	if !d.accepted {
		return nil, parseerr.NewSyntax(0, text)
	}
	return &SPPF{root: d.result}, nil
}
