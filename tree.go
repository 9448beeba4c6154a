package knapsack

// solCrumb is the compressed per-state decision history described in
// spec.md 4.5/GLOSSARY: up to 64 recent decisions packed into a bit-stack,
// plus a link to the committed history that preceded them. Storing one
// boolean vector per live frontier state would be quadratic in the number
// of states and items; a crumb plus a shared append-only tree is not.
//
// A decision bit is a *difference* from the break solution, not an
// absolute choice: bit 1 means "flipped relative to the break decision",
// bit 0 means "left as the break solver decided". This lets the facade
// start the decision vector as the break solution and XOR-patch it during
// backtracking, rather than rebuilding it from scratch.
type solCrumb struct {
	recent   uint64
	previous int
}

// newSolCrumb creates a crumb with no recent decisions, chained to the
// given previously-committed crumb index (0 is the tree sentinel).
func newSolCrumb(previous int) solCrumb {
	return solCrumb{previous: previous}
}

// push records one more decision bit. Must not be called more than 64
// times since the crumb was last fresh (via newSolCrumb or solTree.commit);
// the facade enforces this by committing every 64 pushes (solLevel wraps).
func (c *solCrumb) push(bit uint64) {
	c.recent = (c.recent << 1) | (bit & 1)
}

// solTree is the append-only decision-history tree described in spec.md
// 4.5: index 0 is a reserved sentinel so backtracking can walk "previous"
// links until it hits 0, without a separate has-predecessor flag. Multiple
// live states may share the same previous chain; no deduplication of equal
// prefixes is performed at commit time (see spec.md 9).
type solTree struct {
	crumbs []solCrumb
}

// newSolTree returns a tree containing only the sentinel crumb at index 0.
func newSolTree() *solTree {
	return &solTree{crumbs: []solCrumb{{}}}
}

func (t *solTree) get(index int) solCrumb {
	return t.crumbs[index]
}

// commit appends a copy of crumb to the tree and rewires crumb in place to
// point at that newly committed index with an empty recent word, so the
// caller can keep pushing decisions onto the same crumb value.
func (t *solTree) commit(crumb *solCrumb) {
	index := len(t.crumbs)
	t.crumbs = append(t.crumbs, *crumb)
	crumb.previous = index
	crumb.recent = 0
}

// backtrackState carries the mutable cursor used while walking a crumb
// chain back into a full decision vector.
type backtrackState struct {
	cursor         int
	itemOrder      []int
	decisionVector []bool
}

// backtrack reconstructs the full decision vector for a state identified by
// rootCrumb (with level valid decision bits in its recent word), walking
// rootCrumb.previous through the tree until it reaches the sentinel.
// itemOrder maps cursor positions to original item indices, and must be
// truncated by the caller to end at the item that contributed the most
// recent bit of rootCrumb (see spec.md 4.5's backtracking invariant).
func (t *solTree) backtrack(rootCrumb solCrumb, level int, itemOrder []int, decisionVector []bool) {
	bt := backtrackState{
		cursor:         len(itemOrder) - 1,
		itemOrder:      itemOrder,
		decisionVector: decisionVector,
	}

	backtrackCrumb(rootCrumb.recent, level, &bt)

	previous := rootCrumb.previous
	for previous != 0 {
		crumb := t.get(previous)
		backtrackCrumb(crumb.recent, 64, &bt)
		previous = crumb.previous
	}
}

// backtrackCrumb interprets the low `level` bits of recent as decisions,
// most-recently-pushed first (the LSB), XORing each into the decision
// vector at the cursor's current item and then retreating the cursor.
func backtrackCrumb(recent uint64, level int, bt *backtrackState) {
	for i := 0; i < level; i++ {
		bit := recent & 1
		recent >>= 1

		index := bt.itemOrder[bt.cursor]
		bt.decisionVector[index] = bt.decisionVector[index] != (bit != 0)

		if bt.cursor > 0 {
			bt.cursor--
		}
	}
}
