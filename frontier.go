package knapsack

// state is one entry of the MinKnap frontier: a weight/profit pair reached
// by flipping some subset of the break solution's decisions, plus the
// compressed decision history needed to recover which subset that was.
type state struct {
	w, p  uint64
	crumb solCrumb
}

// frontier is the dual-monotone ordered sequence of live states described
// in spec.md 4.4: strictly increasing by weight AND strictly increasing by
// profit. Two preallocated buffers (current, next) are swapped in place
// between expansion steps rather than reallocated, per spec.md 5.
type frontier struct {
	current []state
	next     []state
}

// expansionResult carries the information produced by a single add/remove
// step that the facade needs in order to update its lower bound and
// best-known-state record.
type expansionResult struct {
	// improved is true if at least one change-branch state produced a new
	// best-known lower bound during this step.
	improved     bool
	bestW, bestP uint64
	bestCrumb    solCrumb
}

// addItem performs spec.md 4.4's add_item(t) step: the item at efficiency
// position t is considered for inclusion into every live state. s and t are
// the instance's current window bounds (t already advanced to this step's
// value) used for bound-oracle lookups; maxStateWeight and lowerBound gate
// which candidate states survive.
func (f *frontier) addItem(item Item, bound boundOracle, s, t int, maxStateWeight, lowerBound uint64) expansionResult {
	f.next = f.next[:0]
	var res expansionResult

	current := f.current
	keepIdx, changeIdx := 0, 0
	for keepIdx < len(current) || changeIdx < len(current) {
		fireChange := keepIdx >= len(current)
		if !fireChange && changeIdx < len(current) {
			keepW := current[keepIdx].w
			changeW := current[changeIdx].w + item.Weight
			fireChange = keepW > changeW
		}

		if fireChange {
			src := current[changeIdx]
			changeIdx++

			newW := src.w + item.Weight
			if newW > maxStateWeight {
				continue
			}
			newP := src.p + item.Value

			if len(f.next) > 0 && newP <= f.next[len(f.next)-1].p {
				continue
			}
			if bound.upperBound(newW, newP, s, t) <= lowerBound {
				continue
			}

			crumb := src.crumb
			crumb.push(1)
			f.append(state{w: newW, p: newP, crumb: crumb})

			if newW <= bound.capacity && newP > lowerBound {
				res.improved = true
				res.bestW, res.bestP = newW, newP
				res.bestCrumb = crumb
				lowerBound = newP
			}
			continue
		}

		src := current[keepIdx]
		keepIdx++

		if len(f.next) > 0 && src.p <= f.next[len(f.next)-1].p {
			continue
		}
		if bound.upperBound(src.w, src.p, s, t) <= lowerBound {
			continue
		}

		crumb := src.crumb
		crumb.push(0)
		f.append(state{w: src.w, p: src.p, crumb: crumb})
	}

	f.swap()
	return res
}

// removeItem performs spec.md 4.4's remove_item(s) step: the item at
// efficiency position s is considered for removal from every live state
// (every live state still holds it, since the window has not reached
// position s before now). s and t are the instance's current window bounds
// (s already retreated to this step's value).
func (f *frontier) removeItem(item Item, bound boundOracle, s, t int, lowerBound uint64) expansionResult {
	f.next = f.next[:0]
	var res expansionResult

	current := f.current
	keepIdx, changeIdx := 0, 0
	for keepIdx < len(current) || changeIdx < len(current) {
		fireChange := keepIdx >= len(current)
		if !fireChange && changeIdx < len(current) {
			keepW := current[keepIdx].w
			changeW := current[changeIdx].w - item.Weight
			fireChange = keepW > changeW
		}

		if fireChange {
			src := current[changeIdx]
			changeIdx++

			newW := src.w - item.Weight
			newP := src.p - item.Value

			if len(f.next) > 0 && newP <= f.next[len(f.next)-1].p {
				continue
			}
			if bound.upperBound(newW, newP, s, t) <= lowerBound {
				continue
			}

			crumb := src.crumb
			crumb.push(1)
			f.append(state{w: newW, p: newP, crumb: crumb})

			if newW <= bound.capacity && newP > lowerBound {
				res.improved = true
				res.bestW, res.bestP = newW, newP
				res.bestCrumb = crumb
				lowerBound = newP
			}
			continue
		}

		src := current[keepIdx]
		keepIdx++

		if len(f.next) > 0 && src.p <= f.next[len(f.next)-1].p {
			continue
		}
		if bound.upperBound(src.w, src.p, s, t) <= lowerBound {
			continue
		}

		crumb := src.crumb
		crumb.push(0)
		f.append(state{w: src.w, p: src.p, crumb: crumb})
	}

	f.swap()
	return res
}

// append adds a candidate to f.next, overwriting the last entry in place
// of appending when it shares the same weight (the new candidate is
// guaranteed to have strictly greater profit by the dominance invariant,
// since both keep and change branches are only reached after surviving the
// dominance check against f.next's current tail).
func (f *frontier) append(s state) {
	if n := len(f.next); n > 0 && f.next[n-1].w == s.w {
		f.next[n-1] = s
		return
	}
	f.next = append(f.next, s)
}

// swap exchanges current and next so the buffer just built becomes the
// frontier for the next expansion step, and the old current is reused
// (truncated to zero length) as the next scratch buffer.
func (f *frontier) swap() {
	f.current, f.next = f.next, f.current
}
