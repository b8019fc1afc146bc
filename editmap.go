package brackettree

// TextEdit describes one replacement applied to the previous document: the
// span [OldStart, OldEnd) in the previous document's coordinates is replaced
// by NewLength worth of content in the new document.
type TextEdit struct {
	OldStart  Length
	OldEnd    Length
	NewLength Length
}

// resolvedEdit adds the edit's position in the new document's coordinates,
// computed once by EditMapper so repeated queries don't re-derive it.
type resolvedEdit struct {
	oldStart, oldEnd Length
	newStart, newEnd Length
}

// EditMapper translates offsets in the new (post-edit) document back to the
// corresponding offset in the previous (pre-edit) document, and reports how
// far a new-document offset sits from the next region that actually changed.
// The parser uses both to decide whether a candidate subtree from the
// previous AST still applies verbatim (§4.4, §4.5).
//
// edits are supplied in right-to-left order on application — descending by
// OldStart, non-overlapping — since that is the order in which a host can
// apply a batch against one snapshot without earlier offsets in the batch
// being invalidated by later ones (§4.5, §6.2). NewEditMapper reverses them
// internally to answer queries in left-to-right scan order.
type EditMapper struct {
	edits         []resolvedEdit
	oldTotalLength Length
	newTotalLength Length
}

// NewEditMapper builds a mapper for a document of oldTotalLength that has
// had edits applied. edits must arrive in right-to-left (descending
// OldStart) order; NewEditMapper reverses them to left-to-right before
// resolving new-document offsets. Panics if the reversed sequence is not
// sorted, overlaps, or runs past oldTotalLength: any of these means the
// host assembled a malformed edit sequence, which is a caller bug rather
// than a recoverable runtime state.
func NewEditMapper(oldTotalLength Length, edits []TextEdit) *EditMapper {
	leftToRight := make([]TextEdit, len(edits))
	for i, e := range edits {
		leftToRight[len(edits)-1-i] = e
	}

	resolved := make([]resolvedEdit, 0, len(leftToRight))
	prevOldEnd, prevNewEnd := ZeroLength, ZeroLength

	for _, e := range leftToRight {
		if LessThan(e.OldEnd, e.OldStart) || LessThan(e.OldStart, prevOldEnd) {
			panic("brackettree: malformed edit sequence: edits must be sorted right-to-left and non-overlapping")
		}
		gap := DiffNonNeg(prevOldEnd, e.OldStart)
		newStart := Add(prevNewEnd, gap)
		newEnd := Add(newStart, e.NewLength)
		resolved = append(resolved, resolvedEdit{
			oldStart: e.OldStart,
			oldEnd:   e.OldEnd,
			newStart: newStart,
			newEnd:   newEnd,
		})
		prevOldEnd, prevNewEnd = e.OldEnd, newEnd
	}

	if LessThan(oldTotalLength, prevOldEnd) {
		panic("brackettree: malformed edit sequence: edit runs past the document end")
	}
	tailGap := DiffNonNeg(prevOldEnd, oldTotalLength)
	newTotalLength := Add(prevNewEnd, tailGap)

	return &EditMapper{edits: resolved, oldTotalLength: oldTotalLength, newTotalLength: newTotalLength}
}

// GetOffsetBeforeChange maps newOffset, a position in the new document, back
// to the corresponding position in the previous document. ok is false if
// newOffset falls inside a region that was itself replaced by an edit, since
// such a position has no counterpart in the previous document.
func (m *EditMapper) GetOffsetBeforeChange(newOffset Length) (offset Length, ok bool) {
	prevOldEnd, prevNewEnd := ZeroLength, ZeroLength
	for _, e := range m.edits {
		if LessThan(newOffset, e.newStart) {
			return Add(prevOldEnd, DiffNonNeg(prevNewEnd, newOffset)), true
		}
		if LessThan(newOffset, e.newEnd) {
			return ZeroLength, false
		}
		prevOldEnd, prevNewEnd = e.oldEnd, e.newEnd
	}
	return Add(prevOldEnd, DiffNonNeg(prevNewEnd, newOffset)), true
}

// GetDistanceToNextChange returns how far newOffset sits from the start of
// the next region that was changed by an edit (or from the end of the
// document, if no edit remains ahead). A zero result means newOffset lies
// within an edit's new text [newStart, newEnd), which includes its start; a
// pure deletion has no new text, so its position never yields zero. The
// parser uses
// this as an upper bound on how much of a candidate node it may reuse
// without crossing into edited content.
func (m *EditMapper) GetDistanceToNextChange(newOffset Length) Length {
	for _, e := range m.edits {
		if LessThan(newOffset, e.newStart) {
			return DiffNonNeg(newOffset, e.newStart)
		}
		if LessThan(newOffset, e.newEnd) {
			return ZeroLength
		}
	}
	return DiffNonNeg(newOffset, m.newTotalLength)
}

// NewTotalLength returns the total length of the document after all of this
// mapper's edits have been applied.
func (m *EditMapper) NewTotalLength() Length {
	return m.newTotalLength
}
