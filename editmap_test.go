package brackettree

import "testing"

func TestEditMapperNoEdits(t *testing.T) {
	m := NewEditMapper(NewLength(0, 20), nil)
	off, ok := m.GetOffsetBeforeChange(NewLength(0, 5))
	if !ok || Compare(off, NewLength(0, 5)) != 0 {
		t.Errorf("with no edits, offsets should map unchanged, got (%s, %v)", off, ok)
	}
	if Compare(m.NewTotalLength(), NewLength(0, 20)) != 0 {
		t.Errorf("NewTotalLength() = %s, want (0,20)", m.NewTotalLength())
	}
}

func TestEditMapperSingleShrinkingEdit(t *testing.T) {
	// Old: "aaaaXXXXXbbbb" (4 + 5 + 4 = 13 cols). Edit replaces the 5-col
	// XXXXX with a 1-col "Y": new document is "aaaaYbbbb" (9 cols).
	edits := []TextEdit{
		{OldStart: NewLength(0, 4), OldEnd: NewLength(0, 9), NewLength: NewLength(0, 1)},
	}
	m := NewEditMapper(NewLength(0, 13), edits)

	if got := m.NewTotalLength(); Compare(got, NewLength(0, 9)) != 0 {
		t.Fatalf("NewTotalLength() = %s, want (0,9)", got)
	}

	// Before the edit: offsets pass through unchanged.
	off, ok := m.GetOffsetBeforeChange(NewLength(0, 2))
	if !ok || Compare(off, NewLength(0, 2)) != 0 {
		t.Errorf("offset before edit: got (%s,%v), want (0,2),true", off, ok)
	}

	// Inside the edit's new span [4,5): no pre-edit counterpart.
	if _, ok := m.GetOffsetBeforeChange(NewLength(0, 4)); ok {
		t.Error("offset inside an edited region should not map")
	}

	// After the edit: "b" at new offset 5 was old offset 9.
	off, ok = m.GetOffsetBeforeChange(NewLength(0, 5))
	if !ok || Compare(off, NewLength(0, 9)) != 0 {
		t.Errorf("offset after edit: got (%s,%v), want (0,9),true", off, ok)
	}
}

func TestEditMapperDistanceToNextChange(t *testing.T) {
	edits := []TextEdit{
		{OldStart: NewLength(0, 4), OldEnd: NewLength(0, 9), NewLength: NewLength(0, 1)},
	}
	m := NewEditMapper(NewLength(0, 13), edits)

	if d := m.GetDistanceToNextChange(NewLength(0, 0)); Compare(d, NewLength(0, 4)) != 0 {
		t.Errorf("distance from start = %s, want (0,4)", d)
	}
	if d := m.GetDistanceToNextChange(NewLength(0, 3)); Compare(d, NewLength(0, 1)) != 0 {
		t.Errorf("distance just before edit = %s, want (0,1)", d)
	}
	if d := m.GetDistanceToNextChange(NewLength(0, 4)); !d.IsZero() {
		t.Errorf("distance inside edit = %s, want zero", d)
	}
	// After the edit, the next boundary is the end of the document: new
	// total length is 9, so from offset 6 that's 3 columns away.
	if d := m.GetDistanceToNextChange(NewLength(0, 6)); Compare(d, NewLength(0, 3)) != 0 {
		t.Errorf("distance to end of document = %s, want (0,3)", d)
	}
}

func TestEditMapperMultipleEdits(t *testing.T) {
	// Old: 20 columns. Two edits: [2,4) -> 0 cols (deletion), [10,10) -> 2
	// cols (pure insertion). Supplied right-to-left (descending OldStart),
	// the order a host applies them in so earlier offsets in the batch stay
	// valid while later-in-document edits are applied first.
	edits := []TextEdit{
		{OldStart: NewLength(0, 10), OldEnd: NewLength(0, 10), NewLength: NewLength(0, 2)},
		{OldStart: NewLength(0, 2), OldEnd: NewLength(0, 4), NewLength: ZeroLength},
	}
	m := NewEditMapper(NewLength(0, 20), edits)
	// New total: 20 - 2 (deleted) + 2 (inserted) = 20.
	if got := m.NewTotalLength(); Compare(got, NewLength(0, 20)) != 0 {
		t.Fatalf("NewTotalLength() = %s, want (0,20)", got)
	}

	// New offset 5 (old content continuing after the deletion) maps back
	// to old offset 7: it is 3 cols past the deletion's new position 2, and
	// the deletion ended at old offset 4, so 4 + 3 = 7.
	off, ok := m.GetOffsetBeforeChange(NewLength(0, 5))
	if !ok {
		t.Fatal("expected offset 5 to map")
	}
	if Compare(off, NewLength(0, 7)) != 0 {
		t.Errorf("GetOffsetBeforeChange(5) = %s, want (0,7)", off)
	}
}

func TestEditMapperPanicsOnOverlappingEdits(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("overlapping edits should panic")
		}
	}()
	// Supplied right-to-left; once reversed to left-to-right these still
	// overlap ([2,6) and [4,8)).
	NewEditMapper(NewLength(0, 10), []TextEdit{
		{OldStart: NewLength(0, 4), OldEnd: NewLength(0, 8), NewLength: NewLength(0, 1)},
		{OldStart: NewLength(0, 2), OldEnd: NewLength(0, 6), NewLength: NewLength(0, 1)},
	})
}

func TestEditMapperPanicsOnAscendingInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("edits supplied left-to-right instead of right-to-left should panic")
		}
	}()
	// These two edits are individually well-formed and non-overlapping, but
	// supplied in ascending OldStart order rather than the required
	// right-to-left order; reversing them yields a descending (and thus
	// "overlapping" by the sorted-ascending check) sequence.
	NewEditMapper(NewLength(0, 20), []TextEdit{
		{OldStart: NewLength(0, 2), OldEnd: NewLength(0, 4), NewLength: ZeroLength},
		{OldStart: NewLength(0, 10), OldEnd: NewLength(0, 10), NewLength: NewLength(0, 2)},
	})
}

func TestEditMapperPanicsOnEditPastEnd(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("an edit running past the document end should panic")
		}
	}()
	NewEditMapper(NewLength(0, 5), []TextEdit{
		{OldStart: NewLength(0, 3), OldEnd: NewLength(0, 9), NewLength: NewLength(0, 1)},
	})
}
