package brackettree

import "testing"

func TestNewLengthAccessors(t *testing.T) {
	l := NewLength(3, 7)
	if l.LineDelta() != 3 {
		t.Errorf("LineDelta() = %d, want 3", l.LineDelta())
	}
	if l.ColumnDelta() != 7 {
		t.Errorf("ColumnDelta() = %d, want 7", l.ColumnDelta())
	}
	if ZeroLength.LineDelta() != 0 || ZeroLength.ColumnDelta() != 0 || !ZeroLength.IsZero() {
		t.Errorf("ZeroLength is not zero: %v", ZeroLength)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Length
		wantLine int
		wantCol  int
	}{
		{"same line", NewLength(0, 3), NewLength(0, 4), 0, 7},
		{"b advances lines", NewLength(2, 9), NewLength(1, 5), 3, 5},
		{"b zero", NewLength(4, 2), ZeroLength, 4, 2},
		{"a zero", ZeroLength, NewLength(1, 1), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Add(tt.a, tt.b)
			if got.LineDelta() != tt.wantLine || got.ColumnDelta() != tt.wantCol {
				t.Errorf("Add(%s, %s) = %s, want (%d,%d)", tt.a, tt.b, got, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	small := NewLength(1, 0)
	big := NewLength(1, 1)
	bigger := NewLength(2, 0)

	if !LessThan(small, big) {
		t.Errorf("%s should be less than %s", small, big)
	}
	if !LessThan(big, bigger) {
		t.Errorf("%s should be less than %s", big, bigger)
	}
	if Compare(small, small) != 0 {
		t.Errorf("Compare(%s, %s) should be 0", small, small)
	}
	if !GreaterThanEqual(bigger, big) {
		t.Errorf("%s should be >= %s", bigger, big)
	}
	if !LessThanEqual(small, small) {
		t.Errorf("%s should be <= itself", small)
	}
}

func TestDiffNonNeg(t *testing.T) {
	a := NewLength(1, 2)
	b := NewLength(1, 5)
	if d := DiffNonNeg(a, b); d.LineDelta() != 0 || d.ColumnDelta() != 3 {
		t.Errorf("DiffNonNeg(%s, %s) = %s, want (0,3)", a, b, d)
	}

	c := NewLength(3, 1)
	d := NewLength(5, 2)
	if diff := DiffNonNeg(c, d); diff.LineDelta() != 2 || diff.ColumnDelta() != 2 {
		t.Errorf("DiffNonNeg(%s, %s) = %s, want (2,2)", c, d, diff)
	}

	// b < a: defined to return ZeroLength rather than panic or underflow.
	if diff := DiffNonNeg(b, a); !diff.IsZero() {
		t.Errorf("DiffNonNeg(%s, %s) = %s, want ZeroLength", b, a, diff)
	}

	// Round trip: Add(a, DiffNonNeg(a, b)) == b.
	if got := Add(a, DiffNonNeg(a, b)); Compare(got, b) != 0 {
		t.Errorf("Add(a, DiffNonNeg(a,b)) = %s, want %s", got, b)
	}
}

func TestLengthOfString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		wantLine int
		wantCol  int
	}{
		{"empty", "", 0, 0},
		{"plain text", "hello", 0, 5},
		{"one newline", "ab\ncd", 1, 2},
		{"multiple newlines", "a\nb\nc", 2, 1},
		{"trailing newline", "abc\n", 1, 0},
		{"crlf counts as one line break", "\r\n", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LengthOfString(tt.s)
			if got.LineDelta() != tt.wantLine || got.ColumnDelta() != tt.wantCol {
				t.Errorf("LengthOfString(%q) = %s, want (%d,%d)", tt.s, got, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestLengthOfStringGraphemeClusters(t *testing.T) {
	// "e" + combining acute accent is one grapheme cluster, two runes.
	combining := "é"
	if got := LengthOfString(combining); got.ColumnDelta() != 1 {
		t.Errorf("LengthOfString(%q).ColumnDelta() = %d, want 1", combining, got.ColumnDelta())
	}

	// Family emoji built from a ZWJ sequence is one grapheme cluster.
	family := "\U0001F468‍\U0001F469‍\U0001F467"
	if got := LengthOfString(family); got.ColumnDelta() != 1 {
		t.Errorf("LengthOfString(family emoji).ColumnDelta() = %d, want 1", got.ColumnDelta())
	}
}
