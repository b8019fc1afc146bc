package brackettree

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Length denotes a displacement in a document as a (lineDelta, columnDelta)
// pair: how many lines to advance, and how many columns into the resulting
// line. Column resets to the given value on every line advance, mirroring
// how a cursor moves when text is inserted or skipped over.
//
// Both fields are packed into a single uint64 for constant-time comparison,
// the same "location in one machine word" trick the teacher package applies
// to source spans (see Span in the original syntax package this was ported
// from): lineDelta occupies the high bits, columnDelta the low
// columnBits bits.
type Length struct {
	bits uint64
}

const (
	columnBits = 26
	columnMask = uint64(1)<<columnBits - 1
	maxColumn  = columnMask
	maxLine    = uint64(1)<<(64-columnBits) - 1
)

// ZeroLength is the identity element of the length monoid.
var ZeroLength = Length{}

// NewLength builds a Length from a line delta and column delta. Both are
// clamped to the packed representation's range; no real document comes
// close to either bound.
func NewLength(lineDelta, columnDelta int) Length {
	l := uint64(lineDelta)
	c := uint64(columnDelta)
	if l > maxLine {
		l = maxLine
	}
	if c > maxColumn {
		c = maxColumn
	}
	return Length{bits: l<<columnBits | c}
}

// LineDelta returns the number of lines this length advances.
func (l Length) LineDelta() int {
	return int(l.bits >> columnBits)
}

// ColumnDelta returns the column offset into the line this length ends on.
func (l Length) ColumnDelta() int {
	return int(l.bits & columnMask)
}

// IsZero reports whether l is the zero length.
func (l Length) IsZero() bool {
	return l.bits == 0
}

// Add combines two lengths: if b does not advance any lines, its column
// delta is appended to a's; otherwise b's lines and final column replace
// a's, since column resets on every line advance.
func Add(a, b Length) Length {
	if b.LineDelta() == 0 {
		return NewLength(a.LineDelta(), a.ColumnDelta()+b.ColumnDelta())
	}
	return NewLength(a.LineDelta()+b.LineDelta(), b.ColumnDelta())
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than b,
// using lexicographic (lineDelta, columnDelta) order. Because both fields
// are packed with lineDelta in the high bits, this is a single integer
// comparison.
func Compare(a, b Length) int {
	switch {
	case a.bits < b.bits:
		return -1
	case a.bits > b.bits:
		return 1
	default:
		return 0
	}
}

// LessThan reports whether a < b.
func LessThan(a, b Length) bool { return a.bits < b.bits }

// LessThanEqual reports whether a <= b.
func LessThanEqual(a, b Length) bool { return a.bits <= b.bits }

// GreaterThanEqual reports whether a >= b.
func GreaterThanEqual(a, b Length) bool { return a.bits >= b.bits }

// DiffNonNeg returns the unique d such that Add(a, d) == b, provided a <= b;
// otherwise it returns ZeroLength. This is used to translate between
// document offsets that are known to be ordered, e.g. an edit's end and a
// query offset past it.
func DiffNonNeg(a, b Length) Length {
	if LessThan(b, a) {
		return ZeroLength
	}
	if a.LineDelta() == b.LineDelta() {
		return NewLength(0, b.ColumnDelta()-a.ColumnDelta())
	}
	return NewLength(b.LineDelta()-a.LineDelta(), b.ColumnDelta())
}

// LengthOfString returns the Length spanned by s: the number of line breaks
// it contains, and the grapheme-cluster width of the text following the
// last one (or of the whole string, if it contains none).
//
// Columns count extended grapheme clusters rather than bytes or runes, so a
// combining-mark sequence or an emoji with a modifier occupies one column,
// matching what a cursor visually steps over in an editor.
func LengthOfString(s string) Length {
	lines := 0
	lastLineStart := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if IsNewline(r) {
			lines++
			lastLineStart = i
			if r == '\r' && i < len(s) && s[i] == '\n' {
				// \r\n is a single line break, not two.
				i++
				lastLineStart = i
			}
		}
	}
	return NewLength(lines, graphemeClusterCount(s[lastLineStart:]))
}

// graphemeClusterCount counts the extended grapheme clusters in s.
func graphemeClusterCount(s string) int {
	count := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		count++
	}
	return count
}

// String implements fmt.Stringer for debugging.
func (l Length) String() string {
	return fmt.Sprintf("(%d,%d)", l.LineDelta(), l.ColumnDelta())
}
