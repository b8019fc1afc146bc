package brackettree

// Range is a half-open span [Start, End) of document positions.
type Range struct {
	Start Length
	End   Length
}

// BracketMatch is one bracket leaf found by GetBracketsInRange, together
// with its nesting depth: the number of enclosing Pair contents around it.
// A Pair's own opening and closing brackets are reported at the same depth
// as the pair itself; depth increases only for nodes inside a Pair's child.
type BracketMatch struct {
	Range Range
	Depth int
}

// GetBracketsInRange walks root and returns every Bracket leaf whose span
// intersects [start, end), along with its nesting depth. InvalidBracket
// leaves are omitted: an unmatched closer is not part of any pair structure
// (§6.3). Subtrees whose span lies wholly outside the query window are
// skipped without being descended into, which is what makes this cheap on
// the (2,3)-tree: most of a large document's structure never needs a look.
func GetBracketsInRange(root Node, start, end Length) []BracketMatch {
	var out []BracketMatch
	collectBrackets(root, ZeroLength, 0, start, end, &out)
	return out
}

func collectBrackets(n Node, nodeStart Length, depth int, start, end Length, out *[]BracketMatch) {
	nodeEnd := Add(nodeStart, n.Length())
	if LessThanEqual(nodeEnd, start) || GreaterThanEqual(nodeStart, end) {
		return
	}

	switch n.Kind() {
	case KindText, KindInvalidBracket:
		// No bracket structure to report.

	case KindBracket:
		*out = append(*out, BracketMatch{Range: Range{Start: nodeStart, End: nodeEnd}, Depth: depth})

	case KindPair:
		pos := nodeStart
		collectBrackets(n.Opening(), pos, depth, start, end, out)
		pos = Add(pos, n.Opening().Length())
		if c := n.Child(); c != nil {
			collectBrackets(*c, pos, depth+1, start, end, out)
			pos = Add(pos, c.Length())
		}
		if c := n.Closing(); c != nil {
			collectBrackets(*c, pos, depth, start, end, out)
		}

	case KindList:
		pos := nodeStart
		for _, item := range n.Items() {
			collectBrackets(item, pos, depth, start, end, out)
			pos = Add(pos, item.Length())
			if GreaterThanEqual(pos, end) {
				break
			}
		}
	}
}
