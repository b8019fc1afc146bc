package brackettree

// This file implements the (2,3)-tree operations over List nodes: Append,
// Prepend, Concat, and MergeTrees (merge23Trees in the source design). All
// four return a (possibly new, possibly taller) root; none mutate the
// receiver, keeping nodes immutable and safely shareable with the previous
// AST during incremental reuse (§3.5).

// Append returns the root of this List with node appended as its new last
// item. Panics if n is not a List, if n has fewer than two items (a List
// built by hand from zero or one items is not well-formed; use MergeTrees
// to build from scratch instead), or if node.ListHeight() > n.ListHeight().
func (n Node) Append(node Node) Node {
	requireList(n, "Append")
	if len(n.Items()) < 2 {
		panic("brackettree: Append requires a well-formed list of at least two items; build from scratch with MergeTrees")
	}
	if node.ListHeight() > n.ListHeight() {
		panic("brackettree: Append precondition violated: item is taller than the list")
	}
	if node.ListHeight() == n.ListHeight() {
		return newList([]Node{n, node})
	}
	newN, overflow := appendInto(n, node)
	if overflow == nil {
		return newN
	}
	return newList([]Node{newN, *overflow})
}

// appendInto inserts item (whose height is strictly less than n.ListHeight())
// into n, returning the updated node and, if inserting caused a 3-item level
// to split, the overflow node that must be inserted one level up.
func appendInto(n Node, item Node) (Node, *Node) {
	childHeight := n.ListHeight() - 1
	items := append([]Node(nil), n.Items()...)

	var overflow Node
	hasOverflow := false
	if item.ListHeight() == childHeight {
		overflow, hasOverflow = item, true
	} else {
		last := items[len(items)-1]
		newLast, childOverflow := appendInto(last, item)
		items[len(items)-1] = newLast
		if childOverflow != nil {
			overflow, hasOverflow = *childOverflow, true
		}
	}

	if !hasOverflow {
		return newList(items), nil
	}
	if len(items) < 3 {
		items = append(items, overflow)
		return newList(items), nil
	}
	// Level is already full (3 items): pop the last existing item and pair
	// it with the incoming overflow to form the new overflow node, leaving
	// this level with the first two items.
	popped := items[2]
	newN := newList(items[:2])
	ofl := newList([]Node{popped, overflow})
	return newN, &ofl
}

// Prepend returns the root of this List with node inserted as its new first
// item. Panics if n is not a List, if n has fewer than two items (see
// Append), or if node.ListHeight() > n.ListHeight().
func (n Node) Prepend(node Node) Node {
	requireList(n, "Prepend")
	if len(n.Items()) < 2 {
		panic("brackettree: Prepend requires a well-formed list of at least two items; build from scratch with MergeTrees")
	}
	if node.ListHeight() > n.ListHeight() {
		panic("brackettree: Prepend precondition violated: item is taller than the list")
	}
	if node.ListHeight() == n.ListHeight() {
		return newList([]Node{node, n})
	}
	newN, overflow := prependInto(n, node)
	if overflow == nil {
		return newN
	}
	return newList([]Node{*overflow, newN})
}

// prependInto is the mirror image of appendInto, operating on the first item.
func prependInto(n Node, item Node) (Node, *Node) {
	childHeight := n.ListHeight() - 1
	items := append([]Node(nil), n.Items()...)

	var overflow Node
	hasOverflow := false
	if item.ListHeight() == childHeight {
		overflow, hasOverflow = item, true
	} else {
		first := items[0]
		newFirst, childOverflow := prependInto(first, item)
		items[0] = newFirst
		if childOverflow != nil {
			overflow, hasOverflow = *childOverflow, true
		}
	}

	if !hasOverflow {
		return newList(items), nil
	}
	if len(items) < 3 {
		items = append([]Node{overflow}, items...)
		return newList(items), nil
	}
	popped := items[0]
	newN := newList(items[1:])
	ofl := newList([]Node{overflow, popped})
	return newN, &ofl
}

// Concat joins two subtrees of possibly different heights into one: a direct
// 2-item List of height+1 when heights match, or an Append/Prepend onto the
// taller side otherwise, which keeps the taller height unless a full level
// splits all the way up, in which case the result is one level taller.
func Concat(a, b Node) Node {
	switch {
	case a.ListHeight() == b.ListHeight():
		return newList([]Node{a, b})
	case a.ListHeight() > b.ListHeight():
		return a.Append(b)
	default:
		return b.Prepend(a)
	}
}

// MergeTrees builds a balanced (2,3)-tree from a left-to-right sequence of
// sibling subtrees (merge23Trees in the source design). Returns EmptyList
// for an empty sequence, and the sole item unchanged for a sequence of one.
func MergeTrees(items []Node) Node {
	switch len(items) {
	case 0:
		return EmptyList
	case 1:
		return items[0]
	}

	h := items[0].ListHeight()
	uniform := true
	for _, it := range items[1:] {
		if it.ListHeight() != h {
			uniform = false
			break
		}
	}
	if uniform {
		return mergeUniformHeights(items)
	}
	return mergeMixedHeights(items)
}

// mergeUniformHeights handles the common case produced by the parser: a run
// of siblings all at the same height. It pairs them up level by level,
// absorbing a trailing unpaired item into the last pair to form a 3-item
// group, until one node remains.
func mergeUniformHeights(items []Node) Node {
	level := items
	for len(level) > 1 {
		level = pairUpLevel(level)
	}
	return level[0]
}

// pairUpLevel groups same-height siblings into 2-item Lists, folding a
// trailing group of 3 (rather than leaving a dangling single item) when the
// count is odd.
func pairUpLevel(level []Node) []Node {
	n := len(level)
	out := make([]Node, 0, (n+1)/2)
	i := 0
	for n-i >= 4 {
		out = append(out, newList([]Node{level[i], level[i+1]}))
		i += 2
	}
	switch n - i {
	case 2:
		out = append(out, newList([]Node{level[i], level[i+1]}))
	case 3:
		out = append(out, newList([]Node{level[i], level[i+1], level[i+2]}))
	}
	return out
}

// mergeMixedHeights implements the general accumulator algorithm for
// sequences whose items span more than one height.
func mergeMixedHeights(items []Node) Node {
	first, second := items[0], items[1]
	for _, item := range items[2:] {
		candAFirst, candASecond := Concat(first, second), item
		candBFirst, candBSecond := first, Concat(second, item)

		diffA := absInt(candAFirst.ListHeight() - candASecond.ListHeight())
		diffB := absInt(candBFirst.ListHeight() - candBSecond.ListHeight())

		if diffA <= diffB {
			first, second = candAFirst, candASecond
		} else {
			first, second = candBFirst, candBSecond
		}
	}
	return Concat(first, second)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func requireList(n Node, op string) {
	if n.Kind() != KindList {
		panic("brackettree: " + op + " called on a non-List node")
	}
}
