package brackettree

// NodeReader is a positioned cursor over a previous AST, answering "is there
// a reusable node starting exactly here" (§4.4). Query offsets are expected
// to arrive monotonically non-decreasing during a single parse; NodeReader
// exploits that by keeping a descent path from the root and only trimming
// frames the cursor has moved past, rather than re-walking from the root on
// every call.
type NodeReader struct {
	root Node
	path []frame
}

// frame is one step of the descent path: a node together with its absolute
// start offset in the document.
type frame struct {
	node  Node
	start Length
}

// NewNodeReader creates a reader positioned at the start of root.
func NewNodeReader(root Node) *NodeReader {
	return &NodeReader{root: root, path: []frame{{node: root, start: ZeroLength}}}
}

// ReadLongestNodeAt walks from the current descent position toward offset,
// evaluating predicate at every node whose start equals offset, and returns
// the first one for which predicate returns true. Descent continues past a
// false verdict to consider smaller candidates starting at the same offset.
// Returns nil if no node starting exactly at offset satisfies predicate.
func (r *NodeReader) ReadLongestNodeAt(offset Length, predicate func(Node) bool) *Node {
	r.trimTo(offset)

	for {
		top := r.path[len(r.path)-1]
		if Compare(top.start, offset) == 0 && predicate(top.node) {
			found := top.node
			return &found
		}

		child, childStart, ok := firstChildContaining(top.node, top.start, offset)
		if !ok {
			return nil
		}
		r.path = append(r.path, frame{node: child, start: childStart})
	}
}

// trimTo pops descent frames the cursor has moved past now that the query
// offset has advanced, keeping the root frame as a floor.
func (r *NodeReader) trimTo(offset Length) {
	for len(r.path) > 1 {
		top := r.path[len(r.path)-1]
		end := Add(top.start, top.node.Length())
		if LessThanEqual(end, offset) {
			r.path = r.path[:len(r.path)-1]
			continue
		}
		break
	}
}

// firstChildContaining returns the direct child of node (whose absolute
// start is nodeStart) whose span [start, start+length) contains offset,
// along with that child's absolute start. Leaves report no children.
func firstChildContaining(node Node, nodeStart, offset Length) (Node, Length, bool) {
	switch node.Kind() {
	case KindList:
		cur := nodeStart
		for _, item := range node.Items() {
			end := Add(cur, item.Length())
			if LessThanEqual(cur, offset) && LessThan(offset, end) {
				return item, cur, true
			}
			cur = end
		}
		return Node{}, ZeroLength, false

	case KindPair:
		cur := nodeStart
		if child, start, ok := withinSpan(node.Opening(), cur, offset); ok {
			return child, start, true
		}
		cur = Add(cur, node.Opening().Length())
		if c := node.Child(); c != nil {
			if child, start, ok := withinSpan(*c, cur, offset); ok {
				return child, start, true
			}
			cur = Add(cur, c.Length())
		}
		if c := node.Closing(); c != nil {
			if child, start, ok := withinSpan(*c, cur, offset); ok {
				return child, start, true
			}
		}
		return Node{}, ZeroLength, false

	default: // Text, Bracket, InvalidBracket: leaves.
		return Node{}, ZeroLength, false
	}
}

func withinSpan(n Node, start, offset Length) (Node, Length, bool) {
	end := Add(start, n.Length())
	if LessThanEqual(start, offset) && LessThan(offset, end) {
		return n, start, true
	}
	return Node{}, ZeroLength, false
}
