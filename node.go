package brackettree

import "fmt"

// NodeKind identifies which of the five AST node variants a Node is.
type NodeKind uint8

const (
	// KindText is a leaf covering a run of non-bracket content.
	KindText NodeKind = iota
	// KindBracket is a leaf for one half (opening or closing) of a Pair.
	KindBracket
	// KindInvalidBracket is a leaf for a closer with no matching opener.
	KindInvalidBracket
	// KindPair is a matched (or half-matched) opening/closing bracket pair.
	KindPair
	// KindList is a balancing container of 2 or 3 sibling items.
	KindList
)

// Node is an AST node: a tagged sum of Text, Bracket, InvalidBracket, Pair,
// and List, implemented as a variant struct with an interior interface
// rather than a type hierarchy, per the source design's modeling choice.
// Children are reached through accessors (Items, Child, Opening, Closing),
// never by downcasting data directly.
type Node struct {
	data nodeData
}

// nodeData is implemented by the five concrete variant payloads below.
type nodeData interface {
	kind() NodeKind
	length() Length
	listHeight() int
	canBeReused(expectedClosers CategorySet) bool
	describe() string
}

// --- Text ---

type textData struct {
	len Length
}

func (d textData) kind() NodeKind                          { return KindText }
func (d textData) length() Length                          { return d.len }
func (d textData) listHeight() int                         { return 0 }
func (d textData) canBeReused(_ CategorySet) bool           { return true }
func (d textData) describe() string                        { return fmt.Sprintf("Text(%s)", d.len) }

// NewText creates a Text leaf of the given length.
func NewText(length Length) Node {
	return Node{data: textData{len: length}}
}

// --- Bracket ---

type bracketData struct {
	len      Length
	category int
}

func (d bracketData) kind() NodeKind                { return KindBracket }
func (d bracketData) length() Length                 { return d.len }
func (d bracketData) listHeight() int                { return 0 }
func (d bracketData) canBeReused(_ CategorySet) bool { return false }
func (d bracketData) describe() string {
	return fmt.Sprintf("Bracket(cat=%d, %s)", d.category, d.len)
}

// NewBracket creates a Bracket leaf for the given category and length.
func NewBracket(length Length, category int) Node {
	return Node{data: bracketData{len: length, category: category}}
}

// --- InvalidBracket ---

type invalidBracketData struct {
	len      Length
	category int
}

func (d invalidBracketData) kind() NodeKind                { return KindInvalidBracket }
func (d invalidBracketData) length() Length                 { return d.len }
func (d invalidBracketData) listHeight() int                 { return 0 }
func (d invalidBracketData) canBeReused(_ CategorySet) bool { return false }
func (d invalidBracketData) describe() string {
	return fmt.Sprintf("InvalidBracket(cat=%d, %s)", d.category, d.len)
}

// NewInvalidBracket creates an InvalidBracket leaf: a closer with no
// matching opener at the time it was parsed.
func NewInvalidBracket(length Length, category int) Node {
	return Node{data: invalidBracketData{len: length, category: category}}
}

// --- Pair ---

type pairData struct {
	category int
	opening  Node
	child    *Node
	closing  *Node
	len      Length
}

func (d pairData) kind() NodeKind  { return KindPair }
func (d pairData) length() Length  { return d.len }
func (d pairData) listHeight() int { return 0 }

// canBeReused for a Pair is true only if it has a closing bracket: an
// unclosed opener might acquire a closer on reparse and must not be reused
// verbatim.
func (d pairData) canBeReused(_ CategorySet) bool { return d.closing != nil }
func (d pairData) describe() string {
	closed := d.closing != nil
	return fmt.Sprintf("Pair(cat=%d, closed=%v, %s)", d.category, closed, d.len)
}

// NewPair creates a Pair node. child and closing may be nil (an unclosed
// opener with no content, or an unclosed opener with content). length is
// computed as the monoid-sum of whichever of opening/child/closing are
// present.
func NewPair(category int, opening Node, child *Node, closing *Node) Node {
	total := opening.Length()
	if child != nil {
		total = Add(total, child.Length())
	}
	if closing != nil {
		total = Add(total, closing.Length())
	}
	return Node{data: pairData{
		category: category,
		opening:  opening,
		child:    child,
		closing:  closing,
		len:      total,
	}}
}

// --- List ---

type listData struct {
	items  []Node
	height int
	len    Length
}

func (d listData) kind() NodeKind  { return KindList }
func (d listData) length() Length  { return d.len }
func (d listData) listHeight() int { return d.height }

// canBeReused for a List recurses into the rightmost non-List descendant:
// since the last item of a List is itself a Node whose canBeReused may
// recurse further (if it too is a List), this single call naturally walks
// down to the rightmost leaf/Pair. An empty list is trivially reusable.
func (d listData) canBeReused(expectedClosers CategorySet) bool {
	if len(d.items) == 0 {
		return true
	}
	return d.items[len(d.items)-1].CanBeReused(expectedClosers)
}

func (d listData) describe() string {
	return fmt.Sprintf("List(n=%d, h=%d, %s)", len(d.items), d.height, d.len)
}

// newList creates a List node from items that must all share the same
// listHeight. It does not balance or validate item count — that is the job
// of the (2,3)-tree operations in list.go; this constructor is their
// low-level building block.
func newList(items []Node) Node {
	height := 0
	if len(items) > 0 {
		height = items[0].ListHeight() + 1
	}
	total := ZeroLength
	for _, it := range items {
		total = Add(total, it.Length())
	}
	return Node{data: listData{items: items, height: height, len: total}}
}

// --- Node accessors ---

// Kind returns which variant this node is.
func (n Node) Kind() NodeKind { return n.data.kind() }

// Length returns the node's total length: the monoid-sum of its children's
// lengths, or the leaf's own length.
func (n Node) Length() Length { return n.data.length() }

// ListHeight returns the node's height in the (2,3) tree: 0 for leaves and
// Pairs, and items[0].ListHeight()+1 for a List.
func (n Node) ListHeight() int { return n.data.listHeight() }

// CanBeReused determines whether this previously built subtree remains
// valid in a new parse, per the rules in canBeReused (§4.3). The parser
// passes its current expected-closer set as expectedClosers, but no variant
// inspects it: the result depends only on the node itself.
func (n Node) CanBeReused(expectedClosers CategorySet) bool {
	return n.data.canBeReused(expectedClosers)
}

// Category returns the bracket category for Bracket, InvalidBracket, and
// Pair nodes. Panics for Text and List, which have no category.
func (n Node) Category() int {
	switch d := n.data.(type) {
	case bracketData:
		return d.category
	case invalidBracketData:
		return d.category
	case pairData:
		return d.category
	default:
		panic("brackettree: Category called on a node without one")
	}
}

// Child returns a Pair's enclosed content, or nil if it has none. Panics if
// n is not a Pair.
func (n Node) Child() *Node {
	return n.data.(pairData).child
}

// Opening returns a Pair's opening Bracket leaf. Panics if n is not a Pair.
func (n Node) Opening() Node {
	return n.data.(pairData).opening
}

// Closing returns a Pair's closing Bracket leaf, or nil if unmatched.
// Panics if n is not a Pair.
func (n Node) Closing() *Node {
	return n.data.(pairData).closing
}

// Items returns a List's ordered items. Panics if n is not a List.
func (n Node) Items() []Node {
	return n.data.(listData).items
}

// String implements fmt.Stringer for debugging.
func (n Node) String() string {
	return n.data.describe()
}

// EmptyList is the canonical empty List node, returned by the parser for an
// empty document.
var EmptyList = newList(nil)
