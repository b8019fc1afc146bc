package brackettree

// Parser runs a single recursive-descent pass over a Tokenizer, optionally
// reusing unmodified subtrees of a previous AST via a NodeReader and an
// EditMapper (§4.6). Both are nil for a from-scratch parse.
type Parser struct {
	tok    Tokenizer
	reader *NodeReader
	mapper *EditMapper
}

// NewParser builds a Parser. reader and mapper may both be nil to force a
// full parse with no reuse.
func NewParser(tok Tokenizer, reader *NodeReader, mapper *EditMapper) *Parser {
	return &Parser{tok: tok, reader: reader, mapper: mapper}
}

// ParseDocument parses tok from scratch, with no previous AST to draw on.
func ParseDocument(tok Tokenizer) Node {
	return NewParser(tok, nil, nil).ParseDocument()
}

// ReparseDocument parses tok, reusing subtrees of previous wherever mapper
// shows the content at that position is unaffected by the edit.
func ReparseDocument(tok Tokenizer, previous Node, mapper *EditMapper) Node {
	return NewParser(tok, NewNodeReader(previous), mapper).ParseDocument()
}

// ParseDocument runs the parser over the whole document: a top-level list
// with no owning bracket and nothing in its expected-closer set, so every
// closer encountered at depth zero is unmatched.
func (p *Parser) ParseDocument() Node {
	items, _ := p.parseList(0, false, EmptyCategorySet)
	return items
}

// parseList parses a run of sibling items until it hits a closer that
// terminates this list, or end of input, then balances them into a (2,3)-tree
// via MergeTrees. If hasOwner is true, a closer whose category equals
// ownCategory is consumed and returned as this list's closing bracket. A
// closer whose category is merely present in expectedClosers (inherited
// from an enclosing list, per the non-stack matching policy in §4.6) is left
// unconsumed for that ancestor to claim. Any other closer has no opener in
// scope at all and becomes an InvalidBracket leaf folded into this list.
//
// Items accumulate in a plain slice rather than through repeated Append
// calls: siblings reused whole from the previous AST may be tall subtrees
// sitting next to freshly parsed height-0 leaves, and MergeTrees (not
// Append, which expects an already well-formed list) is what balances a
// sequence of mixed-height items into one tree.
func (p *Parser) parseList(ownCategory int, hasOwner bool, expectedClosers CategorySet) (Node, *Node) {
	var items []Node

	for {
		tok, ok := p.tok.Peek()
		if !ok {
			return MergeTrees(items), nil
		}

		if tok.Kind == ClosingBracket {
			if hasOwner && tok.Category == ownCategory {
				p.tok.Read()
				closing := NewBracket(tok.Length, tok.Category)
				return MergeTrees(items), &closing
			}
			if expectedClosers.Contains(tok.Category) {
				return MergeTrees(items), nil
			}
			p.tok.Read()
			items = append(items, NewInvalidBracket(tok.Length, tok.Category))
			continue
		}

		if reused, ok := p.tryReuse(expectedClosers); ok {
			items = append(items, reused)
			continue
		}

		items = append(items, p.parseChild(expectedClosers))
	}
}

// parseChild consumes exactly one fresh Text or OpeningBracket token and
// returns the node it produces. The caller (parseList) has already peeked
// and ruled out ClosingBracket and end-of-input, and has already tried and
// failed to reuse a previous subtree here.
func (p *Parser) parseChild(expectedClosers CategorySet) Node {
	tok, ok := p.tok.Read()
	if !ok {
		panic("brackettree: parseChild called at end of input")
	}

	switch tok.Kind {
	case Text:
		return NewText(tok.Length)

	case OpeningBracket:
		opening := NewBracket(tok.Length, tok.Category)
		content, closing := p.parseList(tok.Category, true, expectedClosers.Add(tok.Category))
		var child *Node
		// MergeTrees collapses a single item down to a bare node, so an
		// empty list is the only shape that means "no content" here.
		if content.Kind() != KindList || len(content.Items()) > 0 {
			child = &content
		}
		return NewPair(tok.Category, opening, child, closing)

	default:
		panic("brackettree: parseChild encountered an unexpected token kind: " + tok.Kind.String())
	}
}

// tryReuse attempts to reuse a node from the previous AST starting at the
// tokenizer's current offset. It fails closed: any ambiguity (no previous
// tree, offset inside an edited region, candidate would overrun the next
// edit) is treated as "no reuse" rather than risking a stale subtree.
func (p *Parser) tryReuse(expectedClosers CategorySet) (Node, bool) {
	if p.reader == nil || p.mapper == nil {
		return Node{}, false
	}

	newOffset := p.tok.Offset()
	oldOffset, ok := p.mapper.GetOffsetBeforeChange(newOffset)
	if !ok {
		return Node{}, false
	}

	maxReuse := p.mapper.GetDistanceToNextChange(newOffset)
	if maxReuse.IsZero() {
		return Node{}, false
	}

	node := p.reader.ReadLongestNodeAt(oldOffset, func(n Node) bool {
		if LessThan(maxReuse, n.Length()) {
			return false
		}
		return n.CanBeReused(expectedClosers)
	})
	if node == nil {
		return Node{}, false
	}

	p.tok.Skip(node.Length())
	return *node, true
}
