package brackettree

// Document is the façade a host embeds: it owns the current AST and the
// bookkeeping needed to reparse incrementally as edits come in, so the host
// never touches NodeReader, EditMapper, or Parser directly.
type Document struct {
	root        Node
	totalLength Length
	registry    *CategoryRegistry
	logger      Logger
}

// NewDocument parses tok from scratch and returns a Document tracking its
// result. registry and logger may be nil, in which case DefaultCategoryRegistry
// and a no-op logger are used.
func NewDocument(tok Tokenizer, registry *CategoryRegistry, logger Logger) *Document {
	if registry == nil {
		registry = DefaultCategoryRegistry()
	}
	if logger == nil {
		logger = noopLogger{}
	}
	return &Document{
		root:        ParseDocument(tok),
		totalLength: tok.TotalLength(),
		registry:    registry,
		logger:      logger,
	}
}

// HandleContentChanged reparses the document after edits have been applied.
// tok must read the document's new, post-edit content; edits describes what
// changed, in the previous document's coordinates, supplied right-to-left
// (descending OldStart, per EditMapper). Subtrees of the previous AST that
// edits left untouched are reused rather than reparsed.
func (d *Document) HandleContentChanged(tok Tokenizer, edits []TextEdit) {
	mapper := NewEditMapper(d.totalLength, edits)
	newRoot := ReparseDocument(tok, d.root, mapper)
	d.logger.Debug("document reparsed", "previousLength", d.totalLength, "newLength", tok.TotalLength(), "editCount", len(edits))
	d.root = newRoot
	d.totalLength = tok.TotalLength()
}

// GetBracketsInRange returns every bracket in [start, end) of the current
// document, with nesting depth.
func (d *Document) GetBracketsInRange(start, end Length) []BracketMatch {
	return GetBracketsInRange(d.root, start, end)
}

// Root returns the document's current AST.
func (d *Document) Root() Node {
	return d.root
}

// TotalLength returns the document's current total length.
func (d *Document) TotalLength() Length {
	return d.totalLength
}

// Registry returns the CategoryRegistry this document classifies brackets
// with, so a host can look up a bracket's family name when rendering.
func (d *Document) Registry() *CategoryRegistry {
	return d.registry
}
