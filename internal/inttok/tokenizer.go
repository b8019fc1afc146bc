package inttok

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/textstruct/brackettree"
)

// maxTextRunClusters bounds how many grapheme clusters a single coalesced
// Text token may span, so one very long unbroken run of plain text doesn't
// force the parser to materialize it as one oversized leaf. This is the
// source design's read-budget decision: 1000 clusters, well past anything a
// single editor line is likely to hold.
const maxTextRunClusters = 1000

// Tokenizer lexes a fixed string into brackettree.Tokens, classifying
// bracket runes through a CategoryRegistry and coalescing everything else
// into bounded Text runs.
type Tokenizer struct {
	sc       *scanner
	registry *brackettree.CategoryRegistry
	offset   brackettree.Length
	total    brackettree.Length
}

// New returns a Tokenizer over text, classifying brackets with registry.
func New(text string, registry *brackettree.CategoryRegistry) *Tokenizer {
	return &Tokenizer{
		sc:       newScanner(text),
		registry: registry,
		total:    brackettree.LengthOfString(text),
	}
}

func (t *Tokenizer) Offset() brackettree.Length      { return t.offset }
func (t *Tokenizer) TotalLength() brackettree.Length { return t.total }
func (t *Tokenizer) GetText() string                 { return t.sc.String() }

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() (brackettree.Token, bool) {
	tok, _, ok := t.lex()
	return tok, ok
}

// Read returns and consumes the next token.
func (t *Tokenizer) Read() (brackettree.Token, bool) {
	tok, size, ok := t.lex()
	if !ok {
		return tok, false
	}
	t.sc.Advance(size)
	t.offset = brackettree.Add(t.offset, tok.Length)
	return tok, true
}

// lex classifies the token starting at the scanner's current position
// without consuming it, returning the token, its size in bytes, and
// whether a token exists (false at end of input).
func (t *Tokenizer) lex() (brackettree.Token, int, bool) {
	text := t.sc.String()
	cursor := t.sc.Cursor()
	if cursor >= len(text) {
		return brackettree.Token{}, 0, false
	}

	r, size := utf8.DecodeRuneInString(text[cursor:])
	if cat, isOpener, ok := t.registry.Classify(r); ok {
		kind := brackettree.ClosingBracket
		if isOpener {
			kind = brackettree.OpeningBracket
		}
		length := brackettree.LengthOfString(text[cursor : cursor+size])
		return brackettree.Token{Length: length, Kind: kind, Category: cat}, size, true
	}

	end := cursor
	clusters := 0
	for end < len(text) && clusters < maxTextRunClusters {
		cluster, ok := nextCluster(text[end:])
		if !ok {
			break
		}
		rr, _ := utf8.DecodeRuneInString(cluster)
		if _, _, ok := t.registry.Classify(rr); ok {
			break
		}
		end += len(cluster)
		clusters++
	}
	run := text[cursor:end]
	return brackettree.Token{Length: brackettree.LengthOfString(run), Kind: brackettree.Text, Category: brackettree.NoCategory}, len(run), true
}

// Skip advances the tokenizer by length, which may split what lex would
// otherwise have coalesced into a single Text token. It walks the text
// grapheme cluster by cluster, mirroring LengthOfString's own accounting,
// so the resulting offset matches what length claims to measure exactly.
func (t *Tokenizer) Skip(length brackettree.Length) {
	if length.IsZero() {
		return
	}
	text := t.sc.String()
	pos := t.sc.Cursor()
	consumed := brackettree.ZeroLength

	for brackettree.LessThan(consumed, length) && pos < len(text) {
		cluster, ok := nextCluster(text[pos:])
		if !ok {
			break
		}
		r, _ := utf8.DecodeRuneInString(cluster)
		if brackettree.IsNewline(r) {
			consumed = brackettree.NewLength(consumed.LineDelta()+1, 0)
		} else {
			consumed = brackettree.NewLength(consumed.LineDelta(), consumed.ColumnDelta()+1)
		}
		pos += len(cluster)
	}

	t.sc.Jump(pos)
	t.offset = brackettree.Add(t.offset, consumed)
}

func nextCluster(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	gr := uniseg.NewGraphemes(text)
	if !gr.Next() {
		return "", false
	}
	return gr.Str(), true
}
