package brackettree

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// CategoryRegistry assigns a stable integer category to each bracket family
// a host cares about, keyed by the family's opener and closer rune. The
// parser and the rest of the core never see runes at all — Tokenizer
// implementations consult a registry once, at lex time, and hand the
// resulting Category down through Token.
type CategoryRegistry struct {
	names   map[int]string
	openers map[rune]int
	closers map[rune]int
	next    int
}

// NewCategoryRegistry returns a registry with no categories registered.
func NewCategoryRegistry() *CategoryRegistry {
	return &CategoryRegistry{
		names:   make(map[int]string),
		openers: make(map[rune]int),
		closers: make(map[rune]int),
		next:    1,
	}
}

// DefaultCategoryRegistry returns a registry seeded with the three bracket
// families most text ever uses: square, round, and curly.
func DefaultCategoryRegistry() *CategoryRegistry {
	r := NewCategoryRegistry()
	for _, b := range []struct{ name string; open, close rune }{
		{"square", '[', ']'},
		{"round", '(', ')'},
		{"curly", '{', '}'},
	} {
		if err := r.Register(b.name, b.open, b.close); err != nil {
			panic("brackettree: default category registry is internally inconsistent: " + err.Error())
		}
	}
	return r
}

// Register adds a bracket family identified by name, with the given opener
// and closer runes. The family receives the next unused category id (the
// first family registered gets 1); Classify reports it. It is an error for opener
// or closer to already be registered as either an opener or a closer of any
// family, or for opener and closer to be the same rune.
func (r *CategoryRegistry) Register(name string, opener, closer rune) error {
	if opener == closer {
		return fmt.Errorf("brackettree: category %q: opener and closer must differ", name)
	}
	for _, c := range []rune{opener, closer} {
		if _, used := r.openers[c]; used {
			return fmt.Errorf("brackettree: category %q: rune %q (%s) already registered", name, c, DescribeRune(c))
		}
		if _, used := r.closers[c]; used {
			return fmt.Errorf("brackettree: category %q: rune %q (%s) already registered", name, c, DescribeRune(c))
		}
	}
	cat := r.next
	r.next++
	r.names[cat] = name
	r.openers[opener] = cat
	r.closers[closer] = cat
	return nil
}

// categoryOf returns the category that opener and closer are jointly
// registered under, if the exact same pair already names one. Used by
// LoadCategoryRegistryTOML to recognize a file entry that re-describes an
// existing family (e.g. to rename it) rather than one that collides with a
// different family or introduces a new one.
func (r *CategoryRegistry) categoryOf(opener, closer rune) (int, bool) {
	catOpener, openerOK := r.openers[opener]
	catCloser, closerOK := r.closers[closer]
	if openerOK && closerOK && catOpener == catCloser {
		return catOpener, true
	}
	return 0, false
}

// Classify reports whether c is a registered opener or closer, and if so,
// its category and which side it is.
func (r *CategoryRegistry) Classify(c rune) (category int, isOpener bool, ok bool) {
	if cat, found := r.openers[c]; found {
		return cat, true, true
	}
	if cat, found := r.closers[c]; found {
		return cat, false, true
	}
	return 0, false, false
}

// Name returns the registered name for category, or "" if it is unknown.
func (r *CategoryRegistry) Name(category int) string {
	return r.names[category]
}

// categoryFile is the shape LoadCategoryRegistryTOML decodes, one [[category]]
// table per bracket family.
type categoryFile struct {
	Category []struct {
		Name   string `toml:"name"`
		Opener string `toml:"opener"`
		Closer string `toml:"closer"`
	} `toml:"category"`
}

// LoadCategoryRegistryTOML builds a CategoryRegistry from a TOML document of
// the form:
//
//	[[category]]
//	name = "square"
//	opener = "["
//	closer = "]"
//
// The result is seeded with DefaultCategoryRegistry's three families and
// then overlaid with the file's entries: an entry naming the exact
// opener/closer pair of an existing family renames it in place, and any
// other entry registers a new family. A file entry whose opener or closer
// collides with a *different* family's rune is a decode-time error, same as
// a direct Register conflict.
//
// Errors are returned, not panicked: malformed host configuration is an
// ordinary, recoverable failure, unlike the programmer-error panics
// elsewhere in this package.
func LoadCategoryRegistryTOML(r io.Reader) (*CategoryRegistry, error) {
	var file categoryFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("brackettree: decoding category config: %w", err)
	}

	reg := DefaultCategoryRegistry()
	for _, c := range file.Category {
		opener, err := singleRune(c.Opener)
		if err != nil {
			return nil, fmt.Errorf("brackettree: category %q: opener: %w", c.Name, err)
		}
		closer, err := singleRune(c.Closer)
		if err != nil {
			return nil, fmt.Errorf("brackettree: category %q: closer: %w", c.Name, err)
		}
		if cat, ok := reg.categoryOf(opener, closer); ok {
			reg.names[cat] = c.Name
			continue
		}
		if err := reg.Register(c.Name, opener, closer); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%q is not exactly one character", s)
	}
	return r, nil
}
