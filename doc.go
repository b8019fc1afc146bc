// Package brackettree provides incremental bracket-pair structure recognition
// for a text editor.
//
// Given a stream of text and bracket tokens (see Tokenizer), it builds a
// balanced (2,3)-tree that pairs matched brackets, flags unmatched closers as
// InvalidBracket leaves, and answers range queries for a decoration layer:
// for any [start, end) window it reports every bracket inside along with its
// nesting depth.
//
// When the host document changes, Document.HandleContentChanged rebuilds the
// tree, reusing as much of the previous tree as falls outside the edited
// regions instead of reparsing the whole document.
//
// The package depends only on a Tokenizer supplied by the host (see the
// internal/inttok package for a reference implementation over an in-memory
// buffer); it knows nothing about strings, comments, or any particular
// programming language beyond the bracket categories a CategoryRegistry
// assigns to rune pairs.
package brackettree
