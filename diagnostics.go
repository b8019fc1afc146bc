package brackettree

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// DumpTokens lexes tok to completion and renders one line per token, for
// inspecting what a Tokenizer implementation actually produces.
func DumpTokens(tok Tokenizer) string {
	var b strings.Builder
	for {
		t, ok := tok.Read()
		if !ok {
			break
		}
		fmt.Fprintf(&b, "%-14s cat=%-3d len=%s\n", t.Kind, t.Category, t.Length)
	}
	return b.String()
}

// DescribeRune names a rune with its Unicode code point name, for error
// messages raised when a CategoryRegistry rejects an opener or closer a host
// configured. Returns "" if r has no assigned name.
func DescribeRune(r rune) string {
	return runenames.Name(r)
}
