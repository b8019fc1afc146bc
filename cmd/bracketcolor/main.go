// Command bracketcolor is a small demonstration front end for brackettree.
//
// Usage:
//
//	bracketcolor show [-config categories.toml] <file>
//	bracketcolor replay [-config categories.toml] <script.yaml>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/textstruct/brackettree"
	"github.com/textstruct/brackettree/internal/inttok"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "show":
		err = runShow(os.Args[2:])
	case "replay":
		err = runReplay(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`bracketcolor - demonstrates incremental bracket-pair recognition

Usage:
  bracketcolor show [-config categories.toml] <file>
  bracketcolor replay [-config categories.toml] <script.yaml>

Commands:
  show     Parse a file once and print every bracket found, with its range
           and depth
  replay   Replay a sequence of edits from a YAML script, reparsing
           incrementally, and print the brackets found after each step`)
}

func loadRegistry(configPath string) (*brackettree.CategoryRegistry, error) {
	if configPath == "" {
		return brackettree.DefaultCategoryRegistry(), nil
	}
	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("opening category config: %w", err)
	}
	defer f.Close()
	return brackettree.LoadCategoryRegistryTOML(f)
}

func runShow(args []string) error {
	fs := newFlagSet("show")
	config := fs.String("config", "", "path to a TOML category config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}

	registry, err := loadRegistry(*config)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	tok := inttok.New(string(data), registry)
	doc := brackettree.NewDocument(tok, registry, nil)
	printMatches(doc)
	return nil
}

func runReplay(args []string) error {
	fs := newFlagSet("replay")
	config := fs.String("config", "", "path to a TOML category config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing script file")
	}

	registry, err := loadRegistry(*config)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	sc, err := parseScript(data)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}

	tok := inttok.New(sc.Initial, registry)
	doc := brackettree.NewDocument(tok, registry, nil)
	fmt.Println("=== initial ===")
	printMatches(doc)

	for i, step := range sc.Steps {
		edits := make([]brackettree.TextEdit, 0, len(step.Edits))
		for _, e := range step.Edits {
			edits = append(edits, brackettree.TextEdit{
				OldStart:  brackettree.NewLength(e.OldStart[0], e.OldStart[1]),
				OldEnd:    brackettree.NewLength(e.OldEnd[0], e.OldEnd[1]),
				NewLength: brackettree.LengthOfString(e.NewText),
			})
		}
		newTok := inttok.New(step.Text, registry)
		doc.HandleContentChanged(newTok, edits)
		fmt.Printf("=== step %d ===\n", i+1)
		printMatches(doc)
	}
	return nil
}

func printMatches(doc *brackettree.Document) {
	matches := doc.GetBracketsInRange(brackettree.ZeroLength, doc.TotalLength())
	for _, m := range matches {
		fmt.Printf("%s%s..%s\n", strings.Repeat("  ", m.Depth), m.Range.Start, m.Range.End)
	}
}
