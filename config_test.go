package brackettree

import (
	"strings"
	"testing"
)

func TestDefaultCategoryRegistryClassifiesTheThreeFamilies(t *testing.T) {
	reg := DefaultCategoryRegistry()
	for _, tc := range []struct {
		r        rune
		isOpener bool
		name     string
	}{
		{'[', true, "square"},
		{']', false, "square"},
		{'(', true, "round"},
		{')', false, "round"},
		{'{', true, "curly"},
		{'}', false, "curly"},
	} {
		cat, isOpener, ok := reg.Classify(tc.r)
		if !ok {
			t.Fatalf("Classify(%q) not found", tc.r)
		}
		if isOpener != tc.isOpener {
			t.Errorf("Classify(%q) isOpener = %v, want %v", tc.r, isOpener, tc.isOpener)
		}
		if got := reg.Name(cat); got != tc.name {
			t.Errorf("Name(Classify(%q)) = %q, want %q", tc.r, got, tc.name)
		}
	}
}

func TestRegisterRejectsDuplicateRune(t *testing.T) {
	reg := DefaultCategoryRegistry()
	if err := reg.Register("parens-again", '(', '>'); err == nil {
		t.Error("expected an error registering an opener already claimed by another family")
	}
	if err := reg.Register("weird", '<', ')'); err == nil {
		t.Error("expected an error registering a closer already claimed by another family")
	}
}

func TestRegisterRejectsSameOpenerAndCloser(t *testing.T) {
	reg := NewCategoryRegistry()
	if err := reg.Register("pipes", '|', '|'); err == nil {
		t.Error("expected an error when opener and closer are the same rune")
	}
}

func TestLoadCategoryRegistryTOMLSeedsDefaultsWhenEmpty(t *testing.T) {
	reg, err := LoadCategoryRegistryTOML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadCategoryRegistryTOML(empty) error: %v", err)
	}
	for _, r := range []rune{'[', ']', '(', ')', '{', '}'} {
		if _, _, ok := reg.Classify(r); !ok {
			t.Errorf("Classify(%q) = not found, want a default family present", r)
		}
	}
}

func TestLoadCategoryRegistryTOMLAddsNewCategory(t *testing.T) {
	doc := `
[[category]]
name = "angle"
opener = "<"
closer = ">"
`
	reg, err := LoadCategoryRegistryTOML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadCategoryRegistryTOML error: %v", err)
	}

	// The three defaults are still present.
	for _, r := range []rune{'[', '(', '{'} {
		if _, _, ok := reg.Classify(r); !ok {
			t.Errorf("Classify(%q) = not found, want a default family retained", r)
		}
	}

	cat, isOpener, ok := reg.Classify('<')
	if !ok || !isOpener {
		t.Fatalf("Classify('<') = (%d, %v, %v), want a new opener category", cat, isOpener, ok)
	}
	if got := reg.Name(cat); got != "angle" {
		t.Errorf("Name(angle category) = %q, want \"angle\"", got)
	}
	closeCat, isOpener, ok := reg.Classify('>')
	if !ok || isOpener || closeCat != cat {
		t.Fatalf("Classify('>') = (%d, %v, %v), want closer of category %d", closeCat, isOpener, ok, cat)
	}
}

func TestLoadCategoryRegistryTOMLOverridesDefaultName(t *testing.T) {
	doc := `
[[category]]
name = "parens"
opener = "("
closer = ")"
`
	reg, err := LoadCategoryRegistryTOML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadCategoryRegistryTOML error: %v", err)
	}

	cat, _, ok := reg.Classify('(')
	if !ok {
		t.Fatal("Classify('(') not found")
	}
	if got := reg.Name(cat); got != "parens" {
		t.Errorf("Name(round category) = %q, want the overridden name \"parens\"", got)
	}

	// Overriding a default's name must not disturb the other two defaults,
	// and the round category's closer must still classify to the same
	// (renamed) category rather than becoming a separate family.
	squareCat, _, ok := reg.Classify('[')
	if !ok || reg.Name(squareCat) != "square" {
		t.Errorf("square family disturbed by an unrelated override: %q", reg.Name(squareCat))
	}
	closeCat, isOpener, ok := reg.Classify(')')
	if !ok || isOpener || closeCat != cat {
		t.Errorf("Classify(')') = (%d, %v, %v), want closer of the renamed category %d", closeCat, isOpener, ok, cat)
	}
}

func TestLoadCategoryRegistryTOMLConflictingRuneIsError(t *testing.T) {
	doc := `
[[category]]
name = "bogus"
opener = "("
closer = ">"
`
	if _, err := LoadCategoryRegistryTOML(strings.NewReader(doc)); err == nil {
		t.Error("expected an error: '(' already belongs to the default round family")
	}
}

func TestLoadCategoryRegistryTOMLRejectsMultiCharacterRune(t *testing.T) {
	doc := `
[[category]]
name = "bad"
opener = "<<"
closer = ">"
`
	if _, err := LoadCategoryRegistryTOML(strings.NewReader(doc)); err == nil {
		t.Error("expected an error: opener is not exactly one character")
	}
}

func TestLoadCategoryRegistryTOMLRejectsMalformedTOML(t *testing.T) {
	if _, err := LoadCategoryRegistryTOML(strings.NewReader("not = [valid")); err == nil {
		t.Error("expected a decode error for malformed TOML")
	}
}
