package transform

import (
	"regexp"
	"strings"
)

// Step is a pure document rewrite. Steps must be safe to run on any
// text: malformed structure degrades to a documented fallback, never an
// error.
type Step func(string) string

// ObjectiveMarker is the marker token annotated by AnnotateMarkers and
// mapped to [OBJECTIVE] by RemoveSymbols.
const ObjectiveMarker = "🎯"

// structuralHeader matches a document's opening structure: a single-#
// title line, a blank line, one paragraph, and a blank line. The preamble
// is injected immediately after a match.
//
// Precondition: anchored at the start of the document.
// Postcondition: the match ends just past the blank line that closes the
// first paragraph.
var structuralHeader = regexp.MustCompile(`\A# [^\n]*\n\n[^\n]+(?:\n[^\n]+)*\n\n`)

// guidelinesHeading matches a section literally titled
// "Implementation Guidelines" at any heading depth.
var guidelinesHeading = regexp.MustCompile(`(?m)^#{1,6} Implementation Guidelines$`)

// InjectPreamble inserts preamble after the first top-level heading and
// its first paragraph. Documents without that structure get the preamble
// prepended instead; it is never dropped.
func InjectPreamble(preamble string) Step {
	return func(doc string) string {
		block := strings.TrimRight(preamble, "\n") + "\n\n"
		loc := structuralHeader.FindStringIndex(doc)
		if loc == nil {
			return block + doc
		}
		return doc[:loc[1]] + block + doc[loc[1]:]
	}
}

// InsertGuidance places guidance immediately before the Implementation
// Guidelines section, leaving the section itself untouched. Documents
// without that section are returned unchanged.
func InsertGuidance(guidance string) Step {
	return func(doc string) string {
		loc := guidelinesHeading.FindStringIndex(doc)
		if loc == nil {
			return doc
		}
		block := strings.TrimRight(guidance, "\n") + "\n\n"
		return doc[:loc[0]] + block + doc[loc[0]:]
	}
}

// AnnotateMarkers appends annotation directly after every occurrence of
// the marker token.
func AnnotateMarkers(marker, annotation string) Step {
	return func(doc string) string {
		if marker == "" {
			return doc
		}
		return strings.ReplaceAll(doc, marker, marker+annotation)
	}
}

// AppendExamples appends each block to the end of the document,
// separated by blank lines. The append is unconditional; oversize
// results are the truncator's problem, not this step's.
func AppendExamples(blocks []string) Step {
	return func(doc string) string {
		out := strings.TrimRight(doc, "\n")
		for _, block := range blocks {
			out += "\n\n" + strings.TrimRight(block, "\n")
		}
		return out + "\n"
	}
}

// symbolReplacements maps symbol glyphs to bracketed textual
// equivalents. Applied before the broad glyph strip so these keep their
// meaning in plain-text output.
var symbolReplacements = []struct {
	glyph string
	text  string
}{
	{ObjectiveMarker, "[OBJECTIVE]"},
	{"✅", "[DO]"},
	{"🚫", "[DON'T]"},
	{"⚠️", "[WARNING]"},
	{"💡", "[TIP]"},
	{"📝", "[NOTE]"},
}

// RemoveSymbols replaces the fixed glyph map with bracketed equivalents,
// then strips any remaining decorative glyphs (emoji and dingbat
// code-point ranges plus the emoji variation selector).
func RemoveSymbols() Step {
	return func(doc string) string {
		for _, r := range symbolReplacements {
			doc = strings.ReplaceAll(doc, r.glyph, r.text)
		}
		return strings.Map(func(r rune) rune {
			switch {
			case r >= 0x1F300 && r <= 0x1FAFF: // emoji blocks
				return -1
			case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
				return -1
			case r == 0xFE0F: // variation selector-16
				return -1
			}
			return r
		}, doc)
	}
}

var (
	deepHeading = regexp.MustCompile(`(?m)^(#{2,5})# `)
	boldPhrase  = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	checkboxes  = regexp.MustCompile(`(?m)^(\s*)- \[[ xX]\] `)
)

// Simplify flattens structure for destinations that favor minimal
// nesting: headings of level 3 and deeper move up one level, bold
// phrases become "phrase:", and checkbox list markers collapse to plain
// bullets.
func Simplify() Step {
	return func(doc string) string {
		doc = deepHeading.ReplaceAllString(doc, "$1 ")
		doc = boldPhrase.ReplaceAllString(doc, "$1:")
		doc = checkboxes.ReplaceAllString(doc, "$1- ")
		return doc
	}
}
