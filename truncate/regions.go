package truncate

import (
	"regexp"
	"strings"
)

// FooterHeading is the literal section heading that opens the footer
// region.
const FooterHeading = "## Usage Instructions"

// footerMarker is the structural pattern the footer suffix must start
// with: a blank line, then the footer heading on its own line.
var footerMarker = "\n\n" + FooterHeading + "\n"

// headerPattern matches the header region's fixed prefix: a title line
// (single #), a blank line, one paragraph, a blank line, then the Core
// Principles heading.
//
// Precondition: applied only at the start of the document.
// Postcondition: a match ends just after the Core Principles heading
// line; the region itself extends to the first double-blank-line
// boundary after the match (see headerEnd).
var headerPattern = regexp.MustCompile(`\A# [^\n]*\n\n[^\n]+(?:\n[^\n]+)*\n\n## Core Principles\n`)

// footerStart returns the byte offset where the footer region begins
// (at the blank line preceding the footer heading), or -1 if the
// document has no footer. The earliest match is used so the suffix is
// the longest one matching the pattern.
func footerStart(doc string) int {
	idx := strings.Index(doc, footerMarker)
	if idx < 0 {
		// Footer heading as the final line, without trailing newline.
		if strings.HasSuffix(doc, "\n\n"+FooterHeading) {
			return len(doc) - len("\n\n"+FooterHeading)
		}
		return -1
	}
	return idx
}

// headerEnd returns the byte offset just past the header region, or 0 if
// the document has no header. The region is the fixed prefix matched by
// headerPattern extended to the first double-blank-line boundary ("\n\n\n");
// the boundary's blank line is kept inside the region so the header stays
// separated from whatever follows it. Absent boundary means absent header.
func headerEnd(doc string) int {
	loc := headerPattern.FindStringIndex(doc)
	if loc == nil {
		return 0
	}
	boundary := strings.Index(doc[loc[1]:], "\n\n\n")
	if boundary < 0 {
		return 0
	}
	// Include the first two newlines (one blank line) in the region.
	return loc[1] + boundary + 2
}
