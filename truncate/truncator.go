package truncate

import (
	"strings"
	"unicode/utf8"
)

// Marker is inserted where content was removed by the ceiling pass.
const Marker = "\n\n...[content truncated]...\n\n"

// MarkerLine is the single-line marker appended by the line pass.
const MarkerLine = "...[content truncated]..."

// FooterShareLimit is the minimum share of the document that must remain
// available for content after reserving the footer and marker; below it
// the footer is abandoned and simple truncation runs instead.
const FooterShareLimit = 0.3

// SnapThreshold is how far into the cut span a paragraph break must lie
// for the cut to snap back to it. Breaks earlier than 80% of the span
// would discard too much content.
const SnapThreshold = 0.8

// Shrink enforces the character ceiling and then the line limit. A line
// limit of 0 disables the line pass. The returned flags report which
// pass actually removed content.
func Shrink(doc string, ceiling, lineLimit int) (out string, charTruncated, lineTruncated bool) {
	out, charTruncated = ToCeiling(doc, ceiling)
	out, lineTruncated = ToLineLimit(out, lineLimit)
	return out, charTruncated, lineTruncated
}

// ToCeiling truncates doc to at most ceiling characters (runes),
// preferentially preserving the header and footer regions. Returns the
// document unchanged when it already fits.
func ToCeiling(doc string, ceiling int) (string, bool) {
	total := utf8.RuneCountInString(doc)
	if total <= ceiling {
		return doc, false
	}
	if ceiling <= 0 {
		return "", true
	}

	markerLen := utf8.RuneCountInString(Marker)

	fStart := footerStart(doc)
	footer := ""
	if fStart >= 0 {
		footer = doc[fStart:]
	}
	footerLen := utf8.RuneCountInString(footer)

	// Budget left for header and middle once marker and footer are
	// reserved. If the footer would eat too much of it, drop the footer
	// and fall back to a plain end cut.
	available := ceiling - markerLen - footerLen
	if float64(available) < FooterShareLimit*float64(total) {
		return simpleTruncate(doc, ceiling), true
	}

	hEnd := headerEnd(doc)
	if fStart >= 0 && hEnd >= fStart {
		// Degenerate document where the regions overlap.
		return simpleTruncate(doc, ceiling), true
	}
	header := doc[:hEnd]
	mainAvail := available - utf8.RuneCountInString(header)
	if mainAvail <= 0 {
		return simpleTruncate(doc, ceiling), true
	}

	middleEnd := len(doc)
	if fStart >= 0 {
		middleEnd = fStart
	}
	middle := []rune(doc[hEnd:middleEnd])
	if len(middle) > mainAvail {
		middle = snapParagraph(middle[:mainAvail])
	}

	return header + string(middle) + Marker + footer, true
}

// ToLineLimit truncates doc to at most lineLimit lines, keeping the
// first lineLimit-2 and appending a blank line plus the marker line.
// A lineLimit of 0 disables the pass.
func ToLineLimit(doc string, lineLimit int) (string, bool) {
	if lineLimit <= 0 {
		return doc, false
	}
	lines := strings.Split(doc, "\n")
	if len(lines) <= lineLimit {
		return doc, false
	}
	keep := lineLimit - 2
	if keep < 0 {
		keep = 0
	}
	return strings.Join(lines[:keep], "\n") + "\n\n" + MarkerLine, true
}

// simpleTruncate cuts doc at ceiling minus the marker, snapping back to
// the nearest late paragraph break, and appends the marker. The footer
// is not preserved in this branch.
func simpleTruncate(doc string, ceiling int) string {
	markerLen := utf8.RuneCountInString(Marker)
	cut := ceiling - markerLen
	if cut <= 0 {
		// No room for content at all; emit as much of the marker as fits.
		marker := []rune(Marker)
		if ceiling < len(marker) {
			marker = marker[:ceiling]
		}
		return string(marker)
	}

	runes := []rune(doc)
	kept := snapParagraph(runes[:cut])
	return string(kept) + Marker
}

// snapParagraph trims span back to its last paragraph break (double
// newline) when that break lies past SnapThreshold of the span. Breaks
// earlier than that are ignored so the cut keeps most of its budget.
func snapParagraph(span []rune) []rune {
	s := string(span)
	idx := strings.LastIndex(s, "\n\n")
	if idx < 0 {
		return span
	}
	runeIdx := utf8.RuneCountInString(s[:idx])
	if float64(runeIdx) <= SnapThreshold*float64(len(span)) {
		return span
	}
	return span[:runeIdx]
}
