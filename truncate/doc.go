// Package truncate shrinks assembled documents to destination limits.
//
// The primary entry point is Shrink, which enforces a character ceiling
// and an optional line limit while preferentially preserving a document's
// header region (title, opening paragraph, Core Principles section) and
// footer region (the Usage Instructions section):
//
//	out, truncated := truncate.Shrink(doc, 8000, 0)
//
// # Ceiling algorithm
//
// When the document exceeds the ceiling, the footer region is located
// first. If preserving it would leave less than 30% of the document's
// length for content (FooterShareLimit), a simple end truncation runs
// instead: cut at ceiling minus marker, snap back to the nearest
// paragraph break when it lies within the last 20% of the cut
// (SnapThreshold), append the marker. Otherwise the header region is
// preserved verbatim, the middle is cut to the remaining budget with the
// same paragraph snap, and the result is header + middle + marker +
// footer.
//
// The output never exceeds the ceiling; it may be shorter when a
// paragraph snap discards a partial paragraph. Lengths are counted in
// runes, so multi-byte text is never split.
//
// # Line limit
//
// The line pass runs after the ceiling pass and keeps the first
// lineLimit-2 lines, then appends a blank line and the marker line.
//
// # Convenience Functions
//
// For one-off trimming outside the document pipeline:
//
//	result := truncate.ToLines(text, 50)    // Truncate to 50 lines
//	result := truncate.ToLength(text, 500)  // Truncate to 500 characters
package truncate
