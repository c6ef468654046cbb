package fragment

import "regexp"

// Context carries request-scoped values substituted into fragment text.
// Typical keys: destination, complexity, locale, project.
type Context map[string]string

// placeholderPattern matches {{name}} placeholders. Names are identifiers
// (letter or underscore first, then letters, digits, underscores); anything
// else between braces is left alone.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\}\}`)

// Render replaces {{name}} placeholders in text with values from ctx.
// Placeholders with no matching key are left intact, so prose containing
// literal braces never breaks assembly. Pure function.
func Render(text string, ctx Context) string {
	if len(ctx) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := ctx[name]; ok {
			return value
		}
		return match
	})
}

// Placeholders returns the deduplicated placeholder names found in text,
// in order of first appearance.
func Placeholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
