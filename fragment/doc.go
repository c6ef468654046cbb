// Package fragment provides the fragment library backing document assembly.
//
// A Library holds three pools of immutable text fragments:
//
//   - core: exactly one fragment, included in every document
//   - extended: zero or one fragment per destination
//   - examples: zero or one fragment per category
//
// Lookup never fails. A missing extended fragment falls back to the
// "default" destination's fragment, then to absence; a missing example
// fragment is simply absent. Absence is a value, not an error.
//
// # Usage
//
// Build a library directly:
//
//	lib := fragment.NewLibrary(coreText,
//	    map[string]string{"claude": claudeExt, "default": genericExt},
//	    map[string]string{"go": goExamples},
//	)
//	frag, ok := lib.Extended("cursor")  // falls back to "default"
//
// Or load it from a YAML manifest:
//
//	m, err := fragment.LoadManifest("rulekit.yaml")
//	lib := m.Library()
//
// # Placeholders
//
// Fragment text may contain {{name}} placeholders that are filled from a
// request-scoped Context at assembly time. Unknown placeholders are left
// intact so malformed prose never breaks assembly:
//
//	out := fragment.Render("Project {{project}}", fragment.Context{"project": "demo"})
//
// # Watching
//
// Libraries are immutable. To pick up manifest edits, Watch signals when
// the file changes and the caller rebuilds:
//
//	changes, err := fragment.Watch(ctx, "rulekit.yaml")
//	for range changes {
//	    m, _ := fragment.LoadManifest("rulekit.yaml")
//	    lib = m.Library()
//	}
package fragment
