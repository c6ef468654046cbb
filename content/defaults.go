package content

import "github.com/randalmurphal/rulekit/fragment"

// coreText is the core fragment included in every document. Its opening
// structure (title, first paragraph, Core Principles) and its closing
// Usage Instructions section are the regions the truncator preserves.
const coreText = `# {{project}} Assistant Rules

These rules govern how an AI coding assistant works in this repository.
They were generated for the {{destination}} destination; regenerate them
rather than editing by hand.

## Core Principles

- Understand before changing: read the surrounding code and its tests first.
- Make the smallest change that solves the problem.
- Every behavior change ships with a test that fails without it.
- Never commit secrets, credentials, or generated artifacts.


## Workflow

🎯 Restate the task in one sentence before touching any file.

Work in small loops: read, change, test, review. Prefer several small
commits over one large one. When a task turns out bigger than expected,
stop and describe the situation instead of pushing through.

## Implementation Guidelines

- Follow the existing style of each file you touch.
- Keep public interfaces stable unless the task says otherwise.
- Handle errors where they occur; do not swallow them.
- Leave the build green: run the project's test suite before finishing.

## Usage Instructions

Regenerate this file with rulekit whenever the fragment library or the
profile table changes. Pass extra one-off rules as directives on the
command line; they are appended under Additional Directives.`

// extendedTexts are the per-destination extended fragments. The default
// entry backs every destination without one of its own.
var extendedTexts = map[string]string{
	"claude": `## Extended Guidance

🎯 Plan multi-file changes before starting them.

You handle long context well: read whole files rather than fragments,
and keep earlier decisions from this session in mind. When
requirements conflict, say so explicitly instead of guessing.`,

	"cursor": `## Extended Guidance

These rules load into the editor on every completion. Keep suggestions
scoped to the file being edited unless the user asks for a broader
change, and never suggest edits to files outside the workspace.`,

	"copilot": `## Extended Guidance

Suggestions appear inline while typing. Prefer completing the current
statement or function over large rewrites. Match the immediate context
exactly: imports, naming, and formatting.`,

	"windsurf": `## Extended Guidance

This rules file is tightly capped. Every rule above is binding; when in
doubt, ask rather than assume.`,

	"default": `## Extended Guidance

Follow the core principles above. When this tool offers both chat and
inline modes, apply these rules in both.`,
}

// exampleTexts are the per-category worked examples. Categories come
// from the detect package or the caller; there is no fallback entry.
var exampleTexts = map[string]string{
	"go": `## Go Examples

Prefer table-driven tests:

    func TestParse(t *testing.T) {
        tests := []struct {
            name  string
            input string
            want  int
        }{
            {name: "empty", input: "", want: 0},
        }
        for _, tt := range tests {
            t.Run(tt.name, func(t *testing.T) {
                if got := Parse(tt.input); got != tt.want {
                    t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
                }
            })
        }
    }

Return errors with context: fmt.Errorf("read config: %w", err).`,

	"javascript": `## JavaScript Examples

Prefer async/await over promise chains, and narrow catch blocks:

    try {
        const data = await fetchUser(id);
        return render(data);
    } catch (err) {
        if (err instanceof NotFoundError) return renderMissing(id);
        throw err;
    }

Keep modules small and export explicitly; avoid default exports in
shared code.`,

	"python": `## Python Examples

Type-hint public functions and prefer dataclasses for plain records:

    @dataclass
    class Config:
        ceiling: int
        locale: str = "en"

    def load_config(path: Path) -> Config:
        ...

Raise specific exceptions; never use a bare except.`,

	"rust": `## Rust Examples

Propagate errors with ? and keep unwrap out of library code:

    fn read_manifest(path: &Path) -> Result<Manifest, ManifestError> {
        let text = fs::read_to_string(path)?;
        Ok(toml::from_str(&text)?)
    }

Prefer borrowing over cloning; clone only at ownership boundaries.`,
}

// DefaultLibrary returns the built-in fragment library.
func DefaultLibrary() *fragment.Library {
	return fragment.NewLibrary(coreText, extendedTexts, exampleTexts)
}
