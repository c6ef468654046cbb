package assemble

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/rulekit/fragment"
	"github.com/randalmurphal/rulekit/profile"
	"github.com/randalmurphal/rulekit/transform"
)

func testRegistry(t *testing.T, ceiling, lineLimit int) *profile.Registry {
	t.Helper()
	reg, err := profile.NewRegistry(
		profile.Profile{
			Destination:     profile.DefaultKey,
			Ceiling:         ceiling,
			LineLimit:       lineLimit,
			Format:          profile.FormatMarkdown,
			SupportsSymbols: true,
			Transform:       profile.TransformGeneric,
		},
	)
	require.NoError(t, err)
	return reg
}

func TestGenerate_NoTruncationNoWarnings(t *testing.T) {
	lib := fragment.NewLibrary("# Rules\n\nShort core.\n", nil, nil)
	gen := NewGenerator(lib, testRegistry(t, 10000, 0))

	res := gen.Generate(Request{})

	assert.Empty(t, res.Warnings)
	assert.Contains(t, res.Document, "Short core.")
	assert.Contains(t, res.Document, transform.GenericPreamble)
}

func TestGenerate_WarningIffTruncated(t *testing.T) {
	big := strings.Repeat("A long paragraph of filler content for the core fragment.\n\n", 100)
	lib := fragment.NewLibrary(big, nil, nil)

	// Small ceiling: truncation occurs, warning names the limit.
	gen := NewGenerator(lib, testRegistry(t, 500, 0))
	res := gen.Generate(Request{})
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "truncated to 500 characters")
	assert.LessOrEqual(t, utf8.RuneCountInString(res.Document), 500)

	// Roomy ceiling: same inputs, no warning, full content.
	gen = NewGenerator(lib, testRegistry(t, 100000, 0))
	res = gen.Generate(Request{})
	assert.Empty(t, res.Warnings)
	assert.Contains(t, res.Document, "filler content")
}

func TestGenerate_LineLimitWarning(t *testing.T) {
	tall := strings.Repeat("short line\n", 100)
	lib := fragment.NewLibrary(tall, nil, nil)
	gen := NewGenerator(lib, testRegistry(t, 100000, 20))

	res := gen.Generate(Request{})

	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "truncated to 20 lines")
	assert.LessOrEqual(t, len(strings.Split(res.Document, "\n")), 20)
}

func TestGenerate_UnknownDestinationMatchesDefault(t *testing.T) {
	lib := fragment.NewLibrary(
		"# Rules\n\nCore paragraph.\n",
		map[string]string{fragment.DefaultDestination: "Extended for everyone."},
		nil,
	)
	gen := NewGenerator(lib, testRegistry(t, 10000, 0))

	unknown := gen.Generate(Request{Destination: "no-such-tool"})
	def := gen.Generate(Request{Destination: profile.DefaultKey})

	assert.Equal(t, def.AppliedSteps, unknown.AppliedSteps)
	assert.Equal(t, def.Warnings, unknown.Warnings)
	// Same structure, same content (no destination placeholders in play).
	assert.Equal(t, def.Document, unknown.Document)
}

func TestGenerate_DetailedAppendixTriggersTruncator(t *testing.T) {
	// The core fills most of the budget; the unconditional appendix
	// pushes past the ceiling and the truncator pulls it back.
	core := "# Rules\n\nIntro paragraph.\n\n" +
		strings.Repeat("Body paragraph with plenty of words in it.\n\n", 30)
	lib := fragment.NewLibrary(core, nil, nil)

	reg, err := profile.NewRegistry(
		profile.Profile{
			Destination:     profile.DefaultKey,
			Ceiling:         1500,
			Format:          profile.FormatMarkdown,
			SupportsSymbols: true,
			Transform:       profile.TransformDetailed,
		},
	)
	require.NoError(t, err)

	gen := NewGenerator(lib, reg)
	res := gen.Generate(Request{})

	assert.LessOrEqual(t, utf8.RuneCountInString(res.Document), 1500)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "truncated")
}

func TestGenerate_TransformOptionsPassThrough(t *testing.T) {
	lib := fragment.NewLibrary("# Rules\n\nCore.\n", nil, nil)
	gen := NewGenerator(lib, testRegistry(t, 10000, 0),
		transform.WithPreamble("> custom install preamble"))

	res := gen.Generate(Request{})
	assert.Contains(t, res.Document, "> custom install preamble")
	assert.NotContains(t, res.Document, transform.GenericPreamble)
}

func TestGenerate_FullDefaultStack(t *testing.T) {
	// End-to-end over the real default registry with a synthetic
	// library: every known destination yields a non-empty document
	// within its profile's limits.
	lib := fragment.NewLibrary(
		"# Project Rules\n\nOpening paragraph.\n\n## Core Principles\n- tested code only\n\n\n"+
			strings.Repeat("General guidance paragraph for all destinations.\n\n", 40)+
			"\n## Usage Instructions\nRegenerate with rulekit after editing fragments.\n",
		map[string]string{
			"claude":  "## Claude Notes\n\n🎯 Use the worked examples below.\n",
			"default": "## General Notes\n\nKeep diffs small.\n",
		},
		map[string]string{"go": "## Go Examples\n\nUse table-driven tests.\n"},
	)
	reg := profile.DefaultRegistry()
	gen := NewGenerator(lib, reg)

	for _, dest := range reg.Available() {
		res := gen.Generate(Request{Destination: dest, Category: "go"})
		prof := reg.Resolve(dest)

		assert.NotEmpty(t, res.Document, dest)
		assert.Equal(t, StepCore, res.AppliedSteps[0], dest)
		assert.LessOrEqual(t, utf8.RuneCountInString(res.Document), prof.Ceiling, dest)
		if prof.LineLimit > 0 {
			assert.LessOrEqual(t, len(strings.Split(res.Document, "\n")), prof.LineLimit, dest)
		}
		if !prof.SupportsSymbols {
			assert.NotContains(t, res.Document, "🎯", dest)
		}
	}
}

func TestGenerator_Accessors(t *testing.T) {
	lib := fragment.NewLibrary("core", nil, nil)
	reg := testRegistry(t, 100, 0)
	gen := NewGenerator(lib, reg)

	assert.Same(t, lib, gen.Library())
	assert.Same(t, reg, gen.Registry())
}
