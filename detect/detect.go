package detect

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Known category keys, matching the built-in example pool.
const (
	CategoryGo         = "go"
	CategoryJavaScript = "javascript"
	CategoryPython     = "python"
	CategoryRust       = "rust"
)

// Category returns the example category for the project rooted at dir,
// or "" when no manifest is recognized. Probes run in a fixed order so
// polyglot repositories resolve deterministically; the first hit wins.
func Category(dir string) string {
	probes := []struct {
		category string
		detect   func(string) bool
	}{
		{CategoryGo, hasGoModule},
		{CategoryRust, hasCargoPackage},
		{CategoryJavaScript, hasPackageJSON},
		{CategoryPython, hasPyProject},
	}
	for _, p := range probes {
		if p.detect(dir) {
			return p.category
		}
	}
	return ""
}

// hasGoModule reports a go.mod with a module directive.
func hasGoModule(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return false
	}
	return len(data) > 0
}

// hasCargoPackage reports a Cargo.toml declaring a package or workspace.
func hasCargoPackage(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		return false
	}
	var manifest struct {
		Package   map[string]any `toml:"package"`
		Workspace map[string]any `toml:"workspace"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return false
	}
	return manifest.Package != nil || manifest.Workspace != nil
}

// hasPackageJSON reports a parseable package.json.
func hasPackageJSON(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return false
	}
	var manifest map[string]any
	return json.Unmarshal(data, &manifest) == nil
}

// hasPyProject reports a pyproject.toml, or falls back to presence of
// requirements.txt or setup.py.
func hasPyProject(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err == nil {
		var manifest map[string]any
		if toml.Unmarshal(data, &manifest) == nil {
			return true
		}
	}
	for _, name := range []string{"requirements.txt", "setup.py"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
