// Package detect derives the example-category signal from a project
// directory.
//
// The assembler treats the category as an opaque key; this package is
// the external collaborator that produces it by probing well-known
// manifest files (go.mod, package.json, Cargo.toml, pyproject.toml).
// Detection never fails: an unrecognized project yields an empty
// category, which the assembler turns into "no examples block".
//
//	category := detect.Category("/path/to/project")  // "go", "", ...
package detect
