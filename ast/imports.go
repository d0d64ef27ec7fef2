package ast

import "github.com/ParapluOU/whale-schema/location"

// ImportDecl is one of WHAS's four import forms:
//
//	import "./path.whas"               (wildcard, implicit)
//	import "./path.whas" { A, B }      (selective, path-first)
//	import * from "./path.whas"        (wildcard, explicit)
//	import { A } from "./path.whas"    (selective, selector-first)
//
// Path may contain glob metacharacters; expanding it into concrete source
// files is the loader's job, not the parser's, since that expansion is
// filesystem-dependent.
//
// Selector is nil for the two wildcard forms, which pull in every
// top-level declaration from the target file(s). Wildcard distinguishes
// the explicit `import * from` spelling from plain `import "path"`; both
// have identical meaning, but the ast layer preserves which was written.
type ImportDecl struct {
	Path     string
	PathSpan location.Span
	Wildcard bool
	Selector *ImportSelector
	Span     location.Span
}

// IsGlob reports whether Path contains glob metacharacters (`*`, `?`,
// `[...]`), meaning it resolves to zero or more files rather than exactly
// one.
func (i *ImportDecl) IsGlob() bool {
	if i == nil {
		return false
	}
	for _, r := range i.Path {
		switch r {
		case '*', '?', '[', ']':
			return true
		}
	}
	return false
}

// ImportSelector restricts an import to an explicit list of names
// (`{ Foo, Bar }`).
type ImportSelector struct {
	Names []string
	Span  location.Span
}
