// Package whas provides compilation and export of WHAS XML grammar
// definitions for Go applications.
//
// WHAS is a concise DSL for describing XML document grammars. A .whas
// source file declares element and attribute shapes, inheritance between
// named types, and facet-based restrictions; the compiler resolves those
// declarations into an interned, cycle-safe schema model that can be
// exported to XSD 1.0 or to a JSON schema description.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source positions, spans, and canonical paths
//	  - diag: Structured diagnostics with stable error codes
//
//	Lexing and parsing tier:
//	  - internal/lex: Tokenizer for WHAS source text
//	  - internal/parse: Recursive-descent parser producing an ast.Model
//	  - ast: Syntax tree types for declarations, facets, and content models
//
//	Loading tier:
//	  - internal/loader: Source file resolution, glob expansion, cycle-tolerant imports
//	  - internal/config: .whasrc.jsonc configuration loading
//
//	Model and compilation tier:
//	  - model: Interned schema IR (ObjectId/StructuralHash references)
//	  - compile: Two-phase name binding, facet lowering, inheritance validation
//
//	Export tier:
//	  - export/xsd: Deterministic XSD 1.0 serialization
//	  - export/fonto: JSON schema description export
//
// # Entry Points
//
// Compiling a schema:
//
//	import "github.com/ParapluOU/whale-schema/compile"
//
//	// models: the parsed *ast.Model of the entry file and its imports
//	// (see internal/loader), entry file first.
//	schema, diagResult := compile.Compile(ctx, models)
//	if diagResult.HasErrors() {
//	    // Compilation errors: unknown types, inheritance cycles, bad facets
//	}
//
// Exporting a compiled schema:
//
//	import "github.com/ParapluOU/whale-schema/export/xsd"
//	import "github.com/ParapluOU/whale-schema/export/fonto"
//
//	if _, err := xsd.Write(ctx, w, schema); err != nil {
//	    // export error
//	}
//	if _, err := fonto.Write(ctx, w, schema, fonto.WithVersion(fonto.DefaultVersion())); err != nil {
//	    // export error
//	}
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/ParapluOU/whale-schema/diag]: Structured diagnostics
//   - [github.com/ParapluOU/whale-schema/location]: Source location tracking
//   - [github.com/ParapluOU/whale-schema/ast]: WHAS syntax tree
//   - [github.com/ParapluOU/whale-schema/model]: Interned schema IR
//   - [github.com/ParapluOU/whale-schema/compile]: Schema compilation
//   - [github.com/ParapluOU/whale-schema/export/xsd]: XSD 1.0 exporter
//   - [github.com/ParapluOU/whale-schema/export/fonto]: JSON schema exporter
package whas
