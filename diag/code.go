package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// API layer that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategorySyntax is for lexer/parser errors in WHAS source text.
	CategorySyntax

	// CategoryImport is for source file resolution and import graph errors.
	CategoryImport

	// CategoryCompile is for schema model compilation errors: name binding,
	// inheritance validation, facet lowering, attribute merging.
	CategoryCompile

	// CategoryExport is for errors raised while lowering a compiled schema
	// to an output format (XSD 1.0, Fonto JSON).
	CategoryExport
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySyntax:
		return "syntax"
	case CategoryImport:
		return "import"
	case CategoryCompile:
		return "compile"
	case CategoryExport:
		return "export"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_UNKNOWN_TYPE_NAME").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Syntax codes.
var (
	// E_SYNTAX indicates a general lexer or parser error in WHAS source text.
	E_SYNTAX = code("E_SYNTAX", CategorySyntax)

	// E_UNTERMINATED_LITERAL indicates a string or regex literal was not closed
	// before end-of-line or end-of-file.
	E_UNTERMINATED_LITERAL = code("E_UNTERMINATED_LITERAL", CategorySyntax)

	// E_INVALID_ESCAPE indicates a string literal contains an escape sequence
	// that strconv.Unquote cannot interpret.
	E_INVALID_ESCAPE = code("E_INVALID_ESCAPE", CategorySyntax)

	// E_INVALID_NAME indicates an identifier does not match the required
	// UC_WORD or lc_word shape for its position in the grammar.
	E_INVALID_NAME = code("E_INVALID_NAME", CategorySyntax)
)

// Import codes.
var (
	// E_IMPORT_RESOLVE indicates an import path could not be resolved to a
	// readable file, including after the .whas-suffix fallback retry.
	E_IMPORT_RESOLVE = code("E_IMPORT_RESOLVE", CategoryImport)

	// E_GLOB_NO_MATCH indicates a glob-style import pattern matched zero files.
	E_GLOB_NO_MATCH = code("E_GLOB_NO_MATCH", CategoryImport)

	// E_PATH_ESCAPE indicates an import path resolves outside the module root.
	E_PATH_ESCAPE = code("E_PATH_ESCAPE", CategoryImport)

	// I_IMPORT_CYCLE_TOLERATED marks a cyclic import that was detected and
	// short-circuited rather than treated as an error. It is informational:
	// issues carrying this code should be emitted at Info severity, never
	// Error, since import cycles are valid in WHAS.
	I_IMPORT_CYCLE_TOLERATED = code("I_IMPORT_CYCLE_TOLERATED", CategoryImport)
)

// Compile codes.
var (
	// E_UNKNOWN_TYPE_NAME indicates a type reference that does not resolve to
	// any definition visible at the reference site.
	E_UNKNOWN_TYPE_NAME = code("E_UNKNOWN_TYPE_NAME", CategoryCompile)

	// E_DUPLICATE_TYPE_NAME indicates a named type is declared more than once
	// in the same scope.
	E_DUPLICATE_TYPE_NAME = code("E_DUPLICATE_TYPE_NAME", CategoryCompile)

	// E_DUPLICATE_ATTRIBUTE indicates an attribute name is declared more than
	// once on the same element or block.
	E_DUPLICATE_ATTRIBUTE = code("E_DUPLICATE_ATTRIBUTE", CategoryCompile)

	// E_DUPLICATE_ELEMENT indicates an element name is declared more than once
	// within the same content model.
	E_DUPLICATE_ELEMENT = code("E_DUPLICATE_ELEMENT", CategoryCompile)

	// E_CIRCULAR_INHERITANCE indicates an inheritance chain revisits a type
	// already on the chain being resolved.
	E_CIRCULAR_INHERITANCE = code("E_CIRCULAR_INHERITANCE", CategoryCompile)

	// E_INHERITS_FROM_SIMPLE indicates a block type attempts to inherit from a
	// simple (non-group) type definition.
	E_INHERITS_FROM_SIMPLE = code("E_INHERITS_FROM_SIMPLE", CategoryCompile)

	// E_UNION_CONTAINS_GROUP indicates a union member resolves to a group
	// (complex) type, which is not permitted as a union member.
	E_UNION_CONTAINS_GROUP = code("E_UNION_CONTAINS_GROUP", CategoryCompile)

	// E_ATTRIBUTE_HAS_GROUP_TYPE indicates an attribute's declared type
	// resolves to a group (complex) type rather than a simple type.
	E_ATTRIBUTE_HAS_GROUP_TYPE = code("E_ATTRIBUTE_HAS_GROUP_TYPE", CategoryCompile)

	// E_FACET_ON_COMPLEX_TYPE indicates a restriction facet was applied to a
	// type that does not have a simple base.
	E_FACET_ON_COMPLEX_TYPE = code("E_FACET_ON_COMPLEX_TYPE", CategoryCompile)

	// E_UNSUPPORTED_SHORTHAND indicates a facet shorthand was used in a
	// position or against a base type that does not support it.
	E_UNSUPPORTED_SHORTHAND = code("E_UNSUPPORTED_SHORTHAND", CategoryCompile)

	// E_UNKNOWN_FACET indicates a facet keyword is not recognized.
	E_UNKNOWN_FACET = code("E_UNKNOWN_FACET", CategoryCompile)

	// E_BAD_WHITESPACE_VALUE indicates a whiteSpace facet was given a value
	// other than preserve, replace, or collapse.
	E_BAD_WHITESPACE_VALUE = code("E_BAD_WHITESPACE_VALUE", CategoryCompile)

	// E_UNIMPLEMENTED_FEATURE indicates a construct that parses but falls
	// outside the implemented subset of the grammar (e.g. a non-goal
	// feature surfaced anyway).
	E_UNIMPLEMENTED_FEATURE = code("E_UNIMPLEMENTED_FEATURE", CategoryCompile)

	// E_INVARIANT_VIOLATION indicates a compiled-model invariant (interning,
	// structural hash, or two-phase binding consistency) was violated.
	// Like E_INTERNAL, this should never occur in correct code, but is
	// scoped to the compile layer so callers can filter on it specifically.
	E_INVARIANT_VIOLATION = code("E_INVARIANT_VIOLATION", CategoryCompile)
)

// Export codes.
var (
	// E_EXPORT_IO indicates an error writing exported output to its
	// destination.
	E_EXPORT_IO = code("E_EXPORT_IO", CategoryExport)

	// E_EXPORT_UNSUPPORTED_VERSION indicates a requested target format
	// version (e.g. --fonto-version) is not recognized by the exporter.
	E_EXPORT_UNSUPPORTED_VERSION = code("E_EXPORT_UNSUPPORTED_VERSION", CategoryExport)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Syntax
	E_SYNTAX,
	E_UNTERMINATED_LITERAL,
	E_INVALID_ESCAPE,
	E_INVALID_NAME,
	// Import
	E_IMPORT_RESOLVE,
	E_GLOB_NO_MATCH,
	E_PATH_ESCAPE,
	I_IMPORT_CYCLE_TOLERATED,
	// Compile
	E_UNKNOWN_TYPE_NAME,
	E_DUPLICATE_TYPE_NAME,
	E_DUPLICATE_ATTRIBUTE,
	E_DUPLICATE_ELEMENT,
	E_CIRCULAR_INHERITANCE,
	E_INHERITS_FROM_SIMPLE,
	E_UNION_CONTAINS_GROUP,
	E_ATTRIBUTE_HAS_GROUP_TYPE,
	E_FACET_ON_COMPLEX_TYPE,
	E_UNSUPPORTED_SHORTHAND,
	E_UNKNOWN_FACET,
	E_BAD_WHITESPACE_VALUE,
	E_UNIMPLEMENTED_FEATURE,
	E_INVARIANT_VIOLATION,
	// Export
	E_EXPORT_IO,
	E_EXPORT_UNSUPPORTED_VERSION,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
