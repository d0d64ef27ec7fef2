// Package compile turns one or more parsed WHAS [ast.Model] values into a
// compiled [model.Schema]: interned simple types, groups, attributes, and
// elements addressed through [model.ObjectId] references.
//
// The central trick is two-phase name binding (SPEC_FULL.md §4.2): before
// descending into a type definition's body, the compiler allocates a
// preliminary [model.ObjectId] and binds the type's source name to it, so a
// recursive reference encountered mid-descent resolves to that id instead
// of recursing forever. Once the body is fully compiled, the id is
// finalized to the produced entity's structural hash.
//
// Grounded on original_source/format/src/compiler/mod.rs's
// compile/compile_type_definition/register_preliminary_id_type sequence,
// expressed using the teacher's schema/internal/complete package's
// completer-struct-with-phases idiom and diag-based error collection.
package compile
