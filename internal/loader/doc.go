// Package loader implements the WHAS Source File Manager: it turns an entry
// schema path (or an in-memory source) into a graph of parsed
// [github.com/ParapluOU/whale-schema/ast.Model] units, one per distinct
// source file, resolving import declarations along the way.
//
// Grounded on the teacher's schema/load package for the overall shape
// (functional-options config, a sandboxed root loader for filesystem
// access, memoization keyed by canonical [location.SourceID]) and on
// original_source/format/src/sourced/manager.rs for the memoize-before-
// recurse strategy that makes cyclic imports a no-op instead of an error:
// a unit is inserted into the manager's map before its own imports are
// walked, so a cycle simply finds the unit already present and stops.
package loader
