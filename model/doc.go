// Package model implements the WHAS schema intermediate representation: an
// interned, cycle-safe graph of simple types, groups, attributes, and
// elements, addressed only through [ObjectId] references so that recursive
// and mutually-recursive type definitions never require owned cycles.
//
// Grounded on original_source/format/src/model/{schema,type,simpletype,
// group,element,attr,restriction,primitive,duplicity,typehash}.rs for the
// four-table-plus-two-index shape (simple types, groups, attributes,
// elements, each keyed by a structural hash, plus id-to-hash and
// id-to-names indexes), and on the teacher's schema.go/registry.go/
// typeid.go for the Go idiom: exported accessor methods over unexported
// fields, a Seal-after-build lifecycle, and sync/atomic-backed identifier
// allocation.
package model
