package model

import (
	"bytes"
	"fmt"
	"slices"
)

// Schema owns the four interned tables and two name-indexes that make up
// the compiled WHAS intermediate representation, grounded on
// original_source/format/src/model/schema.rs's `Schema` struct. It starts
// pre-populated with every Primitive (Invariant 2 in SPEC_FULL.md §3),
// mutated monotonically by the compiler, then Sealed and treated as
// read-only by exporters — the teacher's datatype.go/`sealed` idiom
// generalized from a single field to the whole aggregate.
type Schema struct {
	simpleTypes map[StructuralHash]SimpleType
	groups      map[StructuralHash]Group
	attributes  map[StructuralHash]Attribute
	elements    map[StructuralHash]Element

	idToHash  map[ObjectId]StructuralHash
	idToNames map[ObjectId]map[string]struct{}

	// defaultSimpleType is the String primitive's reference, bound during
	// NewSchema. Typings that omit an explicit type (the implicit default
	// per spec.md) resolve here, matching
	// original_source/format/src/model/schema.rs's
	// `id_for_type_default`.
	defaultSimpleType Ref[SimpleType]

	sealed bool
}

// DefaultSimpleType returns the reference to the String primitive, used
// when a typing is omitted from source.
func (s *Schema) DefaultSimpleType() Ref[SimpleType] {
	return s.defaultSimpleType
}

// NewSchema constructs an empty Schema with every Primitive pre-registered
// as a named Builtin SimpleType, matching
// original_source/format/src/model/schema.rs's `Default for Schema`.
func NewSchema() *Schema {
	s := &Schema{
		simpleTypes: make(map[StructuralHash]SimpleType),
		groups:      make(map[StructuralHash]Group),
		attributes:  make(map[StructuralHash]Attribute),
		elements:    make(map[StructuralHash]Element),
		idToHash:    make(map[ObjectId]StructuralHash),
		idToNames:   make(map[ObjectId]map[string]struct{}),
	}
	for _, p := range Primitives {
		s.registerPrimitive(p)
	}
	return s
}

func (s *Schema) registerPrimitive(p Primitive) {
	st := NewBuiltinSimpleType(p)
	ref := s.RegisterSimpleType(st)
	s.RegisterTypeName(ref.ID(), p.String())
	if p == PrimitiveString {
		s.defaultSimpleType = ref
	}
}

func (s *Schema) mustBeMutable(op string) {
	if s.sealed {
		panic("model: cannot " + op + " a sealed schema")
	}
}

// Seal marks the schema as immutable. Called by the compiler after the
// whole source graph has been compiled; every exporter receives a sealed
// Schema.
func (s *Schema) Seal() { s.sealed = true }

// IsSealed reports whether the schema has been sealed.
func (s *Schema) IsSealed() bool { return s.sealed }

//
// REGISTRATION
//

// RegisterSimpleType interns st (idempotently, by structural hash) and
// returns a fresh ObjectId reference to it. Calling this twice with
// structurally-identical values returns two distinct ObjectIds that both
// resolve to the one stored entity (Invariant 3).
func (s *Schema) RegisterSimpleType(st SimpleType) Ref[SimpleType] {
	s.mustBeMutable("register a simple type on")
	hash := st.structuralHash()
	if _, exists := s.simpleTypes[hash]; !exists {
		s.simpleTypes[hash] = st
	}
	return NewRef[SimpleType](s.bindID(hash))
}

// RegisterGroup interns g and returns a fresh ObjectId reference to it.
func (s *Schema) RegisterGroup(g Group) Ref[Group] {
	s.mustBeMutable("register a group on")
	hash := g.structuralHash()
	if _, exists := s.groups[hash]; !exists {
		s.groups[hash] = g
	}
	return NewRef[Group](s.bindID(hash))
}

// RegisterAttribute interns a and returns a fresh ObjectId reference to it.
func (s *Schema) RegisterAttribute(a Attribute) Ref[Attribute] {
	s.mustBeMutable("register an attribute on")
	hash := a.structuralHash()
	if _, exists := s.attributes[hash]; !exists {
		s.attributes[hash] = a
	}
	return NewRef[Attribute](s.bindID(hash))
}

// RegisterElement interns e and returns a fresh ObjectId reference to it.
func (s *Schema) RegisterElement(e Element) Ref[Element] {
	s.mustBeMutable("register an element on")
	hash := e.structuralHash()
	if _, exists := s.elements[hash]; !exists {
		s.elements[hash] = e
	}
	return NewRef[Element](s.bindID(hash))
}

// bindID allocates a fresh ObjectId and maps it to hash in id_to_hash.
func (s *Schema) bindID(hash StructuralHash) ObjectId {
	id := newObjectId()
	s.idToHash[id] = hash
	return id
}

// RegisterTypeName attaches name as an additional source-level name for the
// entity behind id. Idempotent: registering the same name twice is a no-op.
func (s *Schema) RegisterTypeName(id ObjectId, name string) {
	s.mustBeMutable("register a type name on")
	if s.idToNames[id] == nil {
		s.idToNames[id] = make(map[string]struct{})
	}
	s.idToNames[id][name] = struct{}{}
}

// AllocatePreliminaryID reserves a fresh ObjectId that does not yet resolve
// to any entity. The compiler binds a source name to this id in
// id_to_names *before* descending into a recursive definition (see
// SPEC_FULL.md §4.2), then finalizes it with BindPreliminaryID once the
// definition's entity is known.
func (s *Schema) AllocatePreliminaryID() ObjectId {
	s.mustBeMutable("allocate a preliminary id on")
	return newObjectId()
}

// BindPreliminaryID maps an already-allocated ObjectId (see
// AllocatePreliminaryID) to the StructuralHash of the entity that
// definition eventually produced. It is an error to rebind an ObjectId that
// already resolves to something, or to target a Ref whose own entity is not
// yet resolvable.
func BindPreliminaryID[T any](s *Schema, id ObjectId, target Ref[T]) error {
	s.mustBeMutable("bind a preliminary id on")
	if _, exists := s.idToHash[id]; exists {
		return fmt.Errorf("model: preliminary id %d is already bound", id)
	}
	hash, ok := s.idToHash[target.ID()]
	if !ok {
		return fmt.Errorf("model: target id %d has no resolvable hash", target.ID())
	}
	s.idToHash[id] = hash
	return nil
}

// PushComment is retained for parity with
// original_source/format/src/model/schema.rs's doc-comment buffering, but
// WHAS attaches documentation directly on ast nodes during parsing
// (ast.TypeDecl.Documentation, ast.ElementDecl.Documentation) rather than
// buffering it inside the Schema, so no comment table is needed here; see
// DESIGN.md for this simplification's justification.

//
// LOOKUP
//

// CanonicalHash returns the StructuralHash that id resolves to, per
// original_source/format/src/model/schema.rs's `typehash_for_id`. Exporters
// that need to deduplicate by entity identity rather than by ObjectId (two
// Refs minted from separate Register calls can resolve to the one interned
// entity) use this as a cache key instead of ObjectId.
func (s *Schema) CanonicalHash(id ObjectId) (StructuralHash, bool) {
	hash, ok := s.idToHash[id]
	return hash, ok
}

// AllGroups returns every distinct registered Group value, named or
// anonymous, sorted by StructuralHash for run-to-run determinism, per
// original_source/format/src/model/schema.rs's `types_group().values()`.
// Unlike SortedGroups, this includes groups with no bound display name — it
// exists for callers like the Fonto exporter's is-local check, which must
// inspect every group's content model regardless of whether the group
// itself is named.
func (s *Schema) AllGroups() []Group {
	return sortedByHash(s.groups)
}

// AllSimpleTypes returns every distinct registered SimpleType value, named
// or anonymous, sorted by StructuralHash for run-to-run determinism, per
// original_source/format/src/model/schema.rs's `types_simple().values()`.
func (s *Schema) AllSimpleTypes() []SimpleType {
	return sortedByHash(s.simpleTypes)
}

// AllAttributes returns every distinct registered Attribute value, sorted
// by StructuralHash for run-to-run determinism, per
// original_source/format/src/model/schema.rs's `types_attribute().values()`.
func (s *Schema) AllAttributes() []Attribute {
	return sortedByHash(s.attributes)
}

// sortedByHash returns m's values ordered by their StructuralHash key. A
// hash is a deterministic function of an entity's content, so this gives
// exporters a stable walk order without depending on Go's randomized map
// iteration or on any entity having a bound display name.
func sortedByHash[T any](m map[StructuralHash]T) []T {
	hashes := make([]StructuralHash, 0, len(m))
	for h := range m {
		hashes = append(hashes, h)
	}
	slices.SortFunc(hashes, func(a, b StructuralHash) int {
		return bytes.Compare(a[:], b[:])
	})
	out := make([]T, len(hashes))
	for i, h := range hashes {
		out[i] = m[h]
	}
	return out
}

// SimpleType resolves ref to its interned value.
func (s *Schema) SimpleType(ref Ref[SimpleType]) (SimpleType, bool) {
	hash, ok := s.idToHash[ref.ID()]
	if !ok {
		return SimpleType{}, false
	}
	st, ok := s.simpleTypes[hash]
	return st, ok
}

// Group resolves ref to its interned value.
func (s *Schema) Group(ref Ref[Group]) (Group, bool) {
	hash, ok := s.idToHash[ref.ID()]
	if !ok {
		return Group{}, false
	}
	g, ok := s.groups[hash]
	return g, ok
}

// Attribute resolves ref to its interned value.
func (s *Schema) Attribute(ref Ref[Attribute]) (Attribute, bool) {
	hash, ok := s.idToHash[ref.ID()]
	if !ok {
		return Attribute{}, false
	}
	a, ok := s.attributes[hash]
	return a, ok
}

// Element resolves ref to its interned value.
func (s *Schema) Element(ref Ref[Element]) (Element, bool) {
	hash, ok := s.idToHash[ref.ID()]
	if !ok {
		return Element{}, false
	}
	e, ok := s.elements[hash]
	return e, ok
}

// SimpleTypeByName finds a named SimpleType, per
// original_source/format/src/model/schema.rs's `get_simpletype_by_name`.
func (s *Schema) SimpleTypeByName(name string) (Ref[SimpleType], SimpleType, bool) {
	id, ok := s.idForName(name)
	if !ok {
		return Ref[SimpleType]{}, SimpleType{}, false
	}
	ref := NewRef[SimpleType](id)
	st, ok := s.SimpleType(ref)
	return ref, st, ok
}

// GroupByName finds a named Group, per
// original_source/format/src/model/schema.rs's `get_group_by_name`.
func (s *Schema) GroupByName(name string) (Ref[Group], Group, bool) {
	id, ok := s.idForName(name)
	if !ok {
		return Ref[Group]{}, Group{}, false
	}
	ref := NewRef[Group](id)
	g, ok := s.Group(ref)
	return ref, g, ok
}

func (s *Schema) idForName(name string) (ObjectId, bool) {
	for id, names := range s.idToNames {
		if _, ok := names[name]; ok {
			return id, true
		}
	}
	return 0, false
}

// NamesOf returns the sorted, lexicographically-first-first set of
// source-level names bound to id. An entity with no bound name (anonymous)
// returns an empty slice. Unlike
// original_source/format/src/model/schema.rs's arbitrary
// `HashSet::iter().next()` pick, DisplayName below always prefers the
// lexicographically-first name, for deterministic exporter output.
func (s *Schema) NamesOf(id ObjectId) []string {
	names := make([]string, 0, len(s.idToNames[id]))
	for name := range s.idToNames[id] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DisplayName returns the lexicographically-first name bound to id, or
// false if id is anonymous.
func (s *Schema) DisplayName(id ObjectId) (string, bool) {
	names := s.NamesOf(id)
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// AllTypeNames returns every registered type name across every entity, per
// original_source/format/src/model/schema.rs's `all_type_names`.
func (s *Schema) AllTypeNames() []string {
	var names []string
	for _, set := range s.idToNames {
		for name := range set {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

//
// ITERATION (deterministic, for exporters)
//

// SortedElements returns every registered element reference paired with its
// value, ordered by name then ObjectId for deterministic export.
func (s *Schema) SortedElements() []struct {
	Ref   Ref[Element]
	Value Element
} {
	var out []struct {
		Ref   Ref[Element]
		Value Element
	}
	for id, hash := range s.idToHash {
		e, ok := s.elements[hash]
		if !ok {
			continue
		}
		out = append(out, struct {
			Ref   Ref[Element]
			Value Element
		}{Ref: NewRef[Element](id), Value: e})
	}
	slices.SortFunc(out, func(a, b struct {
		Ref   Ref[Element]
		Value Element
	}) int {
		if a.Value.Name != b.Value.Name {
			if a.Value.Name < b.Value.Name {
				return -1
			}
			return 1
		}
		if a.Ref.ID() < b.Ref.ID() {
			return -1
		}
		if a.Ref.ID() > b.Ref.ID() {
			return 1
		}
		return 0
	})
	return out
}

// SortedGroups returns every named group reference paired with its value
// and display name, sorted by name, for deterministic export. Anonymous
// groups (introduced only as nested GroupItem children) are excluded.
func (s *Schema) SortedGroups() []struct {
	Ref   Ref[Group]
	Name  string
	Value Group
} {
	var out []struct {
		Ref   Ref[Group]
		Name  string
		Value Group
	}
	seen := make(map[StructuralHash]bool)
	for id, hash := range s.idToHash {
		if seen[hash] {
			continue
		}
		g, ok := s.groups[hash]
		if !ok {
			continue
		}
		name, ok := s.DisplayName(id)
		if !ok {
			continue
		}
		seen[hash] = true
		out = append(out, struct {
			Ref   Ref[Group]
			Name  string
			Value Group
		}{Ref: NewRef[Group](id), Name: name, Value: g})
	}
	slices.SortFunc(out, func(a, b struct {
		Ref   Ref[Group]
		Name  string
		Value Group
	}) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return out
}

// HasEntity reports whether hash is present in any of the four tables, per
// original_source/format/src/model/schema.rs's `has_type_definition`.
func (s *Schema) HasEntity(hash StructuralHash) bool {
	if _, ok := s.simpleTypes[hash]; ok {
		return true
	}
	if _, ok := s.groups[hash]; ok {
		return true
	}
	if _, ok := s.attributes[hash]; ok {
		return true
	}
	if _, ok := s.elements[hash]; ok {
		return true
	}
	return false
}
