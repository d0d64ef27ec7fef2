package model

import "slices"

// Attribute is a compiled `@name[?][: typing]` declaration, grounded on
// original_source/format/src/model/attr.rs's `Attribute` struct.
type Attribute struct {
	Name         string
	Required     bool
	Typing       Ref[SimpleType]
	DefaultValue *string
}

// Hash returns this entity's content-derived identity, per
// original_source/format/src/model/typehash.rs's `GetTypeHash::id`.
func (a Attribute) Hash() StructuralHash {
	return a.structuralHash()
}

func (a Attribute) structuralHash() StructuralHash {
	h := newHasher()
	h.WriteString(a.Name)
	h.WriteBool(a.Required)
	h.WriteUint64(uint64(a.Typing.ID()))
	h.WriteOptionalString(a.DefaultValue)
	return h.Sum()
}

// Attributes is a name-keyed set of attribute references, merged between a
// group's block-level declarations and an element's own declarations with
// element-level precedence on name collision (Invariant 5 in
// SPEC_FULL.md §3), mirroring
// original_source/format/src/model/attr.rs's `Attributes` newtype.
type Attributes map[string]Ref[Attribute]

// Merge returns the union of a and other, with other's entries taking
// precedence on name collision — matching
// original_source/format/src/model/attr.rs's `Attributes::merge`, which
// extends self's map with other's (HashMap::extend keeps the later value).
func (a Attributes) Merge(other Attributes) Attributes {
	merged := make(Attributes, len(a)+len(other))
	for name, ref := range a {
		merged[name] = ref
	}
	for name, ref := range other {
		merged[name] = ref
	}
	return merged
}

// Names returns the attribute names in sorted order, for deterministic
// iteration (export ordering, hashing).
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (h *hasher) WriteAttributes(a Attributes) *hasher {
	names := a.Names()
	h.WriteUint64(uint64(len(names)))
	for _, name := range names {
		h.WriteString(name)
		h.WriteUint64(uint64(a[name].ID()))
	}
	return h
}
