package model

// TypeRefKind tags which table a TypeRef points into.
type TypeRefKind uint8

const (
	TypeRefSimple TypeRefKind = iota
	TypeRefGroup
)

// TypeRef is either a simple or a group type reference, mirroring
// original_source/format/src/model/type.rs's `TypeRef` enum.
type TypeRef struct {
	Kind   TypeRefKind
	Simple Ref[SimpleType]
	Group  Ref[Group]
}

// NewSimpleTypeRef wraps a SimpleType reference.
func NewSimpleTypeRef(r Ref[SimpleType]) TypeRef {
	return TypeRef{Kind: TypeRefSimple, Simple: r}
}

// NewGroupTypeRef wraps a Group reference.
func NewGroupTypeRef(r Ref[Group]) TypeRef {
	return TypeRef{Kind: TypeRefGroup, Group: r}
}

// ObjectId returns the underlying reference's ObjectId regardless of kind.
func (t TypeRef) ObjectId() ObjectId {
	if t.Kind == TypeRefGroup {
		return t.Group.ID()
	}
	return t.Simple.ID()
}

// IsMixedContent reports whether this reference, when it names a Group,
// allows interleaved text content.
func (t TypeRef) IsMixedContent(schema *Schema) bool {
	if t.Kind != TypeRefGroup {
		return false
	}
	g, ok := schema.Group(t.Group)
	return ok && g.Mixed
}

// Element is a compiled `#name[modifier][: typing]` declaration, grounded
// on original_source/format/src/model/element.rs's `Element` struct.
type Element struct {
	Name       string
	Attributes Attributes
	Duplicity  Duplicity
	Typing     TypeRef
}

// MinOccurs returns the element's occurrence lower bound.
func (e Element) MinOccurs() int {
	return e.Duplicity.MinOccurs()
}

// MaxOccurs returns the element's occurrence upper bound.
func (e Element) MaxOccurs() (value int, bounded bool) {
	return e.Duplicity.MaxOccurs()
}

// GroupMergedAttributes merges the referenced group's block-level
// attributes with this element's own, element-level attributes taking
// precedence — per
// original_source/format/src/model/element.rs's
// `group_merged_attributes`. When the element's typing is a SimpleType,
// there is no group to merge with and the element's own attributes are
// returned unchanged.
func (e Element) GroupMergedAttributes(schema *Schema) Attributes {
	if e.Typing.Kind != TypeRefGroup {
		return e.Attributes
	}
	g, ok := schema.Group(e.Typing.Group)
	if !ok {
		return e.Attributes
	}
	return g.Attributes.Merge(e.Attributes)
}

// Hash returns this entity's content-derived identity, per
// original_source/format/src/model/typehash.rs's `GetTypeHash::id`.
func (e Element) Hash() StructuralHash {
	return e.structuralHash()
}

func (e Element) structuralHash() StructuralHash {
	h := newHasher()
	h.WriteString(e.Name)
	h.WriteAttributes(e.Attributes)
	h.WriteDuplicity(e.Duplicity)
	h.WriteUint64(uint64(e.Typing.Kind))
	h.WriteUint64(uint64(e.Typing.ObjectId()))
	return h.Sum()
}
