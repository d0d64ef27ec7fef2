package model

// SimpleTypeKind tags which variant a SimpleType holds, mirroring
// original_source/format/src/model/simpletype.rs's `SimpleType` enum.
type SimpleTypeKind uint8

const (
	SimpleTypeBuiltin SimpleTypeKind = iota
	SimpleTypeDerived
	SimpleTypeUnion
	SimpleTypeList
)

// SimpleType is a tagged union over the four ways WHAS can describe a
// scalar value: a fixed primitive, a facet-restricted derivation of another
// simple type, a union of member types, or a whitespace-separated list of
// items of one type. Only the fields relevant to Kind are populated.
type SimpleType struct {
	Kind SimpleTypeKind

	// Builtin
	Name Primitive

	// Derived
	Base         Ref[SimpleType]
	Restrictions Restrictions
	Abstract     bool

	// Union
	Members []Ref[SimpleType]

	// List
	Item      Ref[SimpleType]
	Separator *string
}

// NewBuiltinSimpleType constructs the Builtin variant for a primitive.
func NewBuiltinSimpleType(p Primitive) SimpleType {
	return SimpleType{Kind: SimpleTypeBuiltin, Name: p}
}

// NewDerivedSimpleType constructs the Derived variant.
func NewDerivedSimpleType(base Ref[SimpleType], restrictions Restrictions, abstract bool) SimpleType {
	return SimpleType{Kind: SimpleTypeDerived, Base: base, Restrictions: restrictions, Abstract: abstract}
}

// NewUnionSimpleType constructs the Union variant. Member order is
// significant: it determines XSD `memberTypes` emission order.
func NewUnionSimpleType(members []Ref[SimpleType]) SimpleType {
	return SimpleType{Kind: SimpleTypeUnion, Members: members}
}

// NewListSimpleType constructs the List variant.
func NewListSimpleType(item Ref[SimpleType], separator *string) SimpleType {
	return SimpleType{Kind: SimpleTypeList, Item: item, Separator: separator}
}

// IsBuiltin reports whether this is a non-referencing primitive.
func (t SimpleType) IsBuiltin() bool {
	return t.Kind == SimpleTypeBuiltin
}

// IsDerived reports whether this restricts another simple type.
func (t SimpleType) IsDerived() bool {
	return t.Kind == SimpleTypeDerived
}

// DependentRefs returns every SimpleType reference this type's definition
// depends on, per original_source/format/src/model/simpletype.rs's
// `dependent_on_refs`.
func (t SimpleType) DependentRefs() []Ref[SimpleType] {
	switch t.Kind {
	case SimpleTypeDerived:
		return []Ref[SimpleType]{t.Base}
	case SimpleTypeUnion:
		return t.Members
	case SimpleTypeList:
		return []Ref[SimpleType]{t.Item}
	default:
		return nil
	}
}

// Hash returns this entity's content-derived identity, per
// original_source/format/src/model/typehash.rs's `GetTypeHash::id`.
// Exporters that walk entities by value (rather than through a Ref) use
// this as a dedup cache key.
func (t SimpleType) Hash() StructuralHash {
	return t.structuralHash()
}

// structuralHash computes the StructuralHash for this entity. Reference
// fields (Base, Members, Item) are hashed by ObjectId, never by resolving
// through the schema — this is what keeps the hash computable without
// walking into potentially-cyclic referenced entities.
func (t SimpleType) structuralHash() StructuralHash {
	h := newHasher()
	h.WriteUint64(uint64(t.Kind))
	switch t.Kind {
	case SimpleTypeBuiltin:
		h.WriteUint64(uint64(t.Name))
	case SimpleTypeDerived:
		h.WriteUint64(uint64(t.Base.ID()))
		h.WriteRestrictions(t.Restrictions)
		h.WriteBool(t.Abstract)
	case SimpleTypeUnion:
		h.WriteUint64(uint64(len(t.Members)))
		for _, m := range t.Members {
			h.WriteUint64(uint64(m.ID()))
		}
	case SimpleTypeList:
		h.WriteUint64(uint64(t.Item.ID()))
		h.WriteOptionalString(t.Separator)
	}
	return h.Sum()
}
