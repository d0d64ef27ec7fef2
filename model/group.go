package model

// GroupKind mirrors original_source/format/src/model/group.rs's `GroupType`
// enum, naming the XSD content-model construct the group lowers to.
type GroupKind uint8

const (
	// GroupSequence lowers to <xs:sequence> (bare `{…}` block).
	GroupSequence GroupKind = iota
	// GroupChoice lowers to <xs:choice> (`?{…}` block).
	GroupChoice
	// GroupAll lowers to <xs:all> (`!{…}` block).
	GroupAll
)

func (k GroupKind) String() string {
	switch k {
	case GroupChoice:
		return "choice"
	case GroupAll:
		return "all"
	default:
		return "sequence"
	}
}

// GroupItemKind tags a GroupItem's variant.
type GroupItemKind uint8

const (
	GroupItemElement GroupItemKind = iota
	GroupItemGroup
)

// GroupItem is one child of a Group's ordered content model, mirroring
// original_source/format/src/model/group.rs's `GroupItem` enum.
type GroupItem struct {
	Kind    GroupItemKind
	Element Ref[Element]
	Group   Ref[Group]
}

// NewElementGroupItem wraps an element reference as a group item.
func NewElementGroupItem(e Ref[Element]) GroupItem {
	return GroupItem{Kind: GroupItemElement, Element: e}
}

// NewGroupGroupItem wraps a nested group reference as a group item (used
// for anonymous splat-introduced sub-blocks).
func NewGroupGroupItem(g Ref[Group]) GroupItem {
	return GroupItem{Kind: GroupItemGroup, Group: g}
}

// Group is complex content: an ordered sequence/choice/all of elements and
// nested groups, with its own attribute set, mixed-content flag, and
// optional base type to extend. Grounded on
// original_source/format/src/model/group.rs's `Group` struct.
type Group struct {
	Attributes Attributes
	Kind       GroupKind
	Mixed      bool
	Abstract   bool
	Base       *Ref[Group]
	Items      []GroupItem
}

// IsAbstract reports whether the group cannot be directly instantiated.
func (g Group) IsAbstract() bool {
	return g.Abstract
}

// Extends reports whether the group has a base type.
func (g Group) Extends() bool {
	return g.Base != nil
}

// ContainsElement reports whether element appears (directly or through a
// nested group item) in g's content model, per
// original_source/format/src/model/group.rs's `contains_element`. schema is
// used to resolve nested Ref[Group] items.
func (g Group) ContainsElement(element Ref[Element], schema *Schema) bool {
	for _, item := range g.Items {
		switch item.Kind {
		case GroupItemElement:
			if item.Element == element {
				return true
			}
		case GroupItemGroup:
			if nested, ok := schema.Group(item.Group); ok && nested.ContainsElement(element, schema) {
				return true
			}
		}
	}
	return false
}

// Hash returns this entity's content-derived identity, per
// original_source/format/src/model/typehash.rs's `GetTypeHash::id`.
func (g Group) Hash() StructuralHash {
	return g.structuralHash()
}

func (g Group) structuralHash() StructuralHash {
	h := newHasher()
	h.WriteAttributes(g.Attributes)
	h.WriteUint64(uint64(g.Kind))
	h.WriteBool(g.Mixed)
	h.WriteBool(g.Abstract)
	if g.Base != nil {
		h.WriteUint64(uint64(g.Base.ID()) + 1)
	} else {
		h.WriteUint64(0)
	}
	h.WriteUint64(uint64(len(g.Items)))
	for _, item := range g.Items {
		h.WriteUint64(uint64(item.Kind))
		switch item.Kind {
		case GroupItemElement:
			h.WriteUint64(uint64(item.Element.ID()))
		case GroupItemGroup:
			h.WriteUint64(uint64(item.Group.ID()))
		}
	}
	return h.Sum()
}
