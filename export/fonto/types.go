package fonto

// The Fonto JSON document uses serde-style internally-tagged enums
// (SimpleType, ContentModel), grounded on
// original_source/format/src/formats/fonto/{simpletype,content_model}.rs.
// Go has no tagged-union type, so each is flattened into one struct with a
// discriminator field and every variant's fields marked omitempty — the
// same "kind field plus sparse payload" shape Go APIs commonly use in place
// of a real sum type.

// SimpleTypeVariety discriminates a SimpleType's shape.
type SimpleTypeVariety string

const (
	SimpleTypeVarietyDerived SimpleTypeVariety = "derived"
	SimpleTypeVarietyBuiltin SimpleTypeVariety = "builtin"
	SimpleTypeVarietyUnion   SimpleTypeVariety = "union"
	SimpleTypeVarietyList    SimpleTypeVariety = "list"
)

// SimpleType is one entry in the document's simpleTypes array.
type SimpleType struct {
	Variety SimpleTypeVariety `json:"variety"`

	// Derived
	Base         *int          `json:"base,omitempty"`
	Restrictions *Restrictions `json:"restrictions,omitempty"`

	// Builtin
	Name string `json:"localName,omitempty"`

	// Union
	MemberTypes []int `json:"memberTypes,omitempty"`

	// List
	ItemType  *int    `json:"itemType,omitempty"`
	Separator *string `json:"separator,omitempty"`
}

func newDerivedSimpleType(base int, r Restrictions) SimpleType {
	return SimpleType{Variety: SimpleTypeVarietyDerived, Base: &base, Restrictions: &r}
}

func newBuiltinSimpleType(name string) SimpleType {
	return SimpleType{Variety: SimpleTypeVarietyBuiltin, Name: name}
}

func newUnionSimpleType(members []int) SimpleType {
	return SimpleType{Variety: SimpleTypeVarietyUnion, MemberTypes: members}
}

func newListSimpleType(item int, separator *string) SimpleType {
	return SimpleType{Variety: SimpleTypeVarietyList, ItemType: &item, Separator: separator}
}

// Restrictions mirrors model.Restrictions field-for-field, translated to
// the Fonto document's camelCase, omitempty JSON shape.
type Restrictions struct {
	Length         *int     `json:"length,omitempty"`
	MinLength      *int     `json:"minLength,omitempty"`
	MaxLength      *int     `json:"maxLength,omitempty"`
	Pattern        *string  `json:"pattern,omitempty"`
	Enumeration    []string `json:"enumeration,omitempty"`
	WhiteSpace     *string  `json:"whiteSpace,omitempty"`
	MinInclusive   *string  `json:"minInclusive,omitempty"`
	MaxInclusive   *string  `json:"maxInclusive,omitempty"`
	MinExclusive   *string  `json:"minExclusive,omitempty"`
	MaxExclusive   *string  `json:"maxExclusive,omitempty"`
	TotalDigits    *int     `json:"totalDigits,omitempty"`
	FractionDigits *int     `json:"fractionDigits,omitempty"`
}

// ContentModelKind discriminates a ContentModel's shape.
type ContentModelKind string

const (
	ContentModelSequence     ContentModelKind = "sequence"
	ContentModelChoice       ContentModelKind = "choice"
	ContentModelAll          ContentModelKind = "all"
	ContentModelLocalElement ContentModelKind = "localElement"
	ContentModelElement      ContentModelKind = "element"
	ContentModelEmpty        ContentModelKind = "empty"
	ContentModelAny          ContentModelKind = "any"
)

// ContentModel is one entry in the document's contentModels array.
// ContentModelElement and ContentModelAny are never produced by Marshal;
// they are kept for format parity with
// original_source/format/src/formats/fonto/content_model.rs, whose
// exporter likewise never constructs them (they exist for hand-authored or
// externally-imported schemas).
type ContentModel struct {
	Kind ContentModelKind `json:"type"`

	// Sequence, Choice, All
	Items []ContentModel `json:"items,omitempty"`

	// Sequence, Choice, LocalElement, Element, Empty
	MaxOccurs *int `json:"maxOccurs,omitempty"`
	MinOccurs *int `json:"minOccurs,omitempty"`

	// LocalElement
	ElementRef *int `json:"elementRef,omitempty"`

	// Element
	Name         string  `json:"localName,omitempty"`
	NamespaceURI *string `json:"namespaceURI,omitempty"`

	// Any
	ProcessContents          *string  `json:"processContents,omitempty"`
	DisallowedNamespaceNames []string `json:"disallowedNamespaceNames,omitempty"`
}

func intPtr(v int) *int { return &v }

func newSequenceContentModel(items []ContentModel) ContentModel {
	return ContentModel{Kind: ContentModelSequence, Items: items, MinOccurs: intPtr(1), MaxOccurs: intPtr(1)}
}

func newChoiceContentModel(items []ContentModel) ContentModel {
	return ContentModel{Kind: ContentModelChoice, Items: items, MinOccurs: intPtr(0)}
}

func newAllContentModel(items []ContentModel) ContentModel {
	return ContentModel{Kind: ContentModelAll, Items: items}
}

func newLocalElementContentModel(elementRef int, minOccurs *int, maxOccurs *int) ContentModel {
	return ContentModel{Kind: ContentModelLocalElement, ElementRef: &elementRef, MinOccurs: minOccurs, MaxOccurs: maxOccurs}
}

func newEmptyContentModel(minOccurs, maxOccurs *int) ContentModel {
	return ContentModel{Kind: ContentModelEmpty, MinOccurs: minOccurs, MaxOccurs: maxOccurs}
}

// Attribute is one entry in the document's attributes array, grounded on
// original_source/format/src/formats/fonto/attribute.rs's Attribute. Use
// is stored as the already-rendered "required"/"optional" string rather
// than a bool, matching the original's custom (de)serializer.
type Attribute struct {
	Name          string  `json:"localName"`
	NamespaceURI  *string `json:"namespaceURI,omitempty"`
	Use           string  `json:"use"`
	SimpleTypeRef int     `json:"simpleTypeRef"`
	DefaultValue  *string `json:"defaultValue,omitempty"`
}

func newAttribute(name string, required bool, simpleTypeRef int, defaultValue *string) Attribute {
	use := "optional"
	if required {
		use = "required"
	}
	return Attribute{Name: name, Use: use, SimpleTypeRef: simpleTypeRef, DefaultValue: defaultValue}
}

// AnyAttrValidation mirrors
// original_source/format/src/formats/fonto/attribute.rs's
// AnyAttrValidation. WHAS has no wildcard-attribute construct yet (see
// DESIGN.md), so AnyAttrConf is never populated by Marshal; the type is
// kept for document-format parity.
type AnyAttrValidation string

const (
	AnyAttrSkip   AnyAttrValidation = "skip"
	AnyAttrLax    AnyAttrValidation = "lax"
	AnyAttrStrict AnyAttrValidation = "strict"
)

// AnyAttrConf configures wildcard-attribute validation.
type AnyAttrConf struct {
	DisallowedNamespaceNames []string          `json:"disallowedNamespaceNames,omitempty"`
	ProcessContents          AnyAttrValidation `json:"processContents"`
}

// Element is one entry in the document's elements or localElements array
// (the two arrays share this one shape), grounded on
// original_source/format/src/formats/fonto/element.rs's Element.
type Element struct {
	ContentModelRef int          `json:"contentModelRef"`
	SimpleTypeRef   *int         `json:"simpleTypeRef,omitempty"`
	AttributeRefs   []int        `json:"attributeRefs"`
	Name            string       `json:"localName"`
	NamespaceURI    *string      `json:"namespaceURI,omitempty"`
	IsMixed         bool         `json:"isMixed"`
	IsAbstract      bool         `json:"isAbstract"`
	AnyAttribute    *AnyAttrConf `json:"anyAttribute,omitempty"`
	MinOccurs       *int         `json:"minOccurs,omitempty"`
	MaxOccurs       *int         `json:"maxOccurs,omitempty"`
}

// Schema is the full Fonto JSON schema document, grounded on
// original_source/format/src/formats/fonto/schema.rs's Schema.
type Schema struct {
	Version       CompilerVersion `json:"version"`
	SimpleTypes   []SimpleType    `json:"simpleTypes"`
	Attributes    []Attribute     `json:"attributes"`
	ContentModels []ContentModel  `json:"contentModels"`
	Elements      []Element       `json:"elements"`
	LocalElements []Element       `json:"localElements"`
}
