package model

import "fmt"

// Primitive enumerates the fixed builtin simple types every Schema
// pre-registers before compiling any source. The identifier set and its
// XSD-facing names are grounded on
// original_source/format/src/model/primitive.rs's `PrimitiveType` enum.
type Primitive uint8

const (
	PrimitiveString Primitive = iota
	PrimitiveURI
	PrimitiveDateTimestamp
	PrimitiveDateTime
	PrimitiveDate
	PrimitiveTime
	PrimitiveDuration
	PrimitiveBool
	PrimitiveInt
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveShort
	PrimitiveDecimal
	PrimitiveIDRefs
	PrimitiveIDRef
	PrimitiveID
	PrimitiveLang
	PrimitiveNoColName
	PrimitiveIntNeg
	PrimitiveIntNonNeg
	PrimitiveIntPos
	PrimitiveToken
	PrimitiveNameTokens
	PrimitiveNameToken
	PrimitiveName
	PrimitiveBase64Binary
	PrimitiveUnsignedLong
	PrimitiveAnySimpleType
)

// Primitives lists every primitive in declaration order, which is also the
// order Schema pre-registration walks when seeding the simple-type table.
var Primitives = []Primitive{
	PrimitiveString, PrimitiveURI, PrimitiveDateTimestamp, PrimitiveDateTime,
	PrimitiveDate, PrimitiveTime, PrimitiveDuration, PrimitiveBool,
	PrimitiveInt, PrimitiveFloat, PrimitiveDouble, PrimitiveShort,
	PrimitiveDecimal, PrimitiveIDRefs, PrimitiveIDRef, PrimitiveID,
	PrimitiveLang, PrimitiveNoColName, PrimitiveIntNeg, PrimitiveIntNonNeg,
	PrimitiveIntPos, PrimitiveToken, PrimitiveNameTokens, PrimitiveNameToken,
	PrimitiveName, PrimitiveBase64Binary, PrimitiveUnsignedLong,
	PrimitiveAnySimpleType,
}

var primitiveNames = map[Primitive]string{
	PrimitiveString:        "String",
	PrimitiveURI:           "URI",
	PrimitiveDateTimestamp: "DateTimestamp",
	PrimitiveDateTime:      "DateTime",
	PrimitiveDate:          "Date",
	PrimitiveTime:          "Time",
	PrimitiveDuration:      "Duration",
	PrimitiveBool:          "Bool",
	PrimitiveInt:           "Int",
	PrimitiveFloat:         "Float",
	PrimitiveDouble:        "Double",
	PrimitiveShort:         "Short",
	PrimitiveDecimal:       "Decimal",
	PrimitiveIDRefs:        "IDRefs",
	PrimitiveIDRef:         "IDRef",
	PrimitiveID:            "ID",
	PrimitiveLang:          "Lang",
	PrimitiveNoColName:     "NoColName",
	PrimitiveIntNeg:        "IntNeg",
	PrimitiveIntNonNeg:     "IntNonNeg",
	PrimitiveIntPos:        "IntPos",
	PrimitiveToken:         "Token",
	PrimitiveNameTokens:    "NameTokens",
	PrimitiveNameToken:     "NameToken",
	PrimitiveName:          "Name",
	PrimitiveBase64Binary:  "Base64Binary",
	PrimitiveUnsignedLong:  "UnsignedLong",
	PrimitiveAnySimpleType: "AnySimpleType",
}

var namesToPrimitive = func() map[string]Primitive {
	m := make(map[string]Primitive, len(primitiveNames))
	for p, name := range primitiveNames {
		m[name] = p
	}
	return m
}()

// String returns the primitive's WHAS source-level identifier.
func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Primitive(%d)", uint8(p))
}

// ParsePrimitive resolves a WHAS type-name token to a Primitive, handling
// the source-level aliases original_source/format/src/model/primitive.rs's
// `From<&ast::Primitive>` recognizes: `+Int`/`-Int` for the signed-int
// shorthands, `Boolean` for `Bool`, `Integer` for `Int`, and a `[X]` literal
// resolving to the plural form `Xs` (used by list-shorthand syntax).
func ParsePrimitive(name string) (Primitive, bool) {
	switch name {
	case "+Int":
		return PrimitiveIntPos, true
	case "-Int":
		return PrimitiveIntNeg, true
	case "Boolean":
		return PrimitiveBool, true
	case "Integer":
		return PrimitiveInt, true
	}
	if len(name) >= 2 && name[0] == '[' && name[len(name)-1] == ']' {
		plural := name[1:len(name)-1] + "s"
		p, ok := namesToPrimitive[plural]
		return p, ok
	}
	p, ok := namesToPrimitive[name]
	return p, ok
}
