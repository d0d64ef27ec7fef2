package fonto

import "github.com/ParapluOU/whale-schema/model"

// primitiveNames maps every model.Primitive to its Fonto builtin simple
// type name, grounded on
// original_source/format/src/formats/fonto/primitive.rs's
// `From<&model::PrimitiveType> for fonto::Primitive` together with that
// enum's serde renames. Unlike the XSD exporter's primitive table, this
// mapping is exhaustive and unambiguous in the original: every
// model.Primitive has exactly one Fonto name, including IntNonNeg (which
// the XSD table had to resolve by convention).
var primitiveNames = map[model.Primitive]string{
	model.PrimitiveString:        "string",
	model.PrimitiveURI:           "anyURI",
	model.PrimitiveAnySimpleType: "anySimpleType",
	model.PrimitiveDate:          "date",
	model.PrimitiveDateTime:      "dateTime",
	model.PrimitiveDateTimestamp: "dateTimeStamp",
	model.PrimitiveTime:          "time",
	model.PrimitiveDuration:      "duration",
	model.PrimitiveBool:          "boolean",
	model.PrimitiveInt:           "integer",
	model.PrimitiveFloat:         "float",
	model.PrimitiveDouble:        "double",
	model.PrimitiveShort:         "short",
	model.PrimitiveDecimal:       "decimal",
	model.PrimitiveID:            "ID",
	model.PrimitiveIDRef:         "IDREF",
	model.PrimitiveIDRefs:        "IDREFS",
	model.PrimitiveLang:          "language",
	model.PrimitiveName:          "Name",
	model.PrimitiveNoColName:     "NCName",
	model.PrimitiveIntNeg:        "negativeInteger",
	model.PrimitiveIntNonNeg:     "nonNegativeInteger",
	model.PrimitiveIntPos:        "positiveInteger",
	model.PrimitiveUnsignedLong:  "unsignedLong",
	model.PrimitiveBase64Binary:  "base64Binary",
	model.PrimitiveToken:         "token",
	model.PrimitiveNameToken:     "NMTOKEN",
	model.PrimitiveNameTokens:    "NMTOKENS",
}

func fontoPrimitiveName(p model.Primitive) string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return p.String()
}
