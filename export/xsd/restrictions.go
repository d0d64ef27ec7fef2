package xsd

import (
	"strconv"

	"github.com/ParapluOU/whale-schema/model"
)

// exportRestrictions renders r's set facets as xs:restriction children, in
// the fixed order original_source/format/src/export/xsd.rs's
// export_restrictions uses (enumeration first, in authored order, then
// length/minLength/maxLength, pattern, whiteSpace, the four numeric range
// facets, then totalDigits/fractionDigits), regardless of the order the
// source declared them in.
func exportRestrictions(r model.Restrictions) []*elem {
	var facets []*elem

	for _, v := range r.Enumeration {
		facets = append(facets, newElem("xs:enumeration").attr("value", v))
	}
	if r.Length != nil {
		facets = append(facets, intFacet("xs:length", *r.Length))
	}
	if r.MinLength != nil {
		facets = append(facets, intFacet("xs:minLength", *r.MinLength))
	}
	if r.MaxLength != nil {
		facets = append(facets, intFacet("xs:maxLength", *r.MaxLength))
	}
	if r.Pattern != nil {
		facets = append(facets, newElem("xs:pattern").attr("value", *r.Pattern))
	}
	if r.WhiteSpace != nil {
		facets = append(facets, newElem("xs:whiteSpace").attr("value", r.WhiteSpace.String()))
	}
	if r.MinInclusive != nil {
		facets = append(facets, newElem("xs:minInclusive").attr("value", *r.MinInclusive))
	}
	if r.MaxInclusive != nil {
		facets = append(facets, newElem("xs:maxInclusive").attr("value", *r.MaxInclusive))
	}
	if r.MinExclusive != nil {
		facets = append(facets, newElem("xs:minExclusive").attr("value", *r.MinExclusive))
	}
	if r.MaxExclusive != nil {
		facets = append(facets, newElem("xs:maxExclusive").attr("value", *r.MaxExclusive))
	}
	if r.TotalDigits != nil {
		facets = append(facets, intFacet("xs:totalDigits", *r.TotalDigits))
	}
	if r.FractionDigits != nil {
		facets = append(facets, intFacet("xs:fractionDigits", *r.FractionDigits))
	}

	return facets
}

func intFacet(name string, value int) *elem {
	return newElem(name).attr("value", strconv.Itoa(value))
}
