package compile

import (
	"strconv"
	"strings"

	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/model"
)

// compileFacets lowers a parsed facet list onto base's ultimate builtin
// primitive, per SPEC_FULL.md §4.2.4: shorthand ranges are interpreted
// according to that primitive's category (String gets length facets; the
// numeric primitives get value-range facets; anything else rejects
// shorthand outright), while named facets map onto Restrictions fields
// directly regardless of base kind.
func (c *compiler) compileFacets(facets *ast.FacetsDecl, base model.Ref[model.SimpleType]) (model.Restrictions, bool) {
	var r model.Restrictions
	ok := true
	kind, hasKind := c.ultimateBuiltinKind(base)

	for _, item := range facets.Items {
		if item.IsShorthand() {
			if !hasKind {
				c.errorf(item.Span, diag.E_UNSUPPORTED_SHORTHAND,
					"shorthand facet %q requires a builtin base type", item.ShorthandText)
				ok = false
				continue
			}
			if !c.applyShorthandFacet(&r, kind, item) {
				ok = false
			}
			continue
		}
		if !c.applyNamedFacet(&r, item) {
			ok = false
		}
	}
	return r, ok
}

// ultimateBuiltinKind walks a chain of Derived SimpleTypes down to their
// Builtin root, returning its Primitive. Union and List bases, or a cycle,
// report false.
func (c *compiler) ultimateBuiltinKind(ref model.Ref[model.SimpleType]) (model.Primitive, bool) {
	seen := make(map[model.ObjectId]bool)
	cur := ref
	for {
		if seen[cur.ID()] {
			return 0, false
		}
		seen[cur.ID()] = true
		st, ok := c.schema.SimpleType(cur)
		if !ok {
			return 0, false
		}
		switch st.Kind {
		case model.SimpleTypeBuiltin:
			return st.Name, true
		case model.SimpleTypeDerived:
			cur = st.Base
		default:
			return 0, false
		}
	}
}

func (c *compiler) applyShorthandFacet(r *model.Restrictions, kind model.Primitive, item *ast.FacetItem) bool {
	lo, hi, hasLo, hasHi, ok := splitShorthandRange(item.ShorthandText)
	exact := !ok && item.ShorthandText != ""
	if exact {
		// A bare value `a` fixes both bounds to a.
		lo, hi, hasLo, hasHi, ok = item.ShorthandText, item.ShorthandText, true, true, true
	}
	if !ok {
		c.errorf(item.Span, diag.E_UNSUPPORTED_SHORTHAND, "malformed shorthand range %q", item.ShorthandText)
		return false
	}
	switch kind {
	case model.PrimitiveString:
		if exact {
			n, err := strconv.Atoi(lo)
			if err != nil {
				c.errorf(item.Span, diag.E_UNSUPPORTED_SHORTHAND, "length shorthand %q is not an integer", item.ShorthandText)
				return false
			}
			r.Length = &n
			return true
		}
		if hasLo {
			n, err := strconv.Atoi(lo)
			if err != nil {
				c.errorf(item.Span, diag.E_UNSUPPORTED_SHORTHAND, "length shorthand %q is not an integer", item.ShorthandText)
				return false
			}
			r.MinLength = &n
		}
		if hasHi {
			n, err := strconv.Atoi(hi)
			if err != nil {
				c.errorf(item.Span, diag.E_UNSUPPORTED_SHORTHAND, "length shorthand %q is not an integer", item.ShorthandText)
				return false
			}
			r.MaxLength = &n
		}
		return true
	case model.PrimitiveInt, model.PrimitiveShort, model.PrimitiveFloat, model.PrimitiveDouble, model.PrimitiveDecimal:
		if hasLo {
			v := lo
			r.MinInclusive = &v
		}
		if hasHi {
			v := hi
			r.MaxInclusive = &v
		}
		return true
	default:
		c.errorf(item.Span, diag.E_UNSUPPORTED_SHORTHAND, "shorthand ranges are not supported on %s", kind)
		return false
	}
}

// splitShorthandRange parses "lo..hi", "..hi", or "lo.." into its bounds.
func splitShorthandRange(text string) (lo, hi string, hasLo, hasHi, ok bool) {
	idx := strings.Index(text, "..")
	if idx < 0 {
		return "", "", false, false, false
	}
	lo, hi = text[:idx], text[idx+2:]
	return lo, hi, lo != "", hi != "", true
}

func (c *compiler) applyNamedFacet(r *model.Restrictions, item *ast.FacetItem) bool {
	text, ok := facetValueText(item.Value)
	if !ok {
		c.internalErrorf(item.Span, "facet %q has no value", item.Name)
		return false
	}

	asInt := func() (int, bool) {
		n, err := strconv.Atoi(text)
		if err != nil {
			c.errorf(item.Span, diag.E_UNKNOWN_FACET, "facet %q expects an integer, got %q", item.Name, text)
			return 0, false
		}
		return n, true
	}

	switch item.Name {
	case "length":
		n, ok := asInt()
		if !ok {
			return false
		}
		r.Length = &n
	case "minLength":
		n, ok := asInt()
		if !ok {
			return false
		}
		r.MinLength = &n
	case "maxLength":
		n, ok := asInt()
		if !ok {
			return false
		}
		r.MaxLength = &n
	case "pattern":
		r.Pattern = &text
	case "enumeration":
		r.Enumeration = append(r.Enumeration, text)
	case "whiteSpace":
		var w model.WhiteSpaceHandling
		switch text {
		case "preserve":
			w = model.WhiteSpacePreserve
		case "replace":
			w = model.WhiteSpaceReplace
		case "collapse":
			w = model.WhiteSpaceCollapse
		default:
			c.errorf(item.Span, diag.E_BAD_WHITESPACE_VALUE, "whiteSpace must be preserve, replace, or collapse, got %q", text)
			return false
		}
		r.WhiteSpace = &w
	case "minInclusive":
		r.MinInclusive = &text
	case "maxInclusive":
		r.MaxInclusive = &text
	case "minExclusive":
		r.MinExclusive = &text
	case "maxExclusive":
		r.MaxExclusive = &text
	case "totalDigits":
		n, ok := asInt()
		if !ok {
			return false
		}
		r.TotalDigits = &n
	case "fractionDigits":
		n, ok := asInt()
		if !ok {
			return false
		}
		r.FractionDigits = &n
	default:
		c.errorf(item.NameSpan, diag.E_UNKNOWN_FACET, "unknown facet %q", item.Name)
		return false
	}
	return true
}

func facetValueText(v *ast.FacetValue) (string, bool) {
	if v == nil {
		return "", false
	}
	switch v.Kind {
	case ast.FacetValueString:
		if v.String == nil {
			return "", false
		}
		return v.String.Value, true
	case ast.FacetValueNumber:
		if v.Number == nil {
			return "", false
		}
		return v.Number.Text, true
	case ast.FacetValueRegex:
		if v.Regex == nil {
			return "", false
		}
		return v.Regex.Pattern, true
	default:
		return "", false
	}
}
