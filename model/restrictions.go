package model

// WhiteSpaceHandling is the XSD whiteSpace facet's handling mode, per
// original_source/format/src/model/restriction.rs.
type WhiteSpaceHandling uint8

const (
	WhiteSpacePreserve WhiteSpaceHandling = iota
	WhiteSpaceReplace
	WhiteSpaceCollapse
)

func (w WhiteSpaceHandling) String() string {
	switch w {
	case WhiteSpacePreserve:
		return "preserve"
	case WhiteSpaceReplace:
		return "replace"
	case WhiteSpaceCollapse:
		return "collapse"
	default:
		return "preserve"
	}
}

// Restrictions is the full set of facets a Derived SimpleType may apply to
// its base, grounded field-for-field on
// original_source/format/src/model/restriction.rs's
// `SimpleTypeRestriction`. Every field is optional; a nil pointer means the
// facet is absent. MinInclusive/MaxInclusive/MinExclusive/MaxExclusive are
// kept as strings rather than a numeric type to preserve arbitrary decimal
// precision across the compile→export boundary, exactly as the original
// does.
type Restrictions struct {
	Length         *int
	MinLength      *int
	MaxLength      *int
	Pattern        *string
	Enumeration    []string
	WhiteSpace     *WhiteSpaceHandling
	MinInclusive   *string
	MaxInclusive   *string
	MinExclusive   *string
	MaxExclusive   *string
	TotalDigits    *int
	FractionDigits *int
}

// IsEmpty reports whether no facet is set.
func (r Restrictions) IsEmpty() bool {
	return r.Length == nil && r.MinLength == nil && r.MaxLength == nil &&
		r.Pattern == nil && len(r.Enumeration) == 0 && r.WhiteSpace == nil &&
		r.MinInclusive == nil && r.MaxInclusive == nil &&
		r.MinExclusive == nil && r.MaxExclusive == nil &&
		r.TotalDigits == nil && r.FractionDigits == nil
}

func (h *hasher) WriteRestrictions(r Restrictions) *hasher {
	h.WriteOptionalInt(r.Length)
	h.WriteOptionalInt(r.MinLength)
	h.WriteOptionalInt(r.MaxLength)
	h.WriteOptionalString(r.Pattern)
	h.WriteUint64(uint64(len(r.Enumeration)))
	for _, v := range r.Enumeration {
		h.WriteString(v)
	}
	if r.WhiteSpace != nil {
		h.WriteUint64(uint64(*r.WhiteSpace) + 1)
	} else {
		h.WriteUint64(0)
	}
	h.WriteOptionalString(r.MinInclusive)
	h.WriteOptionalString(r.MaxInclusive)
	h.WriteOptionalString(r.MinExclusive)
	h.WriteOptionalString(r.MaxExclusive)
	h.WriteOptionalInt(r.TotalDigits)
	h.WriteOptionalInt(r.FractionDigits)
	return h
}
