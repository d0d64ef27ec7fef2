package fonto

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ParapluOU/whale-schema/internal/trace"
	"github.com/ParapluOU/whale-schema/model"
)

// Marshal renders schema as a Fonto JSON schema document, grounded on
// original_source/format/src/export/fonto.rs's FontoSchemaExporter. The
// walk order is fixed: simple types, then elements, then attributes, then
// any remaining groups unreached by an element's typing — matching
// export_schema exactly, since elements typically pull in their own
// content models and attributes as a side effect of being exported, and
// the final group pass only catches definitions otherwise unused by any
// element (kept for importing by other schemas).
func Marshal(ctx context.Context, schema *model.Schema, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	op := trace.Begin(ctx, cfg.logger, "whas.export.fonto")
	var err error
	defer func() { op.End(err) }()

	e := newExporter(schema)

	for _, st := range schema.AllSimpleTypes() {
		if _, err = e.exportSimpleType(st); err != nil {
			return nil, fmt.Errorf("fonto: export simple type: %w", err)
		}
	}

	for _, se := range schema.SortedElements() {
		if _, err = e.exportElement(se.Ref, se.Value); err != nil {
			return nil, fmt.Errorf("fonto: export element %q: %w", se.Value.Name, err)
		}
	}

	for _, a := range schema.AllAttributes() {
		if _, err = e.exportAttribute(a); err != nil {
			return nil, fmt.Errorf("fonto: export attribute %q: %w", a.Name, err)
		}
	}

	for _, g := range schema.AllGroups() {
		if _, err = e.exportContentModel(g); err != nil {
			return nil, fmt.Errorf("fonto: export content model: %w", err)
		}
	}

	e.doc.Version = cfg.compilerVersion

	var data []byte
	if cfg.indent != "" {
		data, err = json.MarshalIndent(e.doc, "", cfg.indent)
	} else {
		data, err = json.Marshal(e.doc)
	}
	if err != nil {
		return nil, fmt.Errorf("fonto: marshal: %w", err)
	}
	return data, nil
}

// Write renders schema as Fonto JSON and writes it to w.
func Write(ctx context.Context, w io.Writer, schema *model.Schema, opts ...Option) (int64, error) {
	data, err := Marshal(ctx, schema, opts...)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	n, err := bw.Write(data)
	if err == nil {
		err = bw.Flush()
	}
	if err == nil && n < len(data) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), err
}

// exporter walks a model.Schema once, assigning each distinct entity (by
// content hash, not by ObjectId — two Refs minted from separate Register
// calls can resolve to the one interned entity) a stable index in its
// array and caching that assignment to avoid duplicate emission.
type exporter struct {
	schema   *model.Schema
	exported map[model.StructuralHash]int
	doc      Schema
}

func newExporter(schema *model.Schema) *exporter {
	return &exporter{
		schema:   schema,
		exported: make(map[model.StructuralHash]int),
		doc: Schema{
			ContentModels: []ContentModel{newEmptyContentModel(intPtr(1), intPtr(1))},
		},
	}
}

// emptyContentModelIdx returns the index of the placeholder Empty content
// model reserved at construction time, per
// original_source/format/src/formats/fonto/schema.rs's
// `get_content_model_empty_idx`.
func (e *exporter) emptyContentModelIdx() int { return 0 }

func (e *exporter) exportSimpleType(st model.SimpleType) (int, error) {
	hash := st.Hash()
	if idx, ok := e.exported[hash]; ok {
		return idx, nil
	}

	var doc SimpleType
	switch st.Kind {
	case model.SimpleTypeBuiltin:
		doc = newBuiltinSimpleType(fontoPrimitiveName(st.Name))

	case model.SimpleTypeDerived:
		base, ok := e.schema.SimpleType(st.Base)
		if !ok {
			return 0, fmt.Errorf("unresolved base simple type")
		}
		baseIdx, err := e.exportSimpleType(base)
		if err != nil {
			return 0, err
		}
		doc = newDerivedSimpleType(baseIdx, restrictionsFromModel(st.Restrictions))

	case model.SimpleTypeUnion:
		members := make([]int, 0, len(st.Members))
		for _, ref := range st.Members {
			member, ok := e.schema.SimpleType(ref)
			if !ok {
				return 0, fmt.Errorf("unresolved union member simple type")
			}
			idx, err := e.exportSimpleType(member)
			if err != nil {
				return 0, err
			}
			members = append(members, idx)
		}
		doc = newUnionSimpleType(members)

	case model.SimpleTypeList:
		item, ok := e.schema.SimpleType(st.Item)
		if !ok {
			return 0, fmt.Errorf("unresolved list item simple type")
		}
		itemIdx, err := e.exportSimpleType(item)
		if err != nil {
			return 0, err
		}
		doc = newListSimpleType(itemIdx, st.Separator)

	default:
		return 0, fmt.Errorf("unknown simple type kind %d", st.Kind)
	}

	idx := len(e.doc.SimpleTypes)
	e.doc.SimpleTypes = append(e.doc.SimpleTypes, doc)
	e.exported[hash] = idx
	return idx, nil
}

func (e *exporter) exportAttribute(a model.Attribute) (int, error) {
	hash := a.Hash()
	if idx, ok := e.exported[hash]; ok {
		return idx, nil
	}

	typing, ok := e.schema.SimpleType(a.Typing)
	if !ok {
		return 0, fmt.Errorf("attribute %q: unresolved typing", a.Name)
	}
	typeIdx, err := e.exportSimpleType(typing)
	if err != nil {
		return 0, err
	}

	idx := len(e.doc.Attributes)
	e.doc.Attributes = append(e.doc.Attributes, newAttribute(a.Name, a.Required, typeIdx, a.DefaultValue))
	e.exported[hash] = idx
	return idx, nil
}

// exportElement mirrors export_element: like the original, it checks the
// cache only at entry and inserts only once the element is fully built, so
// a directly self-referential element (one whose own content model
// contains itself) can be re-entered and built twice before the outer call
// finishes, leaving one redundant-but-valid entry in elements/localElements
// and the later write winning the cache slot. This is a faithful port of
// original_source/format/src/export/fonto.rs's own recursion shape, not an
// independent design choice; see DESIGN.md.
func (e *exporter) exportElement(ref model.Ref[model.Element], el model.Element) (int, error) {
	hash := el.Hash()
	if idx, ok := e.exported[hash]; ok {
		return idx, nil
	}

	attrs := el.GroupMergedAttributes(e.schema)
	attrRefs := make([]int, 0, len(attrs))
	for _, name := range attrs.Names() {
		attrRef := attrs[name]
		attr, ok := e.schema.Attribute(attrRef)
		if !ok {
			return 0, fmt.Errorf("element %q: unresolved attribute %q", el.Name, name)
		}
		idx, err := e.exportAttribute(attr)
		if err != nil {
			return 0, err
		}
		attrRefs = append(attrRefs, idx)
	}

	doc := Element{
		Name:          el.Name,
		AttributeRefs: attrRefs,
		IsMixed:       el.Typing.IsMixedContent(e.schema),
		MinOccurs:     intPtr(el.MinOccurs()),
	}
	if max, bounded := el.MaxOccurs(); bounded {
		doc.MaxOccurs = intPtr(max)
	}

	switch el.Typing.Kind {
	case model.TypeRefGroup:
		g, ok := e.schema.Group(el.Typing.Group)
		if !ok {
			return 0, fmt.Errorf("element %q: unresolved group typing", el.Name)
		}
		cmIdx, err := e.exportContentModel(g)
		if err != nil {
			return 0, err
		}
		doc.ContentModelRef = cmIdx

	case model.TypeRefSimple:
		st, ok := e.schema.SimpleType(el.Typing.Simple)
		if !ok {
			return 0, fmt.Errorf("element %q: unresolved simple typing", el.Name)
		}
		stIdx, err := e.exportSimpleType(st)
		if err != nil {
			return 0, err
		}
		doc.SimpleTypeRef = intPtr(stIdx)
		// Fonto rejects a non-mixed element whose children are validated
		// purely by a SimpleType; see
		// original_source/format/src/export/fonto.rs's export_element.
		doc.IsMixed = true
		doc.ContentModelRef = e.emptyContentModelIdx()

	default:
		return 0, fmt.Errorf("element %q: unknown typing kind %d", el.Name, el.Typing.Kind)
	}

	var idx int
	if e.isLocal(ref) {
		idx = len(e.doc.LocalElements)
		e.doc.LocalElements = append(e.doc.LocalElements, doc)
	} else {
		idx = len(e.doc.Elements)
		e.doc.Elements = append(e.doc.Elements, doc)
	}
	e.exported[hash] = idx
	return idx, nil
}

// isLocal reports whether ref appears, directly or through a nested group,
// within some group's content model, per
// original_source/format/src/model/element.rs's `is_local`.
func (e *exporter) isLocal(ref model.Ref[model.Element]) bool {
	for _, g := range e.schema.AllGroups() {
		if g.ContainsElement(ref, e.schema) {
			return true
		}
	}
	return false
}

// exportContentModel allocates an index for g, pre-caching it before
// recursing so that a group whose own content model refers back to itself
// (through a cycle of nested groups) resolves to the same index rather
// than looping forever, per
// original_source/format/src/export/fonto.rs's export_content_model.
func (e *exporter) exportContentModel(g model.Group) (int, error) {
	hash := g.Hash()
	if idx, ok := e.exported[hash]; ok {
		return idx, nil
	}

	idx := len(e.doc.ContentModels)
	e.doc.ContentModels = append(e.doc.ContentModels, ContentModel{})
	e.exported[hash] = idx

	cm, err := e.createContentModel(g)
	if err != nil {
		return 0, err
	}
	e.doc.ContentModels[idx] = cm

	return idx, nil
}

// createContentModel builds g's content model body by walking its Items in
// order. There is no distinct "local only" variant here, the same
// simplification export/xsd's exportGroupContent makes: the original's
// create_content_model recurses into nested GroupItem::Group entries via
// itself, so one function covers both cases.
func (e *exporter) createContentModel(g model.Group) (ContentModel, error) {
	items := make([]ContentModel, 0, len(g.Items))
	for _, item := range g.Items {
		switch item.Kind {
		case model.GroupItemElement:
			el, ok := e.schema.Element(item.Element)
			if !ok {
				return ContentModel{}, fmt.Errorf("unresolved group item element")
			}
			pos, err := e.exportElement(item.Element, el)
			if err != nil {
				return ContentModel{}, err
			}
			var maxOccurs *int
			if max, bounded := el.MaxOccurs(); bounded {
				maxOccurs = intPtr(max)
			}
			items = append(items, newLocalElementContentModel(pos, intPtr(el.MinOccurs()), maxOccurs))

		case model.GroupItemGroup:
			nested, ok := e.schema.Group(item.Group)
			if !ok {
				return ContentModel{}, fmt.Errorf("unresolved group item group")
			}
			cm, err := e.createContentModel(nested)
			if err != nil {
				return ContentModel{}, err
			}
			items = append(items, cm)

		default:
			return ContentModel{}, fmt.Errorf("unknown group item kind %d", item.Kind)
		}
	}

	switch g.Kind {
	case model.GroupChoice:
		return newChoiceContentModel(items), nil
	case model.GroupAll:
		return newAllContentModel(items), nil
	default:
		return newSequenceContentModel(items), nil
	}
}

func restrictionsFromModel(r model.Restrictions) Restrictions {
	out := Restrictions{
		Length:         r.Length,
		MinLength:      r.MinLength,
		MaxLength:      r.MaxLength,
		Pattern:        r.Pattern,
		Enumeration:    r.Enumeration,
		MinInclusive:   r.MinInclusive,
		MaxInclusive:   r.MaxInclusive,
		MinExclusive:   r.MinExclusive,
		MaxExclusive:   r.MaxExclusive,
		TotalDigits:    r.TotalDigits,
		FractionDigits: r.FractionDigits,
	}
	if r.WhiteSpace != nil {
		ws := r.WhiteSpace.String()
		out.WhiteSpace = &ws
	}
	return out
}
