// Package fonto exports a compiled model.Schema as a Fonto JSON schema
// document, grounded on original_source/format/src/export/fonto.rs's
// FontoSchemaExporter and the document shape in
// original_source/format/src/formats/fonto.
//
// Unlike the XSD exporter, the Fonto format resolves every cross-reference
// to a plain integer offset into one of five positional arrays
// (simpleTypes, attributes, contentModels, elements, localElements), so the
// output is a flat, already-resolved index structure well suited to
// encoding/json's struct-tag marshaling rather than a hand-built element
// tree. The walk allocates indices lazily: the first time an entity is
// encountered it gets a slot, and a model.ObjectId -> index cache (keyed by
// the entity's StructuralHash so two Refs to the same interned entity
// share one slot) prevents re-exporting it and lets cyclic content models
// resolve through a forward reference. A placeholder "empty" content model
// is always reserved at index 0 so that elements typed by a SimpleType
// (which have no content model of their own) can still point somewhere.
package fonto
