// Package xsd exports a compiled model.Schema as XSD 1.0, grounded on
// original_source/format/src/export/xsd.rs's XsdExporter. Output is
// deterministic: named types, groups, and elements are visited in sorted
// order, and facet children within a restriction are emitted in a fixed
// order regardless of authoring order.
//
// The document shape is too irregular and position-sensitive for
// encoding/xml's struct-tag marshaling to drive end to end (the same
// element kind needs a complexType child here, a bare type attribute
// there, an inline anonymous simpleType somewhere else, all decided by the
// referenced type's own shape). Instead this package builds an explicit
// tree of elements, the same technique the original reaches for with
// xmltree::Element, and serializes it with a small writer that uses
// encoding/xml.EscapeText for attribute and text value escaping only.
package xsd
