package xsd

import (
	"bufio"
	"encoding/xml"
	"io"
)

// elem is a generic, ordered XML element node, grounded on
// original_source/format/src/export/xsd.rs's ElementExt trait over
// xmltree::Element: attributes and children are appended in the exact
// order the exporter wants them to appear, and that order is preserved
// verbatim through serialization.
type elem struct {
	name     string
	attrs    []attr
	children []*elem
}

type attr struct {
	name  string
	value string
}

// newElem starts a new element with the given tag (already carrying any
// "xs:" prefix the caller wants).
func newElem(name string) *elem {
	return &elem{name: name}
}

// attr appends an attribute and returns the receiver, for fluent chaining
// in the style of the original's with_attr.
func (e *elem) attr(name, value string) *elem {
	e.attrs = append(e.attrs, attr{name: name, value: value})
	return e
}

// child appends a child element and returns the receiver, mirroring
// with_child. A nil child is a no-op, so callers can build conditionally
// without an extra branch at the call site.
func (e *elem) child(c *elem) *elem {
	if c == nil {
		return e
	}
	e.children = append(e.children, c)
	return e
}

// writeTo serializes the tree with indent as the per-depth indentation
// unit ("" for compact output). Attribute and text values are escaped via
// encoding/xml.EscapeText, the one piece of the standard library this
// exporter leans on.
func (e *elem) writeTo(w io.Writer, indent string) error {
	bw := bufio.NewWriter(w)
	e.write(bw, indent, 0)
	return bw.Flush()
}

func (e *elem) write(w *bufio.Writer, indent string, depth int) {
	writeIndent(w, indent, depth)
	w.WriteByte('<')
	w.WriteString(e.name)
	for _, a := range e.attrs {
		w.WriteByte(' ')
		w.WriteString(a.name)
		w.WriteString(`="`)
		xml.EscapeText(w, []byte(a.value))
		w.WriteByte('"')
	}
	if len(e.children) == 0 {
		w.WriteString("/>")
		if indent != "" {
			w.WriteByte('\n')
		}
		return
	}
	w.WriteByte('>')
	if indent != "" {
		w.WriteByte('\n')
	}
	for _, c := range e.children {
		c.write(w, indent, depth+1)
	}
	writeIndent(w, indent, depth)
	w.WriteString("</")
	w.WriteString(e.name)
	w.WriteByte('>')
	if indent != "" {
		w.WriteByte('\n')
	}
}

func writeIndent(w *bufio.Writer, indent string, depth int) {
	if indent == "" {
		return
	}
	for i := 0; i < depth; i++ {
		w.WriteString(indent)
	}
}
