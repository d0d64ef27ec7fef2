package compile

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/model"
)

// compileAttributeList compiles a set of attribute declarations into a
// name-keyed model.Attributes, per SPEC_FULL.md §4.2.2. A repeated name
// within the same list is E_DUPLICATE_ATTRIBUTE.
func (c *compiler) compileAttributeList(decls []*ast.AttributeDecl) (model.Attributes, bool) {
	attrs := make(model.Attributes, len(decls))
	ok := true
	for _, ad := range decls {
		if _, exists := attrs[ad.Name]; exists {
			c.errorf(ad.NameSpan, diag.E_DUPLICATE_ATTRIBUTE, "attribute %q is declared more than once", ad.Name)
			ok = false
			continue
		}
		ref, aok := c.compileAttribute(ad)
		if !aok {
			ok = false
			continue
		}
		attrs[ad.Name] = ref
	}
	return attrs, ok
}

// compileAttribute compiles a single `@name[?][: typing]` declaration. A
// typing omitted from source defaults to the schema's String type.
func (c *compiler) compileAttribute(ad *ast.AttributeDecl) (model.Ref[model.Attribute], bool) {
	var typing model.Ref[model.SimpleType]
	if ad.Typing == nil {
		typing = c.schema.DefaultSimpleType()
	} else {
		ref, ok := c.compileSimpleTyping(ad.Typing, diag.E_ATTRIBUTE_HAS_GROUP_TYPE)
		if !ok {
			return model.Ref[model.Attribute]{}, false
		}
		typing = ref
	}
	a := model.Attribute{
		Name:     ad.Name,
		Required: !ad.Optional,
		Typing:   typing,
	}
	return c.schema.RegisterAttribute(a), true
}
