package compile

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/model"
)

// compileElement compiles a single element declaration per SPEC_FULL.md
// §4.2.3: its own attributes (not yet merged with any referenced group's),
// its duplicity, and its typing — either complex content (a Block, compiled
// to an anonymous Group, or a Typing that is a bare name of a block type,
// which references that type's Group) or simple content (a Typing,
// defaulting to String when omitted entirely).
func (c *compiler) compileElement(decl *ast.ElementDecl) (model.Ref[model.Element], bool) {
	attrs, ok := c.compileAttributeList(decl.Attributes)
	duplicity := model.DuplicityFromAST(decl.Duplicity)

	var typing model.TypeRef
	switch {
	case decl.IsComplex():
		g, gok := c.compileGroupFromBlock(decl.Block, model.Attributes{}, nil)
		if !gok {
			ok = false
		} else {
			typing = model.NewGroupTypeRef(c.schema.RegisterGroup(g))
		}
	case decl.Typing != nil:
		if item := decl.Typing.Compound.First(); item != nil && item.TypeName != nil &&
			item.TypeName.Facets == nil && !item.TypeName.IsGeneric() && !decl.Typing.Compound.IsCompound() {
			tr, rok := c.resolveTypeName(item.TypeName.Name, item.TypeName.Span)
			if !rok {
				ok = false
				break
			}
			if tr.Kind == model.TypeRefGroup {
				typing = tr
				break
			}
		}
		ref, tok := c.compileSimpleTyping(decl.Typing, diag.E_INVARIANT_VIOLATION)
		if !tok {
			ok = false
		} else {
			typing = model.NewSimpleTypeRef(ref)
		}
	default:
		typing = model.NewSimpleTypeRef(c.schema.DefaultSimpleType())
	}

	if !ok {
		return model.Ref[model.Element]{}, false
	}

	e := model.Element{
		Name:       decl.Name,
		Attributes: attrs,
		Duplicity:  duplicity,
		Typing:     typing,
	}
	return c.schema.RegisterElement(e), true
}
