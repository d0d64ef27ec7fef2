package compile

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/model"
)

// compileBlockDefinition compiles a top-level block-form type definition:
// its own attributes, its inheritance clause (with cycle and
// simple-base detection), and its content model.
func (c *compiler) compileBlockDefinition(name string, decl *ast.TypeDecl) (model.Group, bool) {
	attrs, aok := c.compileAttributeList(decl.Attributes)

	var base *model.Ref[model.Group]
	baseOK := true
	if decl.Inheritance != nil && decl.Inheritance.Base != nil {
		if !c.checkInheritanceCycle(name) {
			c.errorf(decl.Inheritance.Base.Span, diag.E_CIRCULAR_INHERITANCE,
				"inheritance chain starting at %q is circular", name)
			baseOK = false
		} else {
			baseRef, ok := c.resolveTypeName(decl.Inheritance.Base.Name, decl.Inheritance.Base.Span)
			if !ok {
				baseOK = false
			} else if baseRef.Kind != model.TypeRefGroup {
				c.errorf(decl.Inheritance.Base.Span, diag.E_INHERITS_FROM_SIMPLE,
					"%q inherits from %q, which is not a block type", name, decl.Inheritance.Base.Name)
				baseOK = false
			} else {
				g := baseRef.Group
				base = &g
			}
		}
	}

	g, iok := c.compileGroupFromBlock(decl.Block, attrs, base)
	return g, aok && baseOK && iok
}

// checkInheritanceCycle walks the `< Base` chain starting at name purely
// over ast declarations (never through compile state, which would just
// return the in-progress preliminary ref and mask the cycle) and reports
// whether the chain terminates without repeating a name.
func (c *compiler) checkInheritanceCycle(name string) bool {
	seen := map[string]bool{name: true}
	cur := name
	for {
		decl, ok := c.typeDecls[cur]
		if !ok || decl.Inheritance == nil || decl.Inheritance.Base == nil {
			return true
		}
		next := decl.Inheritance.Base.Name
		if seen[next] {
			return false
		}
		seen[next] = true
		cur = next
	}
}

// compileGroupFromBlock builds a Group from a parsed Block, given the
// attributes already gathered for it (a type definition's own @-decls, or
// an empty set for an anonymous inline element block) and an optional base
// reference.
func (c *compiler) compileGroupFromBlock(block *ast.Block, attrs model.Attributes, base *model.Ref[model.Group]) (model.Group, bool) {
	items, iok := c.compileBlockItems(block, &attrs)
	g := model.Group{
		Attributes: attrs,
		Kind:       model.GroupKind(block.Mods.Occurrence),
		Mixed:      block.Mods.Mixed,
		Abstract:   block.Mods.Abstract,
		Base:       base,
		Items:      items,
	}
	return g, iok
}

// compileBlockItems compiles a Block's children in order. Splat-of-group
// (`...@Name`) merges attributes into *attrs rather than producing a
// GroupItem; splat-of-type (`...TypeName`) includes the referenced type's
// content model as a nested GroupItem; comments are skipped.
func (c *compiler) compileBlockItems(block *ast.Block, attrs *model.Attributes) ([]model.GroupItem, bool) {
	if block == nil {
		return nil, true
	}
	ok := true
	items := make([]model.GroupItem, 0, len(block.Items))
	for _, bi := range block.Items {
		switch bi.Kind {
		case ast.BlockItemElement:
			ref, eok := c.compileElement(bi.Element)
			if !eok {
				ok = false
				continue
			}
			items = append(items, model.NewElementGroupItem(ref))

		case ast.BlockItemSplatBlock:
			ag, found := c.attrGroups[bi.SplatTarget]
			if !found {
				c.errorf(bi.Span, diag.E_UNKNOWN_TYPE_NAME, "unknown attribute group %q", bi.SplatTarget)
				ok = false
				continue
			}
			splatAttrs, sok := c.compileAttributeList(ag.Attributes)
			if !sok {
				ok = false
				continue
			}
			*attrs = attrs.Merge(splatAttrs)

		case ast.BlockItemSplatType:
			tr, tok := c.resolveTypeName(bi.SplatTarget, bi.Span)
			if !tok {
				ok = false
				continue
			}
			if tr.Kind != model.TypeRefGroup {
				c.errorf(bi.Span, diag.E_INVARIANT_VIOLATION, "cannot splat %q: not a block type", bi.SplatTarget)
				ok = false
				continue
			}
			items = append(items, model.NewGroupGroupItem(tr.Group))

		case ast.BlockItemSplatGenericVar:
			c.errorf(bi.Span, diag.E_UNIMPLEMENTED_FEATURE, "generic splat %q is not supported", bi.SplatTarget)
			ok = false

		case ast.BlockItemComment:
			// Buffered at parse time for round-trip fidelity only; it has
			// no representation in the compiled content model.
		}
	}
	return items, ok
}
