package compile

import (
	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/location"
	"github.com/ParapluOU/whale-schema/model"
)

// resolveTypeName resolves a source-level type name to a TypeRef, compiling
// its definition on first reference. Name resolution order is: already
// bound (cache, including in-progress preliminary refs), a builtin
// primitive, a user-defined type declaration, else E_UNKNOWN_TYPE_NAME.
func (c *compiler) resolveTypeName(name string, span location.Span) (model.TypeRef, bool) {
	if ref, ok := c.bound[name]; ok {
		return ref, true
	}
	if p, ok := model.ParsePrimitive(name); ok {
		ref, _, found := c.schema.SimpleTypeByName(p.String())
		if found {
			tr := model.NewSimpleTypeRef(ref)
			c.bound[name] = tr
			return tr, true
		}
	}
	if decl, ok := c.typeDecls[name]; ok {
		return c.compileTypeDefinition(name, decl)
	}
	c.errorf(span, diag.E_UNKNOWN_TYPE_NAME, "unknown type %q", name)
	return model.TypeRef{}, false
}

// compileTypeDefinition implements the two-phase binding algorithm from
// SPEC_FULL.md §4.2: a plain alias (`A := B`, no facets, no generics)
// forwards its name onto B's existing entity rather than creating a new
// one; anything else allocates a preliminary ObjectId, binds the name to it
// before descending, then finalizes the id once the body is compiled.
func (c *compiler) compileTypeDefinition(name string, decl *ast.TypeDecl) (model.TypeRef, bool) {
	if alias := plainAliasTarget(decl); alias != "" {
		return c.compileAlias(name, alias, decl)
	}

	prelimID := c.schema.AllocatePreliminaryID()
	c.schema.RegisterTypeName(prelimID, name)

	var placeholder model.TypeRef
	if decl.IsBlock() {
		placeholder = model.NewGroupTypeRef(model.NewRef[model.Group](prelimID))
	} else {
		placeholder = model.NewSimpleTypeRef(model.NewRef[model.SimpleType](prelimID))
	}
	c.bound[name] = placeholder

	var final model.TypeRef
	ok := true
	if decl.IsBlock() {
		g, gok := c.compileBlockDefinition(name, decl)
		if !gok {
			ok = false
		} else {
			final = model.NewGroupTypeRef(c.schema.RegisterGroup(g))
		}
	} else {
		st, sok := c.compileInlineType(decl)
		if !sok {
			ok = false
		} else {
			final = model.NewSimpleTypeRef(c.schema.RegisterSimpleType(st))
		}
	}

	if !ok {
		return model.TypeRef{}, false
	}

	var bindErr error
	if final.Kind == model.TypeRefGroup {
		bindErr = model.BindPreliminaryID(c.schema, prelimID, final.Group)
	} else {
		bindErr = model.BindPreliminaryID(c.schema, prelimID, final.Simple)
	}
	if bindErr != nil {
		c.internalErrorf(decl.Span, "%v", bindErr)
		return model.TypeRef{}, false
	}

	// name stays bound to the preliminary id, which carries the name and now
	// resolves to the finished entity, so every reference to name shares it.
	return placeholder, true
}

// plainAliasTarget returns the referenced type name when decl's entire
// inline body is a bare, non-generic, non-faceted reference to another
// name (`A := B`), or "" otherwise. Such a definition never produces a new
// entity: it forwards the new name onto whatever B already resolves to.
func plainAliasTarget(decl *ast.TypeDecl) string {
	if decl == nil || decl.Inline == nil || decl.Inline.Compound == nil {
		return ""
	}
	item := decl.Inline.Compound.First()
	if item == nil || item.TypeName == nil {
		return ""
	}
	if item.TypeName.Facets != nil || item.TypeName.IsGeneric() {
		return ""
	}
	return item.TypeName.Name
}

// compileAlias resolves target and binds name onto the same entity,
// guarding against alias cycles (`A := B`, `B := A`) with resolvingAlias,
// since aliases never allocate a preliminary id of their own to break
// recursion the way block and faceted definitions do.
func (c *compiler) compileAlias(name, target string, decl *ast.TypeDecl) (model.TypeRef, bool) {
	if c.resolvingAlias[name] {
		c.errorf(decl.Span, diag.E_INVARIANT_VIOLATION, "type alias cycle detected at %q", name)
		return model.TypeRef{}, false
	}
	c.resolvingAlias[name] = true
	defer delete(c.resolvingAlias, name)

	ref, ok := c.resolveTypeName(target, decl.Span)
	if !ok {
		return model.TypeRef{}, false
	}
	c.schema.RegisterTypeName(ref.ObjectId(), name)
	c.bound[name] = ref
	return ref, true
}

// compileInlineType compiles a non-alias inline type definition's body: a
// union, an unimplemented type-variable reference, or a single faceted
// typename/regex/string/number literal.
func (c *compiler) compileInlineType(decl *ast.TypeDecl) (model.SimpleType, bool) {
	t := decl.Inline
	switch t.Kind() {
	case "union":
		return c.compileUnionType(t.Union)
	case "var":
		c.errorf(t.Span, diag.E_UNIMPLEMENTED_FEATURE, "type variable references are not supported")
		return model.SimpleType{}, false
	default:
		if t.Compound.IsCompound() {
			c.errorf(t.Span, diag.E_UNIMPLEMENTED_FEATURE, "a type definition with more than one typing item is not supported")
			return model.SimpleType{}, false
		}
		item := t.Compound.First()
		if item == nil {
			c.internalErrorf(t.Span, "type definition %q has an empty typing", decl.Name)
			return model.SimpleType{}, false
		}
		return c.compileInlineTypingItem(item)
	}
}

// compileInlineTypingItem compiles the single item of a non-alias inline
// type definition's body. Reached only when plainAliasTarget returned ""
// for a typename item, i.e. the item carries facets or generic arguments.
func (c *compiler) compileInlineTypingItem(item *ast.TypingItem) (model.SimpleType, bool) {
	switch {
	case item.TypeName != nil:
		if item.TypeName.IsGeneric() {
			c.errorf(item.TypeName.Span, diag.E_UNIMPLEMENTED_FEATURE, "generic type instantiation is not supported")
			return model.SimpleType{}, false
		}
		base, ok := c.resolveTypeName(item.TypeName.Name, item.TypeName.Span)
		if !ok {
			return model.SimpleType{}, false
		}
		if base.Kind != model.TypeRefSimple {
			c.errorf(item.TypeName.Facets.Span, diag.E_FACET_ON_COMPLEX_TYPE, "%q does not name a simple type", item.TypeName.Name)
			return model.SimpleType{}, false
		}
		restrictions, ok := c.compileFacets(item.TypeName.Facets, base.Simple)
		if !ok {
			return model.SimpleType{}, false
		}
		return model.NewDerivedSimpleType(base.Simple, restrictions, false), true
	case item.Regex != nil:
		return model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveString), model.Restrictions{Pattern: &item.Regex.Pattern}, false), true
	case item.String != nil:
		return model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveString), model.Restrictions{Enumeration: []string{item.String.Value}}, false), true
	case item.Number != nil:
		return model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveInt), model.Restrictions{Enumeration: []string{item.Number.Text}}, false), true
	default:
		c.internalErrorf(item.Span, "typing item has no recognized form")
		return model.SimpleType{}, false
	}
}

func (c *compiler) compileUnionType(union *ast.UnionDecl) (model.SimpleType, bool) {
	members := make([]model.Ref[model.SimpleType], 0, len(union.Members))
	ok := true
	for _, m := range union.Members {
		ref, mok := c.compileUnionMember(m)
		if !mok {
			ok = false
			continue
		}
		members = append(members, ref)
	}
	if !ok {
		return model.SimpleType{}, false
	}
	return model.NewUnionSimpleType(members), true
}

func (c *compiler) compileUnionMember(m *ast.UnionMember) (model.Ref[model.SimpleType], bool) {
	switch {
	case m.TypeName != nil:
		if m.TypeName.IsGeneric() {
			c.errorf(m.TypeName.Span, diag.E_UNIMPLEMENTED_FEATURE, "generic type instantiation is not supported")
			return model.Ref[model.SimpleType]{}, false
		}
		base, ok := c.resolveTypeName(m.TypeName.Name, m.TypeName.Span)
		if !ok {
			return model.Ref[model.SimpleType]{}, false
		}
		if base.Kind != model.TypeRefSimple {
			c.errorf(m.Span, diag.E_UNION_CONTAINS_GROUP, "union member %q is a complex type", m.TypeName.Name)
			return model.Ref[model.SimpleType]{}, false
		}
		if m.TypeName.Facets == nil {
			return base.Simple, true
		}
		restrictions, ok := c.compileFacets(m.TypeName.Facets, base.Simple)
		if !ok {
			return model.Ref[model.SimpleType]{}, false
		}
		st := model.NewDerivedSimpleType(base.Simple, restrictions, false)
		return c.schema.RegisterSimpleType(st), true
	case m.Regex != nil:
		st := model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveString), model.Restrictions{Pattern: &m.Regex.Pattern}, false)
		return c.schema.RegisterSimpleType(st), true
	case m.String != nil:
		st := model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveString), model.Restrictions{Enumeration: []string{m.String.Value}}, false)
		return c.schema.RegisterSimpleType(st), true
	case m.Number != nil:
		st := model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveInt), model.Restrictions{Enumeration: []string{m.Number.Text}}, false)
		return c.schema.RegisterSimpleType(st), true
	default:
		c.internalErrorf(m.Span, "union member has no recognized form")
		return model.Ref[model.SimpleType]{}, false
	}
}

// primitiveRef looks up a pre-registered builtin's reference. Every
// Primitive is seeded by model.NewSchema, so the lookup always succeeds.
func (c *compiler) primitiveRef(p model.Primitive) model.Ref[model.SimpleType] {
	ref, _, _ := c.schema.SimpleTypeByName(p.String())
	return ref
}

// compileSimpleTyping compiles a `: <typing>` clause shared by attribute
// and simple-content element declarations. groupErrorCode lets each caller
// pick the diagnostic that fits when the typing resolves to a complex
// (Group) type, which is never valid here.
func (c *compiler) compileSimpleTyping(t *ast.Typing, groupErrorCode diag.Code) (model.Ref[model.SimpleType], bool) {
	switch t.Kind() {
	case "union":
		st, ok := c.compileUnionType(t.Union)
		if !ok {
			return model.Ref[model.SimpleType]{}, false
		}
		return c.schema.RegisterSimpleType(st), true
	case "var":
		c.errorf(t.Span, diag.E_UNIMPLEMENTED_FEATURE, "type variable references are not supported")
		return model.Ref[model.SimpleType]{}, false
	default:
		if t.Compound.IsCompound() {
			c.errorf(t.Span, diag.E_UNIMPLEMENTED_FEATURE, "a typing with more than one item is not supported")
			return model.Ref[model.SimpleType]{}, false
		}
		item := t.Compound.First()
		if item == nil {
			c.internalErrorf(t.Span, "typing has no item")
			return model.Ref[model.SimpleType]{}, false
		}
		if item.TypeName != nil {
			if item.TypeName.IsGeneric() {
				c.errorf(item.TypeName.Span, diag.E_UNIMPLEMENTED_FEATURE, "generic type instantiation is not supported")
				return model.Ref[model.SimpleType]{}, false
			}
			base, ok := c.resolveTypeName(item.TypeName.Name, item.TypeName.Span)
			if !ok {
				return model.Ref[model.SimpleType]{}, false
			}
			if base.Kind != model.TypeRefSimple {
				c.errorf(item.TypeName.Span, groupErrorCode, "%q names a complex type", item.TypeName.Name)
				return model.Ref[model.SimpleType]{}, false
			}
			if item.TypeName.Facets == nil {
				return base.Simple, true
			}
			restrictions, ok := c.compileFacets(item.TypeName.Facets, base.Simple)
			if !ok {
				return model.Ref[model.SimpleType]{}, false
			}
			st := model.NewDerivedSimpleType(base.Simple, restrictions, false)
			return c.schema.RegisterSimpleType(st), true
		}
		var st model.SimpleType
		var ok bool
		switch {
		case item.Regex != nil:
			st, ok = model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveString), model.Restrictions{Pattern: &item.Regex.Pattern}, false), true
		case item.String != nil:
			st, ok = model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveString), model.Restrictions{Enumeration: []string{item.String.Value}}, false), true
		case item.Number != nil:
			st, ok = model.NewDerivedSimpleType(c.primitiveRef(model.PrimitiveInt), model.Restrictions{Enumeration: []string{item.Number.Text}}, false), true
		default:
			c.internalErrorf(item.Span, "typing item has no recognized form")
			ok = false
		}
		if !ok {
			return model.Ref[model.SimpleType]{}, false
		}
		return c.schema.RegisterSimpleType(st), true
	}
}
