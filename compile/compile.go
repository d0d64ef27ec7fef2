package compile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/ParapluOU/whale-schema/ast"
	"github.com/ParapluOU/whale-schema/diag"
	"github.com/ParapluOU/whale-schema/internal/trace"
	"github.com/ParapluOU/whale-schema/location"
	"github.com/ParapluOU/whale-schema/model"
)

// Compile turns models (the entry schema plus every transitively imported
// schema, in load order) into a single compiled, sealed Schema. The first
// model in the slice is treated as the root for the purpose of error
// reporting precedence; name resolution is cross-file: a type or attribute
// group declared in any model is visible when compiling any other.
//
// Compile always returns a non-nil Schema and a diag.Result; callers must
// check Result.HasErrors() before trusting the Schema, mirroring
// internal/loader.Manager's "always return, let the caller inspect
// diagnostics" contract.
func Compile(ctx context.Context, models []*ast.Model, opts ...Option) (*model.Schema, diag.Result) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var collector *diag.Collector
	if cfg.issueLimit > 0 {
		collector = diag.NewCollector(cfg.issueLimit)
	} else {
		collector = diag.NewCollectorUnlimited()
	}

	op := trace.Begin(ctx, logger, "whas.compile.run", slog.Int("models", len(models)))

	c := &compiler{
		ctx:            ctx,
		schema:         model.NewSchema(),
		collector:      collector,
		logger:         logger,
		typeDecls:      make(map[string]*ast.TypeDecl),
		typeOrigin:     make(map[string]location.Span),
		attrGroups:     make(map[string]*ast.AttrGroupDecl),
		attrOrigin:     make(map[string]location.Span),
		bound:          make(map[string]model.TypeRef),
		resolvingAlias: make(map[string]bool),
	}

	c.indexDeclarations(models)
	c.compileAllTypeDefinitions()
	c.compileAllElements(models)

	c.schema.Seal()

	result := collector.Result()
	op.End(nil, slog.Int("issues", result.Len()))

	return c.schema, result
}

// compiler holds cross-model state for a single Compile invocation.
type compiler struct {
	ctx       context.Context
	schema    *model.Schema
	collector *diag.Collector
	logger    *slog.Logger

	// typeDecls/attrGroups index every top-level declaration across all
	// models by source name, first declaration wins; typeOrigin/attrOrigin
	// remember where that first declaration was, for duplicate diagnostics.
	typeDecls  map[string]*ast.TypeDecl
	typeOrigin map[string]location.Span
	attrGroups map[string]*ast.AttrGroupDecl
	attrOrigin map[string]location.Span

	// bound caches the TypeRef produced for a type name, including
	// preliminary (not-yet-finalized) refs used to break recursion.
	bound map[string]model.TypeRef

	// resolvingAlias guards plain-alias chains (`T := U`) against cycles,
	// since those never get a preliminary id of their own to detect
	// recursion through the usual `bound` cache.
	resolvingAlias map[string]bool
}

func (c *compiler) indexDeclarations(models []*ast.Model) {
	for _, m := range models {
		if m == nil {
			continue
		}
		for _, td := range m.Types {
			if td == nil {
				continue
			}
			if existing, ok := c.typeOrigin[td.Name]; ok {
				c.errorfRelated(td.Span, diag.E_DUPLICATE_TYPE_NAME, existing,
					"type %q is defined multiple times", td.Name)
				continue
			}
			c.typeDecls[td.Name] = td
			c.typeOrigin[td.Name] = td.Span
		}
		for _, ag := range m.AttrGroups {
			if ag == nil {
				continue
			}
			if existing, ok := c.attrOrigin[ag.Name]; ok {
				c.errorfRelated(ag.Span, diag.E_DUPLICATE_TYPE_NAME, existing,
					"attribute group %q is defined multiple times", ag.Name)
				continue
			}
			c.attrGroups[ag.Name] = ag
			c.attrOrigin[ag.Name] = ag.Span
		}
	}
}

// compileAllTypeDefinitions compiles every indexed type definition in
// deterministic (sorted-by-name) order, per SPEC_FULL.md §4.2 step 2. Types
// already compiled as a dependency of an earlier one in the sort order are
// skipped via the `bound` cache.
func (c *compiler) compileAllTypeDefinitions() {
	names := make([]string, 0, len(c.typeDecls))
	for name := range c.typeDecls {
		names = append(names, name)
	}
	slices.Sort(names)

	op := trace.Begin(c.ctx, c.logger, "whas.compile.types", slog.Int("count", len(names)))
	for _, name := range names {
		c.resolveTypeName(name, location.Span{})
	}
	op.End(nil)
}

// compileAllElements compiles every top-level element declaration across
// every model, in model order then declaration order, per SPEC_FULL.md
// §4.2 step 3.
func (c *compiler) compileAllElements(models []*ast.Model) {
	op := trace.Begin(c.ctx, c.logger, "whas.compile.elements")
	seen := make(map[string]location.Span)
	for _, m := range models {
		if m == nil {
			continue
		}
		for _, ed := range m.Elements {
			if ed == nil {
				continue
			}
			if existing, ok := seen[ed.Name]; ok {
				c.errorfRelated(ed.Span, diag.E_DUPLICATE_ELEMENT, existing,
					"top-level element %q is defined multiple times", ed.Name)
				continue
			}
			seen[ed.Name] = ed.Span
			c.compileElement(ed)
		}
	}
	op.End(nil)
}

func (c *compiler) errorf(span location.Span, code diag.Code, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	issue := diag.NewIssue(diag.Error, code, msg)
	if !span.IsZero() {
		issue = issue.WithSpan(span)
	}
	c.collector.Collect(issue.Build())
}

func (c *compiler) errorfRelated(span location.Span, code diag.Code, related location.Span, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	issue := diag.NewIssue(diag.Error, code, msg)
	if !span.IsZero() {
		issue = issue.WithSpan(span)
	}
	if !related.IsZero() {
		issue = issue.WithRelated(location.RelatedInfo{Span: related, Message: location.MsgPreviousDefinition})
	}
	c.collector.Collect(issue.Build())
}

func (c *compiler) internalErrorf(span location.Span, format string, args ...any) {
	c.errorf(span, diag.E_INVARIANT_VIOLATION, format, args...)
}
