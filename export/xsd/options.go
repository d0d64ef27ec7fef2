package xsd

import "log/slog"

// Option configures Export, following the teacher's functional-options
// idiom (adapter/json's WriteOption, internal/loader's Option).
type Option func(*config)

type config struct {
	targetNamespace string
	indent          string
	logger          *slog.Logger
}

func defaultConfig() *config {
	return &config{indent: "  "}
}

// WithTargetNamespace sets the schema's targetNamespace attribute, per
// original_source/format/src/export/xsd.rs's XsdExporter::with_namespace.
// Omitted or empty leaves the schema namespace-less.
func WithTargetNamespace(ns string) Option {
	return func(c *config) {
		c.targetNamespace = ns
	}
}

// WithIndent sets the indentation unit used between nested elements.
// The default is two spaces; "" produces compact, single-line output.
func WithIndent(indent string) Option {
	return func(c *config) {
		c.indent = indent
	}
}

// WithLogger provides a structured logger for export progress. If
// omitted, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func applyOptions(c *config, opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}
