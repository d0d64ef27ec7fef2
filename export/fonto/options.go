package fonto

import "log/slog"

// Option configures Marshal/Write, following the teacher's
// functional-options idiom (adapter/json's WriteOption, compile's Option).
type Option func(*config)

type config struct {
	compilerVersion CompilerVersion
	indent          string
	logger          *slog.Logger
}

func defaultConfig() *config {
	return &config{compilerVersion: DefaultCompilerVersion()}
}

// WithVersion stamps the document with the schema compiler version implied
// by a Fonto application version (parse one with ParseVersion). Omitted,
// the document is stamped with DefaultCompilerVersion.
func WithVersion(v Version) Option {
	return func(c *config) {
		c.compilerVersion = v.MinSchemaCompilerVersion()
	}
}

// WithIndent sets the indentation string for pretty-printing, matching
// adapter/json's WithIndent. "" (the default) produces compact output.
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
