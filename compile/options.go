package compile

import "log/slog"

// Option configures a compile run, mirroring the functional-options idiom
// used by internal/loader.
type Option func(*config)

type config struct {
	issueLimit int
	logger     *slog.Logger
}

func defaultConfig() *config {
	return &config{issueLimit: 500}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithIssueLimit caps the number of diagnostics collected during
// compilation. 0 means unlimited. Default 500.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}

// WithLogger provides a structured logger for compile progress. If
// omitted, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
