package loader

import (
	"log/slog"

	"github.com/ParapluOU/whale-schema/internal/source"
)

// Option configures a Manager at construction time.
type Option func(*config)

type config struct {
	sourceRegistry *source.Registry
	issueLimit     int
	logger         *slog.Logger
}

func defaultConfig() *config {
	return &config{issueLimit: 100}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithSourceRegistry provides a pre-existing source registry, letting
// callers (e.g. an LSP server holding already-open documents) share content
// and position-lookup state with the manager instead of each load building
// its own.
func WithSourceRegistry(r *source.Registry) Option {
	return func(c *config) { c.sourceRegistry = r }
}

// WithIssueLimit caps the number of diagnostics collected across the whole
// load (entry file plus every transitively imported file). 0 means
// unlimited. Default 100.
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}

// WithLogger provides a structured logger for load progress. If omitted,
// logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
