package config

// Settings are the resolved values that drive cmd/whas, after merging
// built-in defaults, an optional config file, and CLI flags (in that
// precedence order, lowest to highest).
type Settings struct {
	Fonto        bool
	FontoVersion string
	XSD          bool
	OutputDir    string
	LogLevel     string
}

// Option mutates a Settings value, following the teacher's
// schema/load/options.go functional-options shape.
type Option func(*Settings)

// Default returns the built-in Settings baseline, per SPEC_FULL.md §6's
// CLI flag defaults: both artifacts enabled, current directory, info
// logging.
func Default() Settings {
	return Settings{
		Fonto:     true,
		XSD:       true,
		OutputDir: ".",
		LogLevel:  "info",
	}
}

// Apply returns a copy of s with every opt applied in order.
func (s Settings) Apply(opts ...Option) Settings {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithFonto(enabled bool) Option {
	return func(s *Settings) { s.Fonto = enabled }
}

func WithFontoVersion(version string) Option {
	return func(s *Settings) { s.FontoVersion = version }
}

func WithXSD(enabled bool) Option {
	return func(s *Settings) { s.XSD = enabled }
}

func WithOutputDir(dir string) Option {
	return func(s *Settings) { s.OutputDir = dir }
}

func WithLogLevel(level string) Option {
	return func(s *Settings) { s.LogLevel = level }
}
