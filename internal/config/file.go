package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// File is the parsed contents of a .whasrc.jsonc file. Every field is a
// pointer so Options can tell "the file left this unset" (nil, CLI default
// or flag wins) apart from "the file explicitly set this to the zero
// value" (false/""), mirroring how cmd/whas distinguishes an unset flag
// from one passed as its own default.
type File struct {
	Fonto        *bool   `json:"fonto"`
	FontoVersion *string `json:"fontoVersion"`
	XSD          *bool   `json:"xsd"`
	OutputDir    *string `json:"outputDir"`
	LogLevel     *string `json:"logLevel"`
}

// Load reads and parses a .whasrc.jsonc file at path. Comments and trailing
// commas are tolerated via jsonc.ToJSON, the same preprocessing step
// adapter/json/parse.go applies before handing data to encoding/json.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}

// Options converts the fields the file actually set into a slice of
// Option, in a fixed, deterministic order, for a caller to Apply over
// Default() before layering explicit CLI flags on top.
func (f *File) Options() []Option {
	if f == nil {
		return nil
	}
	var opts []Option
	if f.Fonto != nil {
		opts = append(opts, WithFonto(*f.Fonto))
	}
	if f.FontoVersion != nil {
		opts = append(opts, WithFontoVersion(*f.FontoVersion))
	}
	if f.XSD != nil {
		opts = append(opts, WithXSD(*f.XSD))
	}
	if f.OutputDir != nil {
		opts = append(opts, WithOutputDir(*f.OutputDir))
	}
	if f.LogLevel != nil {
		opts = append(opts, WithLogLevel(*f.LogLevel))
	}
	return opts
}
