// Package config loads optional defaults for cmd/whas from a .whasrc.jsonc
// file, grounded on the teacher's schema/load/options.go functional-options
// idiom (Settings/Option here play the role load/options.go's config/Option
// play for the loader) and on adapter/json/parse.go's
// jsonc.ToJSON-then-json.Unmarshal preprocessing step for tolerating
// comments and trailing commas in the config file.
//
// CLI flags always win over a config file's values: File.Options only
// returns an Option for each field the file actually set, so a caller
// applies them before re-applying any explicitly-passed flags.
package config
