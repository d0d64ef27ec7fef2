package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParapluOU/whale-schema/internal/config"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".whasrc.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ToleratesCommentsAndTrailingCommas(t *testing.T) {
	path := writeRC(t, `{
		// emit only XSD for this project
		"fonto": false,
		"xsd": true,
		"outputDir": "./dist",
	}`)

	f, err := config.Load(path)
	require.NoError(t, err)

	require.NotNil(t, f.Fonto)
	assert.False(t, *f.Fonto)
	require.NotNil(t, f.XSD)
	assert.True(t, *f.XSD)
	require.NotNil(t, f.OutputDir)
	assert.Equal(t, "./dist", *f.OutputDir)
	assert.Nil(t, f.FontoVersion)
	assert.Nil(t, f.LogLevel)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	assert.Error(t, err)
}

func TestFileOptions_OnlySetsWhatFileSpecified(t *testing.T) {
	path := writeRC(t, `{"logLevel": "debug"}`)

	f, err := config.Load(path)
	require.NoError(t, err)

	settings := config.Default().Apply(f.Options()...)
	assert.Equal(t, "debug", settings.LogLevel)
	// everything else retains its built-in default
	assert.True(t, settings.Fonto)
	assert.True(t, settings.XSD)
	assert.Equal(t, ".", settings.OutputDir)
}

func TestSettingsApply_FlagsOverrideConfigFile(t *testing.T) {
	path := writeRC(t, `{"outputDir": "./from-config"}`)

	f, err := config.Load(path)
	require.NoError(t, err)

	settings := config.Default().Apply(f.Options()...)
	// simulate an explicit --output-dir flag applied after the config file
	settings = settings.Apply(config.WithOutputDir("./from-flag"))
	assert.Equal(t, "./from-flag", settings.OutputDir)
}
