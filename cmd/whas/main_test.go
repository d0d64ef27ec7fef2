package main

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_HelpFlag(t *testing.T) {
	err := run([]string{"-help"})
	if err != nil {
		t.Errorf("run(-help) returned error: %v", err)
	}
}

func TestRun_InvalidFlag(t *testing.T) {
	err := run([]string{"--invalid-flag-xyz"})
	if err == nil {
		t.Error("run(--invalid-flag-xyz) should return an error")
	}
}

func TestRun_MissingPositionalArg(t *testing.T) {
	err := run(nil)
	if err == nil {
		t.Error("run() with no args should return an error")
	}
	if !strings.Contains(err.Error(), "root .whas file") {
		t.Errorf("error should mention the missing root file: %v", err)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	entry := writeWhas(t, dir, "root.whas", "#root { #id: String }")

	err := run([]string{"--log-level", "invalid", "--output-dir", dir, entry})
	if err == nil {
		t.Error("run(--log-level invalid) should return an error")
	}
	if !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("error should mention 'invalid log level': %v", err)
	}
}

func TestRun_CompilesAndWritesBothArtifacts(t *testing.T) {
	dir := t.TempDir()
	entry := writeWhas(t, dir, "root.whas", "#root { #id: String }")

	err := run([]string{"--output-dir", dir, entry})
	if err != nil {
		t.Fatalf("run() returned error: %v", err)
	}

	xsdPath := filepath.Join(dir, "root.xsd")
	if data, err := os.ReadFile(xsdPath); err != nil {
		t.Errorf("expected xsd artifact at %s: %v", xsdPath, err)
	} else if !strings.Contains(string(data), "<xs:schema") {
		t.Errorf("xsd artifact missing schema root element: %s", data)
	}

	jsonPath := filepath.Join(dir, "fonto.schema.json")
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("expected fonto artifact at %s: %v", jsonPath, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Errorf("fonto artifact is not valid JSON: %v", err)
	}
}

func TestRun_RespectsFontoAndXSDFlags(t *testing.T) {
	dir := t.TempDir()
	entry := writeWhas(t, dir, "root.whas", "#root { #id: String }")

	err := run([]string{"--fonto=false", "--output-dir", dir, entry})
	if err != nil {
		t.Fatalf("run() returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "fonto.schema.json")); !os.IsNotExist(err) {
		t.Error("fonto artifact should not be written when --fonto=false")
	}
	if _, err := os.Stat(filepath.Join(dir, "root.xsd")); err != nil {
		t.Errorf("xsd artifact should still be written: %v", err)
	}
}

func TestRun_ConfigFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	entry := writeWhas(t, dir, "root.whas", "#root { #id: String }")
	rc := writeWhas(t, dir, ".whasrc.jsonc", `{
		// project default: skip the XSD artifact
		"xsd": false,
	}`)

	err := run([]string{"--config", rc, "--output-dir", dir, entry})
	if err != nil {
		t.Fatalf("run() returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "root.xsd")); !os.IsNotExist(err) {
		t.Error("xsd artifact should not be written when the config file sets xsd=false")
	}
	if _, err := os.Stat(filepath.Join(dir, "fonto.schema.json")); err != nil {
		t.Errorf("fonto artifact should still be written: %v", err)
	}
}

func TestRun_CompileErrorReturnsRenderedMessage(t *testing.T) {
	dir := t.TempDir()
	// references an undefined type, which must fail compilation
	entry := writeWhas(t, dir, "root.whas", "#root: DoesNotExist")

	err := run([]string{"--output-dir", dir, entry})
	if err == nil {
		t.Fatal("run() should fail for an undefined type reference")
	}
}

func TestSetupLogger_ValidLevels(t *testing.T) {
	for _, level := range []string{"error", "warn", "info", "debug"} {
		if _, err := setupLogger(level); err != nil {
			t.Errorf("setupLogger(%q) returned error: %v", level, err)
		}
	}
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	_, err := setupLogger("invalid")
	if err == nil {
		t.Error("setupLogger(\"invalid\") should return an error")
	}
}

func TestFlagParsing_AllOptions(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fontoFlag := fs.Bool("fonto", true, "")
	xsdFlag := fs.Bool("xsd", true, "")
	outputDir := fs.String("output-dir", ".", "")

	err := fs.Parse([]string{"--fonto=false", "--xsd=false", "--output-dir", "/tmp/out"})
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parse failed: %v", err)
	}

	if *fontoFlag {
		t.Error("fonto: got true, want false")
	}
	if *xsdFlag {
		t.Error("xsd: got true, want false")
	}
	if *outputDir != "/tmp/out" {
		t.Errorf("output-dir: got %q, want %q", *outputDir, "/tmp/out")
	}
}

func writeWhas(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
