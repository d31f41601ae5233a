// File: config_test.go
// Title: Configuration Tests
// Description: Tests loading TOML and YAML, typed getters, environment
//              overrides, discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-01 v0.1.0: Initial tests
// - 2026-10-13 v0.2.0: Discovery and validation

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	rberr "github.com/msto63/rbstr/foundation/core/error"
)

const tomlConfig = `
[log]
level = "debug"
format = "json"

[output]
format = "text"

[split]
literal = true

[justify]
pad = "*"
width = 20
`

const yamlConfig = `
log:
  level: info
  format: logfmt
split:
  literal: false
justify:
  pad: "-"
  width: 12
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		content    string
		wantFormat Format
		wantLevel  string
		wantLog    string
		wantPad    string
		wantWidth  int
		wantSplit  bool
	}{
		{"toml", "rbstr.toml", tomlConfig, FormatTOML, "debug", "json", "*", 20, true},
		{"yaml", "rbstr.yaml", yamlConfig, FormatYAML, "info", "logfmt", "-", 12, false},
		{"yml", "other.yml", yamlConfig, FormatYAML, "info", "logfmt", "-", 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Format() != tt.wantFormat {
				t.Errorf("Format() = %v; want %v", cfg.Format(), tt.wantFormat)
			}
			if got := cfg.GetString("log.level"); got != tt.wantLevel {
				t.Errorf("log.level = %q; want %q", got, tt.wantLevel)
			}
			if got := cfg.GetString("log.format"); got != tt.wantLog {
				t.Errorf("log.format = %q; want %q", got, tt.wantLog)
			}
			if got := cfg.GetString("justify.pad"); got != tt.wantPad {
				t.Errorf("justify.pad = %q; want %q", got, tt.wantPad)
			}
			if got := cfg.GetInt("justify.width"); got != tt.wantWidth {
				t.Errorf("justify.width = %d; want %d", got, tt.wantWidth)
			}
			if got := cfg.GetBool("split.literal"); got != tt.wantSplit {
				t.Errorf("split.literal = %v; want %v", got, tt.wantSplit)
			}
			if !strings.HasSuffix(cfg.FilePath(), tt.file) {
				t.Errorf("FilePath() = %q", cfg.FilePath())
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantCode rberr.Code
	}{
		{"blank path", "  ", rberr.CodeInvalidInput},
		{"missing file", filepath.Join(dir, "absent.toml"), rberr.CodeNotFound},
		{"bad toml", writeFile(t, dir, "bad.toml", "[log\nlevel ="), rberr.CodeConfigError},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "log: [unclosed"), rberr.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err == nil {
				t.Fatalf("Load() = %v; want error", cfg)
			}
			if got := rberr.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v; want %v (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(tomlConfig, FormatAuto)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v; want toml", cfg.Format())
	}
	if cfg.GetString("output.format") != "text" {
		t.Errorf("output.format = %q", cfg.GetString("output.format"))
	}

	if _, err := LoadFromString("log: [", FormatYAML); err == nil {
		t.Error("LoadFromString() with broken YAML should fail")
	}

	empty, err := LoadFromString("", FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString(\"\") error = %v", err)
	}
	if len(empty.Keys()) != 0 {
		t.Errorf("Keys() = %v; want none", empty.Keys())
	}
}

func TestDefaultsAndGetterFallbacks(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rbstr.toml", "[log]\nlevel = \"error\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log":     map[string]interface{}{"level": "warn", "format": "text"},
			"justify": map[string]interface{}{"pad": " "},
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("file value lost: log.level = %q", got)
	}
	if got := cfg.GetString("log.format"); got != "text" {
		t.Errorf("nested default lost: log.format = %q", got)
	}
	if got := cfg.GetString("justify.pad"); got != " " {
		t.Errorf("justify.pad = %q", got)
	}

	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("log.level", 7); got != 7 {
		t.Errorf("GetInt on a string = %d; want default 7", got)
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Error("GetBool default should be returned")
	}
	if cfg.Has("log.level.deeper") {
		t.Error("Has() should not descend into scalars")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	cfg, err := LoadFromString(tomlConfig, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("RBSTR_LOG_LEVEL", "trace")
	t.Setenv("RBSTR_SPLIT_LITERAL", "false")
	t.Setenv("RBSTR_JUSTIFY_WIDTH", "42")

	// Without a prefix the environment is ignored
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level without prefix = %q", got)
	}

	cfg.envPrefix = DefaultEnvPrefix
	if got := cfg.GetString("log.level"); got != "trace" {
		t.Errorf("log.level = %q; want env override", got)
	}
	if got := cfg.GetBool("split.literal"); got {
		t.Error("split.literal should be overridden to false")
	}
	if got := cfg.GetInt("justify.width"); got != 42 {
		t.Errorf("justify.width = %d; want 42", got)
	}

	empty := Empty(DefaultEnvPrefix)
	if !empty.Has("log.level") || empty.GetString("log.level") != "trace" {
		t.Error("Empty() config should still see environment overrides")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		prefix, key, want string
	}{
		{"rbstr", "log.level", "RBSTR_LOG_LEVEL"},
		{"", "output.format", "OUTPUT_FORMAT"},
		{"RBSTR", "justify.pad", "RBSTR_JUSTIFY_PAD"},
	}
	for _, tt := range tests {
		if got := EnvKey(tt.prefix, tt.key); got != tt.want {
			t.Errorf("EnvKey(%q, %q) = %q; want %q", tt.prefix, tt.key, got, tt.want)
		}
	}
}

func TestSetAndKeys(t *testing.T) {
	cfg := Empty("")
	cfg.Set("log.level", "info")
	cfg.Set("log.format", "json")
	cfg.Set("output.format", "text")

	want := []string{"log.format", "log.level", "output.format"}
	if got := cfg.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v; want %v", got, want)
	}
	if !strings.Contains(cfg.String(), "<memory>") {
		t.Errorf("String() = %q", cfg.String())
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "rbstr.toml")
	second := writeFile(t, dir, filepath.Join("xdg", "rbstr", "config.toml"), "[output]\nformat = \"json\"\n")

	options := DiscoveryOptions{Files: []string{first, second}, EnvPrefix: DefaultEnvPrefix}

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.FilePath() != second || cfg.GetString("output.format") != "json" {
		t.Errorf("Discover() loaded %q", cfg.FilePath())
	}

	writeFile(t, dir, "rbstr.toml", "[output]\nformat = \"text\"\n")
	cfg, err = Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.FilePath() != first {
		t.Errorf("Discover() should prefer the first candidate, loaded %q", cfg.FilePath())
	}
}

func TestDiscoverNothingFound(t *testing.T) {
	options := DiscoveryOptions{Files: []string{filepath.Join(t.TempDir(), "none.toml")}}

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.FilePath() != "" || len(cfg.Keys()) != 0 {
		t.Errorf("expected empty config, got %v", cfg)
	}

	options.Required = true
	if _, err := Discover(options); !rberr.HasCode(err, rberr.CodeNotFound) {
		t.Errorf("Discover() error = %v; want NOT_FOUND", err)
	}
}

func TestDefaultDiscoveryOptions(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	options := DefaultDiscoveryOptions()
	if options.EnvPrefix != DefaultEnvPrefix {
		t.Errorf("EnvPrefix = %q", options.EnvPrefix)
	}
	if len(options.Files) < 3 {
		t.Fatalf("Files = %v", options.Files)
	}
	if options.Files[0] != "rbstr.toml" || options.Files[1] != "rbstr.yaml" {
		t.Errorf("local candidates = %v", options.Files[:2])
	}
	if options.Files[2] != filepath.Join(xdg, "rbstr", "config.toml") {
		t.Errorf("XDG candidate = %q", options.Files[2])
	}
}

func TestValidate(t *testing.T) {
	valid, _ := LoadFromString(tomlConfig, FormatTOML)
	if err := valid.Validate(DefaultRules()); err != nil {
		t.Errorf("Validate() = %v; want nil", err)
	}

	invalid, _ := LoadFromString(`
[log]
level = "loud"

[output]
format = "xml"

[split]
literal = "yes"
`, FormatTOML)

	err := invalid.Validate(DefaultRules())
	if err == nil {
		t.Fatal("Validate() = nil; want error")
	}
	if !rberr.HasCode(err, rberr.CodeInvalidConfig) {
		t.Errorf("code = %v", rberr.GetCode(err))
	}
	for _, want := range []string{"log.level must be one of", "output.format must be one of", "split.literal must be true or false"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q lacks %q", err.Error(), want)
		}
	}

	required := ValidationRules{"justify.pad": {Required: true}}
	if err := Empty("").Validate(required); err == nil {
		t.Error("missing required key should fail validation")
	}
}
