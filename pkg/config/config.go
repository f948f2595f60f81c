// Package config loads the tool configuration: embedded defaults,
// then an optional user file from the XDG config directory, then
// SHELLFAST_* environment overrides, in that order.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	sferrors "github.com/Aurum-R/Shellfast/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the resolved tool defaults.
type Config struct {
	Head struct {
		Lines int `koanf:"lines" toml:"lines"`
	} `koanf:"head" toml:"head"`
	Tail struct {
		Lines int `koanf:"lines" toml:"lines"`
	} `koanf:"tail" toml:"tail"`
	Cut struct {
		Delimiter string `koanf:"delimiter" toml:"delimiter"`
	} `koanf:"cut" toml:"cut"`
	Paste struct {
		Delimiter string `koanf:"delimiter" toml:"delimiter"`
	} `koanf:"paste" toml:"paste"`
	Join struct {
		Separator string `koanf:"separator" toml:"separator"`
	} `koanf:"join" toml:"join"`
	Diff struct {
		Unified bool `koanf:"unified" toml:"unified"`
		Context int  `koanf:"context" toml:"context"`
	} `koanf:"diff" toml:"diff"`
	Output struct {
		Color string `koanf:"color" toml:"color"`
		// Styles is a path to a YAML file overriding the built-in
		// output styles; empty keeps the defaults.
		Styles string `koanf:"styles" toml:"styles"`
	} `koanf:"output" toml:"output"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves the configuration. A missing user file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, sferrors.Wrap(err, sferrors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User config file, TOML or YAML
	if path := findUserConfig(); path != "" {
		parser := configParser(path)
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, sferrors.Wrapf(err, sferrors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	// 3. Environment overrides: SHELLFAST_HEAD_LINES=20 etc.
	if err := k.Load(env.Provider("SHELLFAST_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SHELLFAST_")), "_", ".")
	}), nil); err != nil {
		return nil, sferrors.Wrap(err, sferrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, sferrors.Wrap(err, sferrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// findUserConfig returns the first existing user config file, or ""
func findUserConfig() string {
	candidates := []string{
		filepath.Join(xdg.ConfigHome, "shellfast", "shellfast.toml"),
		filepath.Join(xdg.ConfigHome, "shellfast", "shellfast.yaml"),
		"shellfast.toml",
		"shellfast.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func configParser(path string) koanf.Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}

// Default returns the embedded defaults without touching the
// filesystem or environment, for callers that need a baseline.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are compiled in; a parse failure is a
		// build defect.
		panic(err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}
