package config

import (
	toml "github.com/pelletier/go-toml/v2"

	sferrors "github.com/Aurum-R/Shellfast/pkg/errors"
)

// GenerateTOML renders the resolved configuration back as TOML, for
// the genconfig command to print or seed a user config file with.
func GenerateTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", sferrors.Wrap(err, sferrors.ErrConfigParse, "failed to marshal configuration")
	}
	return string(data), nil
}

// DefaultsTOML returns the embedded defaults file verbatim, comments
// included.
func DefaultsTOML() string {
	return string(defaultConfig)
}
