package config

import (
	"errors"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering, lowest precedence first:
//  1. defaults (New)
//  2. YAML file at path, when path is non-empty
//  3. environment variables with the SHEETSEED_ prefix
//
// Env keys map flatly onto koanf tags: SHEETSEED_CHUNK_SIZE -> chunk_size.
// Nested sections use double underscores: SHEETSEED_EVENT__NAME ->
// event.name.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("SHEETSEED_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "SHEETSEED_"))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.ChunkSize <= 0 {
		return nil, errors.New("chunk_size must be positive")
	}
	return cfg, nil
}
