// Package config loads service configuration in three layers:
// struct defaults, then an optional YAML file, then FRAGMATCH_-prefixed
// environment variables (highest priority).
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix maps FRAGMATCH_SERVER_ADDRESS to server.address, and so on.
const envPrefix = "FRAGMATCH_"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Catalog CatalogConfig `koanf:"catalog"`
	Weights WeightsConfig `koanf:"weights"`
	Leads   LeadsConfig   `koanf:"leads"`
	Log     LogConfig     `koanf:"log"`
}

type ServerConfig struct {
	Address string `koanf:"address"`
}

// CatalogConfig points at an optional catalog JSON file; when Path is empty
// the built-in demo catalog is used.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// WeightsConfig points at an optional weights JSON file; when Path is empty
// the default weight table is used.
type WeightsConfig struct {
	Path string `koanf:"path"`
}

// LeadsConfig controls the optional lead capture store. Leaving DBPath empty
// disables capture entirely.
type LeadsConfig struct {
	DBPath string `koanf:"db_path"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Address: ":8080"},
		Log:    LogConfig{Level: "info", Pretty: false},
	}
}

// Load builds the config. path may be empty; a missing file is only an error
// when a path was given explicitly.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", envTransform)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// envKeyOverrides lists keys whose leaf segment itself contains an
// underscore, so the generic underscore-to-dot rewrite would split them.
var envKeyOverrides = map[string]string{
	"leads_db_path": "leads.db_path",
}

func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if mapped, ok := envKeyOverrides[key]; ok {
		return mapped
	}
	return strings.ReplaceAll(key, "_", ".")
}
