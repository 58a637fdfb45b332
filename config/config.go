// Package config loads the tool configuration from an optional YAML or JSON
// file with environment overrides (TRIPSCHED_ prefix, "__" as the key
// separator). A missing file is not an error: every section has usable
// defaults so the CLI works out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/tripsched/core/schedule"
	"github.com/kilianp07/tripsched/infra/geo"
	"github.com/kilianp07/tripsched/infra/routing"
	"github.com/kilianp07/tripsched/infra/weather"
)

// Config holds all configuration values for the tool.
type Config struct {
	Schedule schedule.Config `json:"schedule"`
	State    StateConfig     `json:"state"`
	Journal  JournalConfig   `json:"journal"`
	Geo      geo.Config      `json:"geo"`
	Weather  weather.Config  `json:"weather"`
	Routing  routing.Config  `json:"routing"`
}

// Load reads the configuration at path. The file may be absent; environment
// overrides and defaults still apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("TRIPSCHED_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tripsched_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.State.SetDefaults()
	cfg.Journal.SetDefaults()
	cfg.Geo.SetDefaults()
	cfg.Weather.SetDefaults()
	cfg.Routing.SetDefaults()
	if err := cfg.State.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Journal.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
