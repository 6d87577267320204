package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in config directories.
const ConfigFile = "flappy.yaml"

// Source describes where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
)

// Load resolves the Flappy Bird configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/flappy/flappy.yaml ->
// ./configs/flappy.yaml -> embedded default.
//
// Only an explicit customPath produces read or parse errors; broken files in
// the discovered locations are skipped. The result is always validated.
func Load(customPath string) (FlappyConfig, Source, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, SourceCustom, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, SourceCustom, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if path, err := xdg.SearchConfigFile(filepath.Join("flappy", ConfigFile)); err == nil {
		if cfg, ok := tryFile(path); ok {
			return cfg, SourceUser, nil
		}
	}

	if cfg, ok := tryFile(filepath.Join("configs", ConfigFile)); ok {
		return cfg, SourceLocal, nil
	}

	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

func tryFile(path string) (FlappyConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return FlappyConfig{}, false
	}
	return cfg, true
}

// Parse decodes YAML on top of the defaults, so partial files only override
// the fields they name, then validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FlappyConfig{}, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config back to YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}
