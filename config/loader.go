package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed game.yaml
var defaultYAML []byte

// SourceEmbedded marks a Config decoded from the built-in game.yaml.
const SourceEmbedded = "embedded"

// Load reads the game configuration.
// Search order: customPath -> ~/.parallax/game.yaml -> ./configs/game.yaml -> embedded default.
// Only a custom path that cannot be read or parsed is an error. An optional
// location that exists but cannot be read or parsed is skipped, and the reason
// is returned in skipped so the caller can report it.
func Load(customPath string) (cfg Config, skipped []error, err error) {
	return loadFrom(customPath, []string{userConfigPath("game.yaml"), filepath.Join("configs", "game.yaml")})
}

func loadFrom(customPath string, candidates []string) (Config, []error, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, nil, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, nil, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil, nil
	}

	var skipped []error
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			skipped = append(skipped, fmt.Errorf("config: read %s: %w", path, err))
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("config: parse %s: %w", path, err))
			continue
		}
		cfg.Source = path
		return cfg, skipped, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		cfg = Default()
	}
	cfg.Source = SourceEmbedded
	return cfg, skipped, nil
}

// Parse decodes YAML on top of Default, so omitted keys keep their
// built-in values. A layers list, when present, replaces the default list.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".parallax", filename)
}
