package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tilechase/common"
)

// LoadSpec reads a prefab file (disk first, embedded fallback) and decodes it
// into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the top-level game.yaml document.
type GameSpec struct {
	Config common.Config `yaml:"config"`
	Level  string        `yaml:"level"`
}

// DefaultLevel is played when a game spec names none.
const DefaultLevel = "arena.txt"

// LoadGameSpec reads a game spec with its config normalized and validated.
func LoadGameSpec(filename string) (GameSpec, error) {
	spec, err := LoadSpec[GameSpec](filename)
	if err != nil {
		return GameSpec{}, err
	}
	spec.Config = spec.Config.Normalize()
	if err := spec.Config.Validate(); err != nil {
		return GameSpec{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	if spec.Level == "" {
		spec.Level = DefaultLevel
	}
	return spec, nil
}

// LoadConfig reads only the config section of a game spec.
func LoadConfig(filename string) (common.Config, error) {
	spec, err := LoadGameSpec(filename)
	if err != nil {
		return common.Config{}, err
	}
	return spec.Config, nil
}

// ParseConfig decodes a config document already in memory.
func ParseConfig(data []byte) (common.Config, error) {
	var spec GameSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return common.Config{}, fmt.Errorf("prefabs: unmarshal config: %w", err)
	}
	cfg := spec.Config.Normalize()
	if err := cfg.Validate(); err != nil {
		return common.Config{}, fmt.Errorf("prefabs: %w", err)
	}
	return cfg, nil
}
