package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.tui-runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. Only a failure on an explicit customPath is reported.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", configFileName)); err == nil {
		return cfg, nil
	}

	return embeddedDefault(), nil
}

// LoadFile reads, decodes, and validates a single config file.
func LoadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the embedded defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() RunnerConfig {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-runner", "configs", configFileName)
}

// ApplyPreset modifies the config based on a difficulty preset.
// DifficultyNormal leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 7
		cfg.Session.BaseSpeed = 2.5
		cfg.Obstacles.HitBox = 40
	case DifficultyHard:
		cfg.Session.Lives = 3
		cfg.Session.BaseSpeed = 4.0
		cfg.Difficulty.SpeedStep = 0.2
	}
}
