package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKickball loads kickball configuration.
// Search order: customPath -> ~/.arcade/configs/kickball.yaml -> ./configs/kickball.yaml -> embedded default
//
// Files are decoded over the hard-coded defaults, so a partial file only
// overrides the keys it names.
func LoadKickball(customPath string) (KickballConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultKickballConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultKickballConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("kickball.yaml"), filepath.Join("configs", "kickball.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	return decodeEmbedded(defaultKickballYAML)
}

// decodeEmbedded decodes the built-in YAML over the hard-coded defaults. A
// broken embed returns the hard-coded config together with the error.
func decodeEmbedded(data []byte) (KickballConfig, error) {
	cfg := DefaultKickballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultKickballConfig(), fmt.Errorf("failed to parse embedded config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultKickballConfig(), fmt.Errorf("embedded config: %w", err)
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped.
func tryLoad(path string) (KickballConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KickballConfig{}, false
	}
	cfg := DefaultKickballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KickballConfig{}, false
	}
	if cfg.Validate() != nil {
		return KickballConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyKickballPreset modifies the config based on a difficulty preset.
func ApplyKickballPreset(cfg *KickballConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Goals.Height = 6
		cfg.Gameplay.WinScore = 3
	case DifficultyHard:
		cfg.Goals.Height = 4
		cfg.Gameplay.WinScore = 7
	}
}
