package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMobhold loads and validates the Mobhold configuration.
// Search order: customPath -> ~/.mobhold/configs/mobhold.yaml -> ./configs/mobhold.yaml -> embedded default
func LoadMobhold(customPath string) (MobholdConfig, error) {
	cfg, err := readMobhold(customPath)
	if err != nil {
		return cfg, err
	}
	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readMobhold decodes the first config file found on top of the embedded
// defaults, so a partial file only overrides the keys it names. Lists
// such as the catalogs and thresholds are replaced whole.
func readMobhold(customPath string) (MobholdConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MobholdConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg := embeddedDefault()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mobhold.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			userCfg := embeddedDefault()
			if err := yaml.Unmarshal(data, &userCfg); err == nil {
				return userCfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "mobhold.yaml")); err == nil {
		localCfg := embeddedDefault()
		if err := yaml.Unmarshal(data, &localCfg); err == nil {
			return localCfg, nil
		}
	}

	return embeddedDefault(), nil
}

// embeddedDefault decodes the embedded default YAML, falling back to the
// hardcoded defaults if the embed is unreadable.
func embeddedDefault() MobholdConfig {
	var cfg MobholdConfig
	if err := yaml.Unmarshal(defaultMobholdYAML, &cfg); err != nil {
		return DefaultMobholdConfig()
	}
	return cfg
}

// Marshal renders a config back to YAML.
func Marshal(cfg MobholdConfig) ([]byte, error) {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns ~/.mobhold/configs/<filename>, or "" if the
// home directory is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mobhold", "configs", filename)
}
