package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppConfig stores persistent application settings
type AppConfig struct {
	DarkMode   bool `json:"dark_mode"`
	DebugZones bool `json:"debug_zones"`
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var configDir string
	if os.Getenv("APPDATA") != "" {
		// Windows: use %APPDATA%\OpenCanvasGizmo
		configDir = filepath.Join(os.Getenv("APPDATA"), "OpenCanvasGizmo")
	} else {
		// Linux/macOS: use ~/.config/opencanvasgizmo
		configDir = filepath.Join(homeDir, ".config", "opencanvasgizmo")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the application configuration
func LoadConfig() (*AppConfig, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return &AppConfig{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{DarkMode: true}, nil
		}
		return nil, err
	}

	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves the application configuration
func SaveConfig(config *AppConfig) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
