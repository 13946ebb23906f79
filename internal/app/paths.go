// Package app provides the application initialization and wiring.
package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDataDir returns the default data directory path.
// Uses ~/.dbs3 for user installations, /var/lib/dbs3 as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".dbs3")
	}
	return "/var/lib/dbs3"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: dbs3.yaml
// Search paths (in order): /etc/dbs3, ~/.config/dbs3, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dbs3")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/dbs3")
		v.AddConfigPath("$HOME/.config/dbs3")
		v.AddConfigPath(".")
	}
}
