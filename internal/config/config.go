package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	homeDir   = ".manifold"
	envPrefix = "MANIFOLD"
	fileName  = "config"
	fileType  = "yaml"
)

// Keys understood by the CLI. Values are plain strings; booleans use
// viper's usual truthy parsing.
const (
	// KeyDefaultPhase is the build-phase kind used when attach is called
	// without --phase.
	KeyDefaultPhase = "defaults.phase"

	// KeyDefaultConfiguration is the configuration scope used when a
	// setting command omits --configuration.
	KeyDefaultConfiguration = "defaults.configuration"

	// KeyDefaultShared controls whether generated schemes are shared when
	// --shared is not given.
	KeyDefaultShared = "defaults.shared"
)

// Defaults applied when a key is unset everywhere.
const (
	DefaultPhase         = "sources"
	DefaultConfiguration = "Debug"
)

// Dir returns the path to the manifold config directory (~/.manifold/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDir)
	}
	return filepath.Join(home, homeDir)
}

// FilePath returns the full path to the config file (~/.manifold/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyDefaultPhase, DefaultPhase)
	viper.SetDefault(KeyDefaultConfiguration, DefaultConfiguration)
	viper.SetDefault(KeyDefaultShared, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
