// Package config loads argvparse settings from flags, environment variables,
// .env files and an optional YAML config file.
//
// Priority (highest to lowest): flags > environment > local .env >
// config-dir .env > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName names the config directory under the user config dir.
	AppName = "argvparse"
	// EnvPrefix is prepended to every environment variable, e.g. ARGVPARSE_OUTPUT.
	EnvPrefix = "ARGVPARSE"
	// DirEnv overrides the config directory.
	DirEnv = EnvPrefix + "_CONFIG_DIR"
)

// Setting keys shared by viper, the config file and flag names.
const (
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyOutput   = "output"
	KeyNoColor  = "no-color"
)

// Output formats understood by the renderer.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
	Output   string `mapstructure:"output"`
	NoColor  bool   `mapstructure:"no-color"`

	// Sources lists the files that contributed settings, lowest priority first.
	Sources []string `mapstructure:"-"`
}

// Options controls where Load looks for files. Empty fields use defaults.
type Options struct {
	ConfigFile string // explicit config file; must exist when set
	ConfigDir  string // directory holding config.yaml and .env
	WorkDir    string // directory holding the local .env
}

// BindFlags registers the persistent flags that map onto settings.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyLogLevel, KeyLogFile, KeyOutput, KeyNoColor} {
		flag := flags.Lookup(key)
		if flag == nil {
			return fmt.Errorf("flag --%s is not defined", key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", key, err)
		}
	}
	return nil
}

// Load resolves the configuration into a Config.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyNoColor, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configDir := opts.ConfigDir
	if configDir == "" {
		configDir = DefaultDir()
	}

	var sources []string

	configFile, err := readConfigFile(v, opts.ConfigFile, configDir)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		sources = append(sources, configFile)
	}

	envFiles := []string{}
	if configDir != "" {
		envFiles = append(envFiles, filepath.Join(configDir, ".env"))
	}
	workDir := opts.WorkDir
	if workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			workDir = wd
		}
	}
	if workDir != "" {
		local := filepath.Join(workDir, ".env")
		if len(envFiles) == 0 || envFiles[0] != local {
			envFiles = append(envFiles, local)
		}
	}

	for _, path := range envFiles {
		loaded, err := mergeDotEnv(v, path)
		if err != nil {
			return nil, err
		}
		if loaded {
			sources = append(sources, path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}
	return fmt.Errorf("invalid output format %q (expected text, json or yaml)", c.Output)
}

// DefaultDir returns DirEnv if set, otherwise <user config dir>/argvparse.
// It returns "" when no config directory can be determined.
func DefaultDir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, AppName)
}

// readConfigFile reads an explicit config file, or config.yaml from dir when
// present. It returns the path that was read.
func readConfigFile(v *viper.Viper, explicit string, dir string) (string, error) {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", explicit, err)
		}
		return v.ConfigFileUsed(), nil
	}

	if dir == "" {
		return "", nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file in %s: %w", dir, err)
	}
	return v.ConfigFileUsed(), nil
}

// mergeDotEnv merges ARGVPARSE_* entries of a .env file into the config
// layer. A missing file is not an error.
func mergeDotEnv(v *viper.Viper, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return false, fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	settings := make(map[string]interface{})
	for name, value := range envMap {
		if key, ok := settingKey(name); ok {
			settings[key] = value
		}
	}
	if len(settings) == 0 {
		return true, nil
	}
	if err := v.MergeConfigMap(settings); err != nil {
		return false, fmt.Errorf("failed to merge .env file %s: %w", path, err)
	}
	return true, nil
}

// settingKey maps ARGVPARSE_LOG_LEVEL to log-level.
func settingKey(envName string) (string, bool) {
	rest, ok := strings.CutPrefix(envName, EnvPrefix+"_")
	if !ok || rest == "" {
		return "", false
	}
	return strings.ReplaceAll(strings.ToLower(rest), "_", "-"), true
}
