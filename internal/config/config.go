// Package config provides configuration management for dev-agents using Viper.
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/paths"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "DEV_AGENTS"

// Config keys.
const (
	KeyTemplatesDir    = "templates_dir"
	KeyGlobalDir       = "global_dir"
	KeyCredentialsFile = "credentials_file"
)

// Config represents the top-level configuration structure.
type Config struct {
	// TemplatesDir replaces the embedded template store when set.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
	// GlobalDir is the user-scope install directory.
	GlobalDir string `mapstructure:"global_dir" yaml:"global_dir"`
	// CredentialsFile is where `dev-agents mcp` writes credentials.
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	// DEV_AGENTS_TEMPLATES_DIR, DEV_AGENTS_GLOBAL_DIR, ...
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyTemplatesDir, "")

	// Defaults that depend on $HOME are left empty when it cannot be resolved;
	// commands that need them report the error.
	globalDir, _ := paths.DefaultGlobalDir()
	viper.SetDefault(KeyGlobalDir, globalDir)
	credentials, _ := paths.DefaultCredentialsPath()
	viper.SetDefault(KeyCredentialsFile, credentials)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file: defaults apply.
		case errors.As(err, &notFound):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrInvalidConfig)
		default:
			// SetConfigFile with a missing file surfaces as a PathError.
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	for _, p := range []*string{&cfg.TemplatesDir, &cfg.GlobalDir, &cfg.CredentialsFile} {
		expanded, err := ExpandHome(*p)
		if err != nil {
			return nil, err
		}
		*p = expanded
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errs[0], errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
func ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := paths.ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
