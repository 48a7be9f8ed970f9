package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"christopherharwell/showrepo/pkg/types"
)

const (
	// EnvPrefix prefixes every environment variable read by LoadConfig,
	// e.g. SHOWREPO_FILENAME or SHOWREPO_TABLE_FORMAT.
	EnvPrefix = "SHOWREPO"

	// ConfigName is the base name of the optional config file.
	ConfigName = "showrepo"

	DefaultFilename    = "repositories.txt"
	DefaultTableFormat = "grid"
)

// skipFlags are command line flags that are not configuration values.
var skipFlags = map[string]bool{"config": true, "help": true}

// LoadConfig merges command line flags, SHOWREPO_* environment variables,
// an optional config file and built-in defaults into a types.Config.
// A .env file in the working directory is loaded first without overriding
// variables that are already set.
//
// Parameters:
//   - flags: The parsed command line flags; may be nil
//   - configFile: Explicit config file path, or "" to search for
//     showrepo.yaml in the working directory and the user config directory
//
// Returns:
//   - types.Config: The merged configuration
//   - error: Any error reading an existing config file or decoding values
//
// Example:
//
//	cfg, err := LoadConfig(cmd.Flags(), "")
//	if err != nil {
//	    log.Fatal(err)
//	}
func LoadConfig(flags *pflag.FlagSet, configFile string) (types.Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, ConfigName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		slog.Debug("using config file", "path", v.ConfigFileUsed())
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if skipFlags[f.Name] || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(Key(f.Name), f)
		})
		if bindErr != nil {
			return types.Config{}, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Key converts a flag name such as "only-language" to its configuration key.
func Key(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("filename", DefaultFilename)
	v.SetDefault("table_format", DefaultTableFormat)
	v.SetDefault("color", types.ColorAlways)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
}
