package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by Load.
const EnvPrefix = "FINDFILES"

// Config holds the persistent defaults of the dialog.
type Config struct {
	Name          string `mapstructure:"name"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
	Hidden        bool   `mapstructure:"hidden"`
	SkipBinary    bool   `mapstructure:"skip_binary"`
	Opener        string `mapstructure:"opener"`
	Debug         bool   `mapstructure:"debug"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Name: "*",
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"name":           "name",
	"case-sensitive": "case_sensitive",
	"hidden":         "hidden",
	"skip-binary":    "skip_binary",
	"opener":         "opener",
	"debug":          "debug",
}

// DefaultConfigPath returns the per-user config file location, or "" when
// the user config directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "findfiles", "config.yaml")
}

// Load resolves the configuration from defaults, the config file,
// FINDFILES_* environment variables and the flags of cmd, in increasing
// precedence. cfgFile names an explicit config file that must exist; when
// empty the default location is used if present.
func Load(cmd *cobra.Command, cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, cfgFile); err != nil {
		return nil, err
	}

	if cmd != nil {
		bindFlags(v, cmd)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", DefaultConfig.Name)
	v.SetDefault("case_sensitive", DefaultConfig.CaseSensitive)
	v.SetDefault("hidden", DefaultConfig.Hidden)
	v.SetDefault("skip_binary", DefaultConfig.SkipBinary)
	v.SetDefault("opener", DefaultConfig.Opener)
	v.SetDefault("debug", DefaultConfig.Debug)
}

func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile == "" {
		cfgFile = DefaultConfigPath()
		if cfgFile == "" {
			return nil
		}
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	v.SetConfigFile(cfgFile)
	if filepath.Ext(cfgFile) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", cfgFile, err)
	}
	return nil
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for flagName, key := range flagKeys {
		if flag := cmd.Flags().Lookup(flagName); flag != nil {
			_ = v.BindPFlag(key, flag)
		}
	}
}
