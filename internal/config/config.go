package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config carries file-supplied defaults for the generate command. Flags set
// explicitly on the command line always win over these.
type Config struct {
	MainRegion    string `mapstructure:"main_region"`
	Templates     string `mapstructure:"templates"`
	ValidateFile  string `mapstructure:"validate_file"`
	Output        OutputConfig `mapstructure:"output"`
	UnifiedModule string       `mapstructure:"unified_module"`
}

type OutputConfig struct {
	Format      string `mapstructure:"format"`
	NoComments  bool   `mapstructure:"no_comments"`
	ShowSkipped bool   `mapstructure:"show_skipped"`
}

// Load reads the config file at path, or the default ./migrate-moved.yaml when
// path is empty. A missing default file yields zero-value defaults, not an
// error; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("unified_module", "baseline_unified")
	v.SetDefault("output.format", "hcl")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("migrate-moved")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && (errors.As(err, &notFound) || os.IsNotExist(err)) {
			// no config file is fine, flags cover everything
		} else {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
