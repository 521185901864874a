package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pkgrove/revscan/pkg/remotes"
)

// Config is the revscan configuration. Remote order in the file is the
// query order everywhere.
type Config struct {
	Remotes []remotes.Remote `mapstructure:"remotes"`
}

// Load reads the YAML configuration at the given path.
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	var config Config

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	for i, r := range config.Remotes {
		if r.Name == "" {
			return nil, fmt.Errorf("remote %d has no name", i)
		}
		if r.Kind == "" {
			config.Remotes[i].Kind = remotes.KindConan
		}
	}

	return &config, nil
}
