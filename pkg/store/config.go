package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from an .actlog config file or the
// ACTLOG_PATH environment variable, defaulting to ~/.actlog.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.actlog.db")
	viper.SetConfigName(".actlog") // .yaml is implicit
	viper.SetEnvPrefix("ACTLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("ACTLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	return &fileConfig{Path: path}, nil
}

// PathConfig wraps a literal base path, for tests and --path overrides.
func PathConfig(path string) Config {
	return &fileConfig{Path: path}
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
