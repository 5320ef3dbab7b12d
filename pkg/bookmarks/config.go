package bookmarks

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk bookmark store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .cosmic config file or COSMIC_*
// environment variables, defaulting under the user's home directory.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.cosmic-calendar.db")
	viper.SetConfigName(".cosmic") // .yaml is implicit
	viper.SetEnvPrefix("COSMIC")
	viper.AutomaticEnv()

	if override := os.Getenv("COSMIC_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
