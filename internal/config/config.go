package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	// "-" discards logs. The terminal UI owns stdout.
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Bot      Bot    `yaml:"bot"`
	Search   Search `yaml:"search"`
}

type Bot struct {
	// Mark is X, O or random. X always moves first.
	Mark string `yaml:"mark" env:"BOT_MARK" env-default:"O"`
}

type Search struct {
	Parallel bool `yaml:"parallel" env:"SEARCH_PARALLEL" env-default:"false"`
	Workers  int  `yaml:"workers" env:"SEARCH_WORKERS" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file. When the file does
// not exist the configuration comes from the environment and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
