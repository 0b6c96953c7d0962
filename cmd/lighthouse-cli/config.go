package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the shape of the optional TOML config file. Any field left
// unset falls back to its LIGHTHOUSE_* environment variable; a URL still
// unset then falls back to the package default. Username and token have no
// default.
type fileConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return fileConfig{}, err
		}
	}
	if cfg.URL == "" {
		cfg.URL = os.Getenv("LIGHTHOUSE_URL")
	}
	if cfg.Username == "" {
		cfg.Username = os.Getenv("LIGHTHOUSE_USER")
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("LIGHTHOUSE_TOKEN")
	}
	return cfg, nil
}
