package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath   string `yaml:"db_path"`
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
	Vision   Vision `yaml:"vision"`
	Chat     Chat   `yaml:"chat"`
}

// Vision configures the camera mood detector. An empty endpoint means every
// detection falls back to a random mood.
type Vision struct {
	Endpoint string        `yaml:"endpoint"`
	Key      string        `yaml:"key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Chat bounds the pause before the support bot answers.
type Chat struct {
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
}

func Default() Config {
	c := Config{}
	c.ApplyDefaults()
	return c
}

func (v *Vision) ApplyDefaults() {
	if v.Timeout <= 0 {
		v.Timeout = 10 * time.Second
	}
}

func (c *Chat) ApplyDefaults() {
	if c.MinDelay <= 0 {
		c.MinDelay = time.Second
	}
	if c.MaxDelay < c.MinDelay {
		c.MaxDelay = c.MinDelay + time.Second
	}
}

func (c *Config) ApplyDefaults() {
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath()
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	c.Vision.ApplyDefaults()
	c.Chat.ApplyDefaults()
}

// Load reads the YAML file at path, applies env overrides and fills defaults.
// A missing file is not an error; an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	c.applyEnv()
	c.ApplyDefaults()
	return &c, nil
}
