package config

import (
	"os"
	"strings"
)

// applyEnv overrides file values with WQ_* variables when they are set.
func (c *Config) applyEnv() {
	if v := getEnv("WQ_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := getEnv("WQ_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("WQ_VISION_ENDPOINT"); v != "" {
		c.Vision.Endpoint = v
	}
	if v := getEnv("WQ_VISION_KEY"); v != "" {
		c.Vision.Key = v
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
