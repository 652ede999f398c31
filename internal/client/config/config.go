package config

import "time"

// Config holds runtime settings for the Teebay CLI.
type Config struct {
	GraphQLEndpoint string
	DataDir         string
	RequestTimeout  time.Duration
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GraphQLEndpoint = "http://localhost:4000/graphql"
	c.DataDir = ".teebay"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, the JSON file, the
// environment and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
