// Package config handles configuration for the CLI client.
package config

// Config holds runtime settings for the taskboard CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST endpoint.
type Config struct {
	ServerBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:3000"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}
