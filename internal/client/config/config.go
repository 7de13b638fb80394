// Package config handles configuration for the CLI client:
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the FileVault CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - ChunkSize: upload chunk size in bytes; content larger than this is
//     split into a multi-chunk upload.
type Config struct {
	ServerEndpointAddr string
	ChunkSize          int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.ChunkSize = 1 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
