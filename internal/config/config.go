// Package config holds runtime settings for the lock-logger binaries.
// Values are resolved defaults-first, then overlaid from an optional JSON
// file, then from command-line flags, later sources winning.
package config

import "time"

// Config holds settings shared by the CLI and the web surface.
//
// Fields:
//   - DatabaseDSN: sqlite file holding the document store.
//   - ListenAddr: host:port the web surface binds to (localhost only).
//   - AssetOrigin: base URL to fetch assets from; empty means the embedded
//     bundle.
//   - AssetCacheDir: directory holding asset cache generations.
//   - AssetVersion: generation tag; changing it triggers install+activate.
//   - ExportDir: directory the CLI writes lock-logger-data.json into.
//   - ShareCommand: optional native share helper to try before the clipboard.
//   - FetchTimeout: per-asset timeout for remote origin fetches.
type Config struct {
	DatabaseDSN   string
	ListenAddr    string
	AssetOrigin   string
	AssetCacheDir string
	AssetVersion  string
	ExportDir     string
	ShareCommand  string
	FetchTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "lock-logger.db"
	c.ListenAddr = "127.0.0.1:8080"
	c.AssetOrigin = ""
	c.AssetCacheDir = "asset-cache"
	c.AssetVersion = "v1"
	c.ExportDir = "."
	c.ShareCommand = ""
	c.FetchTimeout = 10 * time.Second
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
