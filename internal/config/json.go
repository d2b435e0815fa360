package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ivnagustin/lock-logger-pwa/internal/flagx"
	"github.com/ivnagustin/lock-logger-pwa/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN   string         `json:"database_dsn"`
	ListenAddr    string         `json:"listen_addr"`
	AssetOrigin   string         `json:"asset_origin"`
	AssetCacheDir string         `json:"asset_cache_dir"`
	AssetVersion  string         `json:"asset_version"`
	ExportDir     string         `json:"export_dir"`
	ShareCommand  string         `json:"share_command"`
	FetchTimeout  timex.Duration `json:"fetch_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file located via
// the -c/-config flags. Absent file means nothing is loaded; read or parse
// errors panic (caller should recover if desired). Only non-zero fields
// override, so a partial file keeps the defaults for the rest.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.AssetOrigin != "" {
		cfg.AssetOrigin = jc.AssetOrigin
	}
	if jc.AssetCacheDir != "" {
		cfg.AssetCacheDir = jc.AssetCacheDir
	}
	if jc.AssetVersion != "" {
		cfg.AssetVersion = jc.AssetVersion
	}
	if jc.ExportDir != "" {
		cfg.ExportDir = jc.ExportDir
	}
	if jc.ShareCommand != "" {
		cfg.ShareCommand = jc.ShareCommand
	}
	if jc.FetchTimeout.Duration != 0 {
		cfg.FetchTimeout = time.Duration(jc.FetchTimeout.Duration)
	}
}
