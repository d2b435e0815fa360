package config

import (
	"flag"
	"os"
	"time"

	"github.com/ivnagustin/lock-logger-pwa/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   sqlite database file
//	-l string   listen address of the web surface
//	-o string   asset origin base URL (empty = embedded bundle)
//	-e string   export directory
//	-s string   native share command
//	-t int      asset fetch timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-o", "-e", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite database file")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "web listen address")
	fs.StringVar(&cfg.AssetOrigin, "o", cfg.AssetOrigin, "asset origin base URL")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.ShareCommand, "s", cfg.ShareCommand, "native share command")
	fetchTimeout := fs.Int("t", int(cfg.FetchTimeout.Seconds()), "asset fetch timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.FetchTimeout = time.Duration(*fetchTimeout) * time.Second
}
