package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/ivnagustin/lock-logger-pwa/internal/assets"
	"github.com/ivnagustin/lock-logger-pwa/internal/buildinfo"
	"github.com/ivnagustin/lock-logger-pwa/internal/config"
	"github.com/ivnagustin/lock-logger-pwa/internal/logging"
	"github.com/ivnagustin/lock-logger-pwa/internal/service"
	"github.com/ivnagustin/lock-logger-pwa/internal/share"
	"github.com/ivnagustin/lock-logger-pwa/internal/store"
	"github.com/ivnagustin/lock-logger-pwa/internal/web"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(false)

	db, err := store.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	docs := store.NewDocumentStore(store.NewSQLiteRepository(db), logger)
	chain := share.DefaultChain(cfg.ShareCommand, os.Stdout)

	svc, err := service.New(ctx, docs, chain, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var origin assets.Origin = assets.NewFSOrigin(web.Bundle())
	if cfg.AssetOrigin != "" {
		origin = assets.NewHTTPOrigin(cfg.AssetOrigin, &http.Client{Timeout: cfg.FetchTimeout})
	}

	cache := assets.NewCache(cfg.AssetCacheDir, cfg.AssetVersion, origin, logger)
	if err := cache.Install(ctx); err != nil {
		// Without a populated cache the handler still serves the live origin,
		// so a failed install is not fatal.
		logger.Warn(ctx, "asset install failed", "err", err)
	} else if err := cache.Activate(ctx); err != nil {
		logger.Warn(ctx, "asset activate failed", "err", err)
	}

	srv := web.NewServer(svc, cache, logger)
	logger.Info(ctx, "listening", "addr", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Router()); err != nil {
		log.Fatalf("%v", err)
	}

}
