// Package cli is the interactive REPL surface of lock-logger. Every command
// maps to one service operation; the REPL never touches the document
// directly.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/ivnagustin/lock-logger-pwa/internal/config"
	"github.com/ivnagustin/lock-logger-pwa/internal/logging"
	"github.com/ivnagustin/lock-logger-pwa/internal/service"
	"github.com/ivnagustin/lock-logger-pwa/internal/share"
	"github.com/ivnagustin/lock-logger-pwa/internal/store"
)

type App struct {
	config *config.Config
	svc    *service.Log
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(false)

	db, err := store.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	docs := store.NewDocumentStore(store.NewSQLiteRepository(db), log)
	chain := share.DefaultChain(cfg.ShareCommand, os.Stdout)

	svc, err := service.New(ctx, docs, chain, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		svc:    svc,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}
