package main

import (
	"context"
	"log"
	"os"

	"github.com/ivnagustin/lock-logger-pwa/internal/buildinfo"
	"github.com/ivnagustin/lock-logger-pwa/internal/cli"
	"github.com/ivnagustin/lock-logger-pwa/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
