package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/scicon-platform/scicon-cli/internal/client/cli"
	"github.com/scicon-platform/scicon-cli/internal/client/config"
	"github.com/scicon-platform/scicon-cli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
