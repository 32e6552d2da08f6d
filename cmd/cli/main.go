package main

import (
	"context"
	"log"

	"github.com/storydeck/storydeck/internal/client/cli"
	"github.com/storydeck/storydeck/internal/client/config"
	"github.com/storydeck/storydeck/pkg/logger"
)

func main() {

	cfg := config.LoadConfig()

	zl := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	app, err := cli.NewApp(cfg, zl)
	if err != nil {
		log.Fatalf("boot error: %v", err)
	}

	app.Run(context.Background())
}
