package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/voxlabs/chirp/config"
	"github.com/voxlabs/chirp/pkg/otel"
	"github.com/voxlabs/chirp/server"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "configuration file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	ctx := context.Background()

	if err := otel.Setup(ctx, "chirp", version); err != nil {
		slog.Error("failed to set up telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "address", cfg.Address, "output", cfg.Store.Dir())

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
