package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/nfrund/oncampus/internal/app"
	"github.com/nfrund/oncampus/internal/config"
	"github.com/nfrund/oncampus/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		// slog is not configured until the application is assembled.
		log.Fatalf("Invalid configuration: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to assemble the application: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.Start(ctx); err != nil {
		slog.Error("Failed to start background services", "error", err)
		os.Exit(1)
	}

	// Create a new server instance and register all application routes.
	s := server.New(a)
	if err := s.RegisterRoutes(ctx); err != nil {
		slog.Error("Failed to boot modules", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with an error", "error", err)
		os.Exit(1)
	}
}
