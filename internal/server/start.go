package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// ShutdownTimeout bounds the graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal, then
// drains connections and shuts the application down.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		addr := s.App.Config.GetServerAddr()
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-waitForShutdown():
		slog.Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	err := s.E.Shutdown(ctx)
	return errors.Join(err, s.App.Shutdown(ctx))
}
