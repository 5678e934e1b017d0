package server_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nfrund/oncampus/internal/app"
	"github.com/nfrund/oncampus/internal/config"
	"github.com/nfrund/oncampus/internal/server"
	"github.com/nfrund/oncampus/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// setupIntegrationTest assembles the whole application the way main does,
// with a counter that never ticks during a test, and returns a client for it.
func setupIntegrationTest(t *testing.T, initial string) (*server.Server, *testutils.Client) {
	t.Helper()

	cfg := config.Defaults()
	cfg.InitialScreen = initial
	cfg.InviteInterval = time.Hour

	a, err := app.New(cfg,
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		app.WithFs(afero.NewMemMapFs()),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, a.Start(ctx))

	s := server.New(a)
	require.NoError(t, s.RegisterRoutes(ctx))

	t.Cleanup(func() {
		cancel()
		require.NoError(t, a.Shutdown(context.Background()))
	})
	return s, testutils.NewClient(t, s.E)
}
