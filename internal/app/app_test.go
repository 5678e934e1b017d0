package app_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/nfrund/oncampus/internal/app"
	"github.com/nfrund/oncampus/internal/config"
	"github.com/nfrund/oncampus/internal/dashboard"
	"github.com/nfrund/oncampus/internal/registry"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() app.Option {
	return app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNew_WiresServices(t *testing.T) {
	cfg := config.Defaults()

	a, err := app.New(cfg, quiet(), app.WithFs(afero.NewMemMapFs()))
	require.NoError(t, err)

	store, ok := registry.Get(a.Registry, registry.SessionStoreKey)
	require.True(t, ok)
	assert.Same(t, a.Store, store)
	_, ok = registry.Get(a.Registry, registry.SubscriberKey)
	assert.True(t, ok)

	var names []string
	for _, m := range a.Modules {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"university", "employer", "student", "events"}, names)

	id, err := a.Store.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, a.Start(context.Background()))
	require.NoError(t, a.Shutdown(context.Background()))
	assert.Zero(t, a.Store.Len())
}

func TestNew_LoadsSeedFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/seeds"
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, dashboard.UniversitySeedFile),
		[]byte(`{"metrics":{"totalStudents":7}}`), 0o644))

	cfg := config.Defaults()
	cfg.SeedDir = dir

	a, err := app.New(cfg, quiet(), app.WithFs(fsys))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })

	assert.Equal(t, 7, a.Seeds.Seeds().University.Metrics.TotalStudents)
}

func TestNew_RejectsBadSeeds(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/seeds/"+dashboard.StudentSeedFile, []byte(`{`), 0o644))

	cfg := config.Defaults()
	cfg.SeedDir = "/seeds"

	_, err := app.New(cfg, quiet(), app.WithFs(fsys))
	assert.ErrorContains(t, err, "load dashboard seeds")
}

func TestNew_RejectsUnknownInitialScreen(t *testing.T) {
	cfg := config.Defaults()
	cfg.InitialScreen = "moon"

	_, err := app.New(cfg, quiet(), app.WithFs(afero.NewMemMapFs()))
	assert.ErrorContains(t, err, "ONCAMPUS_INITIAL_SCREEN")
}
