// Package app wires the application's services together and owns their
// lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/oncampus/internal/config"
	"github.com/nfrund/oncampus/internal/dashboard"
	"github.com/nfrund/oncampus/internal/module"
	"github.com/nfrund/oncampus/internal/pubsub"
	"github.com/nfrund/oncampus/internal/registry"
	"github.com/nfrund/oncampus/internal/session"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

const (
	// JanitorInterval is how often idle sessions are pruned.
	JanitorInterval = 5 * time.Minute
	// SessionIdle is how long a session may go unused before it is dropped.
	SessionIdle = 30 * time.Minute
)

// App is the assembled application.
type App struct {
	Config   config.Provider
	Logger   *slog.Logger
	Bus      *pubsub.WatermillBridge
	Seeds    *dashboard.SeedStore
	Store    *session.Store
	Registry *registry.Registry
	Modules  []module.Module

	injector *do.RootScope
	cancel   context.CancelFunc
}

type options struct {
	logger *slog.Logger
	fs     afero.Fs
}

// Option overrides a service before the application is assembled.
type Option func(*options)

// WithLogger uses logger instead of one built from the configuration.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFs reads seed files from fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) { o.fs = fsys }
}

// New builds every service from cfg.
func New(cfg config.Provider, opts ...Option) (*App, error) {
	o := options{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, o.fs)
	if o.logger != nil {
		do.ProvideValue(i, o.logger)
	} else {
		do.Provide(i, provideLogger)
	}
	do.Provide(i, provideBus)
	do.Provide(i, provideEmitter)
	do.Provide(i, provideSeeds)
	do.Provide(i, provideAuth)
	do.Provide(i, provideStore)
	do.Provide(i, provideRegistry)

	a := &App{Config: cfg, injector: i}
	var err error
	if a.Logger, err = do.Invoke[*slog.Logger](i); err != nil {
		return nil, err
	}
	if a.Bus, err = do.Invoke[*pubsub.WatermillBridge](i); err != nil {
		return nil, err
	}
	if a.Seeds, err = do.Invoke[*dashboard.SeedStore](i); err != nil {
		return nil, err
	}
	if a.Store, err = do.Invoke[*session.Store](i); err != nil {
		return nil, err
	}
	if a.Registry, err = do.Invoke[*registry.Registry](i); err != nil {
		return nil, err
	}

	a.Modules = NewModules(Dependencies{
		Logger:      a.Logger,
		EventBuffer: cfg.GetEventBuffer(),
	})
	return a, nil
}

// Start launches the background work: the session janitor and, when
// configured, the seed directory watcher. It stops when ctx is done or on
// Shutdown.
func (a *App) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	if a.Config.GetSeedWatch() && a.Config.GetSeedDir() != "" {
		if err := a.Seeds.Watch(ctx); err != nil {
			a.cancel()
			return fmt.Errorf("watch seeds: %w", err)
		}
	}
	go a.Store.RunJanitor(ctx, JanitorInterval, SessionIdle)
	return nil
}

// Shutdown stops the modules in reverse order, then the sessions and the
// event bus.
func (a *App) Shutdown(ctx context.Context) error {
	if a.cancel != nil {
		a.cancel()
	}
	err := module.ShutdownAll(ctx, a.Modules)
	a.Store.Close()
	if cerr := a.Bus.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("close event bus: %w", cerr))
	}
	if report := a.injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		err = errors.Join(err, fmt.Errorf("shutdown services: %d failed", len(report.Errors)))
	}
	return err
}
