package app

import (
	"fmt"
	"log/slog"

	"github.com/nfrund/oncampus/internal/auth"
	"github.com/nfrund/oncampus/internal/config"
	"github.com/nfrund/oncampus/internal/dashboard"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/invite"
	"github.com/nfrund/oncampus/internal/logging"
	"github.com/nfrund/oncampus/internal/pubsub"
	"github.com/nfrund/oncampus/internal/registry"
	"github.com/nfrund/oncampus/internal/session"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Logger      *slog.Logger
	EventBuffer int
}

func provideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return logging.New(cfg.GetLogFormat(), cfg.GetLogLevel()), nil
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return pubsub.NewWatermillBridge(cfg.GetEventBuffer()), nil
}

func provideEmitter(i do.Injector) (*events.Emitter, error) {
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	return events.NewEmitter(bus, do.MustInvoke[*slog.Logger](i)), nil
}

func provideSeeds(i do.Injector) (*dashboard.SeedStore, error) {
	cfg := do.MustInvoke[config.Provider](i)
	seeds := dashboard.NewSeedStore(do.MustInvoke[afero.Fs](i), cfg.GetSeedDir(), do.MustInvoke[*slog.Logger](i))
	if err := seeds.Load(); err != nil {
		return nil, fmt.Errorf("load dashboard seeds: %w", err)
	}
	return seeds, nil
}

func provideAuth(i do.Injector) (domain.Authenticator, error) {
	return auth.NewMock(do.MustInvoke[*slog.Logger](i)), nil
}

func provideStore(i do.Injector) (*session.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	logger := do.MustInvoke[*slog.Logger](i)

	initial, err := domain.ParseScreen(cfg.GetInitialScreen())
	if err != nil {
		return nil, fmt.Errorf("ONCAMPUS_INITIAL_SCREEN: %w", err)
	}

	factory := session.FactoryFor(session.Dependencies{
		Auth:           do.MustInvoke[domain.Authenticator](i),
		Seeds:          do.MustInvoke[*dashboard.SeedStore](i),
		Emitter:        do.MustInvoke[*events.Emitter](i),
		Logger:         logger,
		InitialScreen:  initial,
		DashboardGuard: cfg.GetDashboardGuard(),
		MinSkills:      cfg.GetMinSkills(),
		Invite: invite.Config{
			Cap:      cfg.GetInviteCap(),
			Interval: cfg.GetInviteInterval(),
			MaxStep:  cfg.GetInviteMaxStep(),
		},
		InviteLink: cfg.GetInviteLink(),
	})
	return session.NewStore(factory, logger), nil
}

func provideRegistry(i do.Injector) (*registry.Registry, error) {
	reg := registry.New(do.MustInvoke[config.Provider](i))
	registry.Set(reg, registry.SessionStoreKey, do.MustInvoke[*session.Store](i))
	registry.Set(reg, registry.SubscriberKey, pubsub.Subscriber(do.MustInvoke[*pubsub.WatermillBridge](i)))
	return reg, nil
}
