package server

import (
	"context"

	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/module"
)

// RegisterRoutes sets up the page, the session API and every module under
// /api. ctx bounds the background work modules start while booting.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	homeHandler := handlers.NewHomeHandler(s.App.Store)
	sessionHandler := handlers.NewSessionHandler(s.App.Store)

	s.E.GET("/health", handlers.Health)
	s.session.GET("/", homeHandler.HomeGet)

	api := s.session.Group("/api")
	api.GET("/session", sessionHandler.Get)
	api.POST("/session/triggers/:trigger", sessionHandler.Trigger)
	api.POST("/session/navigate/:screen", sessionHandler.Navigate)
	api.POST("/session/landing/progress", sessionHandler.Progress)

	return module.Start(ctx, api, s.App.Registry, s.App.Modules)
}
