package rest

import (
	"context"
	"net/http"

	"housing-watcher-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(httpPort string, logger port.LoggerPort, handlers *SubscribersHandler) *Server {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware(logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/subscribers", handlers.AddSubscriber)
		r.Get("/health", handlers.Health)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + httpPort,
			Handler: r,
		},
	}
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
