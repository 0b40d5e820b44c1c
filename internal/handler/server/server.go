package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/config"
)

type Server struct {
	server *http.Server
	log    *slog.Logger
}

func NewServer(handler http.Handler, cfg config.HTTPConfig, log *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		log: log,
	}
}

// Start блокируется до остановки сервера; штатная остановка не считается ошибкой
func (s *Server) Start() error {
	s.log.Info("server starting", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
