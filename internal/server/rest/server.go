// Package rest exposes the taskboard API over HTTP. Handlers translate wire
// payloads into service calls and map sentinel errors to status codes; all
// domain rules live below this layer.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	tasks   *services.TaskService
}

func NewServer(a string, l logging.Logger, us *services.UserService, ts *services.TaskService) (*Server, error) {
	return &Server{
		address: a,
		logger:  l.With("module", "rest_server"),
		users:   us,
		tasks:   ts,
	}, nil
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping REST server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting REST server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
