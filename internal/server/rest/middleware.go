package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/google/uuid"
)

type ctxKey string

const userKey ctxKey = "user"

// requireAuth validates the bearer token and attaches the resolved user to
// the request context before invoking the handler. This middleware is the
// only place a request acquires an identity.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			s.logger.Warn(r.Context(), "authorization header invalid", "error", err.Error(), "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := s.users.Authorize(r.Context(), token)
		if err != nil {
			s.logger.Warn(r.Context(), "token validation failed", "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "authentication failed")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next(w, r.WithContext(ctx))
	}
}

// userFromContext extracts the authenticated user set by requireAuth.
func userFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLog logs every request with a fresh request id and its outcome.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		log := s.logger.With("request_id", uuid.NewString())

		next.ServeHTTP(rec, r)

		log.Info(r.Context(), "request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
