package rest

import "net/http"

// Handler assembles the route table. Everything under /api/v1/tasks and
// /api/v1/auth/me goes through the authentication middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/v1/auth/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("GET /api/v1/tasks", s.requireAuth(s.handleListTasks))
	mux.HandleFunc("POST /api/v1/tasks", s.requireAuth(s.handleCreateTask))
	mux.HandleFunc("GET /api/v1/tasks/{id}", s.requireAuth(s.handleGetTask))
	mux.HandleFunc("PUT /api/v1/tasks/{id}", s.requireAuth(s.handleUpdateTask))
	mux.HandleFunc("DELETE /api/v1/tasks/{id}", s.requireAuth(s.handleDeleteTask))

	return s.withRequestLog(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
