package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authPayload bundles the outward user view with a freshly minted token.
type authPayload struct {
	User  models.UserView `json:"user"`
	Token string          `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	var details []string
	details = append(details, validateName(req.Name)...)
	details = append(details, validateEmail(req.Email)...)
	details = append(details, validatePassword(req.Password)...)
	if len(details) > 0 {
		writeValidationError(w, details)
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	writeData(w, http.StatusCreated, "user registered successfully", authPayload{User: user.View(), Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "please provide email and password")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user logged in", "user_id", user.ID)
	writeData(w, http.StatusOK, "login successful", authPayload{User: user.View(), Token: token})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeData(w, http.StatusOK, "", user.View())
}
