// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and resolving bearer
// tokens to live user records.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users and mint their first token
// - Login: verify credentials and mint tokens
// - Authorize: resolve a bearer token to a live user record
type UserService struct {
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register creates a new user and returns it together with a signed token.
// The password is hashed here, before the store is touched, so no store lock
// is ever held during the bcrypt computation. A duplicate email yields
// common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(u.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return u, token, nil
}

// Login verifies the provided credentials and, on success, returns the user
// and a signed token. An unknown email and a wrong password produce the same
// common.ErrorUnauthorized, so callers cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Authorize resolves a bearer token to a live user record. It is the single
// gate that attaches an authenticated identity to a request: token
// verification failures and a dangling user identifier all collapse into
// common.ErrorUnauthorized.
func (s *UserService) Authorize(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}
