// Package users holds the user repository contract and its in-memory
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

type Repository interface {
	// Create stores a new user, allocating its identifier and timestamps.
	// Returns common.ErrorConflict if the email is already taken
	// (case-sensitive match on the stored value).
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the exact email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given identifier, or
	// common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
