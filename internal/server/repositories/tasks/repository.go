// Package tasks holds the owner-scoped task repository contract and its
// in-memory implementation.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// Repository stores task records bound to an owning user. Every operation
// takes the acting owner's identifier first; a task that exists but belongs
// to another owner is reported exactly like a missing one
// (common.ErrorNotFound), so callers cannot probe for foreign records.
type Repository interface {
	// Create stores a new task for ownerID, assigning identifier, owner,
	// timestamps, and defaults (priority medium, not completed).
	Create(ctx context.Context, ownerID int64, draft models.TaskDraft) (*models.Task, error)

	// ListByOwner returns the owner's tasks matching filter, ordered by
	// creation timestamp descending with ties broken by identifier
	// descending.
	ListByOwner(ctx context.Context, ownerID int64, filter models.TaskFilter) ([]*models.Task, error)

	// GetByID returns the owner's task with the given identifier.
	GetByID(ctx context.Context, ownerID, id int64) (*models.Task, error)

	// Update applies the patch's set fields to the owner's task and
	// refreshes its update timestamp. Identifier, owner, and creation
	// timestamp are immutable regardless of the payload.
	Update(ctx context.Context, ownerID, id int64, patch models.TaskPatch) (*models.Task, error)

	// Delete removes the owner's task and returns the prior value.
	Delete(ctx context.Context, ownerID, id int64) (*models.Task, error)
}
