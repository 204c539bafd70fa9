package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/sequence"
)

// MemoryRepository keeps user records in a process-local map. All access is
// serialized by a single mutex because create is a check-then-act sequence
// (email uniqueness check + insert). Password hashing happens in the service
// layer, so the lock is never held across a bcrypt call.
type MemoryRepository struct {
	mu   sync.Mutex
	seq  *sequence.Allocator
	byID map[int64]models.User
	now  func() time.Time
}

func NewMemoryRepository(seq *sequence.Allocator) *MemoryRepository {
	return &MemoryRepository{
		seq:  seq,
		byID: make(map[int64]models.User),
		now:  time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return nil, common.ErrorConflict
		}
	}

	now := r.now()

	stored := *user
	stored.ID = r.seq.Next(sequence.KindUser)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := u
	return &out, nil
}
