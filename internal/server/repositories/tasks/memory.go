package tasks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/sequence"
)

// MemoryRepository keeps task records in a process-local map, serialized by
// a single mutex. Reads are linear scans, acceptable at this scope.
type MemoryRepository struct {
	mu   sync.Mutex
	seq  *sequence.Allocator
	byID map[int64]models.Task
	now  func() time.Time
}

func NewMemoryRepository(seq *sequence.Allocator) *MemoryRepository {
	return &MemoryRepository{
		seq:  seq,
		byID: make(map[int64]models.Task),
		now:  time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, ownerID int64, draft models.TaskDraft) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	task := models.Task{
		ID:          r.seq.Next(sequence.KindTask),
		Title:       draft.Title,
		Description: draft.Description,
		Completed:   false,
		Priority:    draft.Priority,
		UserID:      ownerID,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	r.byID[task.ID] = task

	out := task
	return &out, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID int64, filter models.TaskFilter) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	search := strings.ToLower(filter.Search)

	matched := make([]*models.Task, 0)
	for _, t := range r.byID {
		if t.UserID != ownerID {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		if filter.Priority != nil && t.Priority != *filter.Priority {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out := t
		matched = append(matched, &out)
	}

	// Newest first; identifier descending breaks creation-time ties so the
	// order is deterministic.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	return matched, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, ownerID, id int64) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.find(ownerID, id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := t
	return &out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, ownerID, id int64, patch models.TaskPatch) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.find(ownerID, id)
	if !ok {
		return nil, common.ErrorNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	t.UpdatedAt = r.now()

	r.byID[id] = t

	out := t
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, ownerID, id int64) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.find(ownerID, id)
	if !ok {
		return nil, common.ErrorNotFound
	}

	delete(r.byID, id)

	out := t
	return &out, nil
}

// find reports a task only when both identifier and owner match, so a
// foreign task is indistinguishable from a missing one. Callers must hold
// the mutex.
func (r *MemoryRepository) find(ownerID, id int64) (models.Task, bool) {
	t, ok := r.byID[id]
	if !ok || t.UserID != ownerID {
		return models.Task{}, false
	}
	return t, true
}
