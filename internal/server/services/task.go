package services

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/repomanager"
)

// TaskService exposes owner-scoped task operations. Input shapes (title
// length, priority enum) are validated by the boundary layer before they
// reach this service; ownership is enforced by the repository on every call.
type TaskService struct {
	repomanager repomanager.RepositoryManager
}

func NewTaskService(m repomanager.RepositoryManager) *TaskService {
	return &TaskService{repomanager: m}
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, draft models.TaskDraft) (*models.Task, error) {
	return s.repomanager.Tasks().Create(ctx, ownerID, draft)
}

func (s *TaskService) List(ctx context.Context, ownerID int64, filter models.TaskFilter) ([]*models.Task, error) {
	return s.repomanager.Tasks().ListByOwner(ctx, ownerID, filter)
}

func (s *TaskService) Get(ctx context.Context, ownerID, id int64) (*models.Task, error) {
	return s.repomanager.Tasks().GetByID(ctx, ownerID, id)
}

func (s *TaskService) Update(ctx context.Context, ownerID, id int64, patch models.TaskPatch) (*models.Task, error) {
	return s.repomanager.Tasks().Update(ctx, ownerID, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id int64) (*models.Task, error) {
	return s.repomanager.Tasks().Delete(ctx, ownerID, id)
}
