package repomanager

import (
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/users"
	"github.com/dmitrijs2005/taskboard/internal/server/sequence"
)

type MemoryRepositoryManager struct {
	users users.Repository
	tasks tasks.Repository
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

// NewMemoryRepositoryManager builds fresh in-memory stores sharing one
// identifier allocator. Constructed once at process start (or per test for
// isolation) and passed to collaborators by handle.
func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	seq := sequence.NewAllocator()
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(seq),
		tasks: tasks.NewMemoryRepository(seq),
	}
}
