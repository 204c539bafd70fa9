// Package repomanager aggregates the repositories a service needs behind a
// single constructor-injected handle.
package repomanager

import (
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository
}
