package repomanager

import (
	"context"

	"github.com/dmitrijs2005/eventauth/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Identities
// are lost on restart; intended for development and tests.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Ping(context.Context) error          { return nil }
func (m *MemoryRepositoryManager) Close() error                        { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}
