//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// StubRemoveCommand is a stub implementation of commands.Remove.
type StubRemoveCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastChange       entities.FileChange
}

var _ commands.Remove = (*StubRemoveCommand)(nil)

func (s *StubRemoveCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	change entities.FileChange,
) error {
	s.ExecuteCallCount++
	s.LastChange = change
	return s.ExecuteErr
}
