//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// StubPutCommand is a stub implementation of commands.Put.
type StubPutCommand struct {
	ExecuteCallCount int
	Result           commands.PutResult
	ExecuteErr       error
	LastChange       entities.FileChange
}

var _ commands.Put = (*StubPutCommand)(nil)

func (s *StubPutCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	change entities.FileChange,
) (commands.PutResult, error) {
	s.ExecuteCallCount++
	s.LastChange = change
	return s.Result, s.ExecuteErr
}
