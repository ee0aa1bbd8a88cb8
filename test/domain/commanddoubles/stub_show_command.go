//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// StubShowCommand is a stub implementation of commands.Show.
type StubShowCommand struct {
	ExecuteCallCount int
	Result           commands.ShowResult
	ExecuteErr       error
	LastPath         string
}

var _ commands.Show = (*StubShowCommand)(nil)

func (s *StubShowCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	path string,
) (commands.ShowResult, error) {
	s.ExecuteCallCount++
	s.LastPath = path
	return s.Result, s.ExecuteErr
}
