//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// StubExistsCommand is a stub implementation of commands.Exists.
type StubExistsCommand struct {
	ExecuteCallCount int
	Exists           bool
	ExecuteErr       error
	LastPath         string
}

var _ commands.Exists = (*StubExistsCommand)(nil)

func (s *StubExistsCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	path string,
) (bool, error) {
	s.ExecuteCallCount++
	s.LastPath = path
	return s.Exists, s.ExecuteErr
}
