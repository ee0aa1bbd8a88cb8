//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repofiles/internal/domain/commands"
	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	Items            []entities.ContentItem
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastPath         string
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	path string,
) ([]entities.ContentItem, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastPath = path
	return s.Items, s.ExecuteErr
}
