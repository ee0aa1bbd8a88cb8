package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	infraRepos "github.com/rios0rios0/repofiles/internal/infrastructure/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings, path string) ([]entities.ContentItem, error)
}

// ListCommand lists the entries at a path of the configured repository.
type ListCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
}

// NewListCommand creates a new ListCommand with the given provider registry.
func NewListCommand(providerRegistry *infraRepos.ProviderRegistry) *ListCommand {
	return &ListCommand{providerRegistry: providerRegistry}
}

// Execute returns the content items at path.
func (it *ListCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	path string,
) ([]entities.ContentItem, error) {
	repo, err := openRepository(it.providerRegistry, settings)
	if err != nil {
		return nil, err
	}

	items, err := repo.ListContents(ctx, path)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Listed %d entries at %q in %s", len(items), path, repo.Reference())
	return items, nil
}
