package commands

import (
	"context"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	infraRepos "github.com/rios0rios0/repofiles/internal/infrastructure/repositories"
)

// Exists is the interface for the exists command.
type Exists interface {
	Execute(ctx context.Context, settings *entities.Settings, path string) (bool, error)
}

// ExistsCommand checks whether a path exists in the configured repository.
type ExistsCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
}

// NewExistsCommand creates a new ExistsCommand with the given provider registry.
func NewExistsCommand(providerRegistry *infraRepos.ProviderRegistry) *ExistsCommand {
	return &ExistsCommand{providerRegistry: providerRegistry}
}

// Execute reports whether path exists. A missing path is not an error.
func (it *ExistsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	path string,
) (bool, error) {
	repo, err := openRepository(it.providerRegistry, settings)
	if err != nil {
		return false, err
	}
	return repo.FileExists(ctx, path)
}
