package commands

import (
	"fmt"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	"github.com/rios0rios0/repofiles/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/repofiles/internal/infrastructure/repositories"
)

// openRepository resolves the file repository for the provider named in settings.
func openRepository(
	registry *infraRepos.ProviderRegistry,
	settings *entities.Settings,
) (repositories.FileRepository, error) {
	repo, err := registry.Get(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider %q: %w", settings.Provider, err)
	}
	return repo, nil
}
