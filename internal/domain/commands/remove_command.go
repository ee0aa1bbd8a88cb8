package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	infraRepos "github.com/rios0rios0/repofiles/internal/infrastructure/repositories"
)

// Remove is the interface for the remove command.
type Remove interface {
	Execute(ctx context.Context, settings *entities.Settings, change entities.FileChange) error
}

// RemoveCommand deletes a file from the configured repository.
type RemoveCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
}

// NewRemoveCommand creates a new RemoveCommand with the given provider registry.
func NewRemoveCommand(providerRegistry *infraRepos.ProviderRegistry) *RemoveCommand {
	return &RemoveCommand{providerRegistry: providerRegistry}
}

// Execute deletes change.Path, resolving its SHA when ExpectedHash is empty.
func (it *RemoveCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	change entities.FileChange,
) error {
	repo, err := openRepository(it.providerRegistry, settings)
	if err != nil {
		return err
	}

	expectedHash := change.ExpectedHash
	if expectedHash == "" {
		if expectedHash, err = repo.GetContentHash(ctx, change.Path); err != nil {
			return err
		}
	}

	if err = repo.DeleteFile(ctx, change.Path, change.Message, expectedHash); err != nil {
		return err
	}
	logger.Infof("Deleted %q from %s", change.Path, repo.Reference())
	return nil
}
