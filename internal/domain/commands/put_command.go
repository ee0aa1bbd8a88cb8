package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	infraRepos "github.com/rios0rios0/repofiles/internal/infrastructure/repositories"
)

// Put is the interface for the put command (create or update).
type Put interface {
	Execute(ctx context.Context, settings *entities.Settings, change entities.FileChange) (PutResult, error)
}

// PutResult describes which write a put performed.
type PutResult struct {
	Path string
	// Created is true when the create path was taken, including the case where a
	// concurrent writer created the file first.
	Created bool
}

// PutCommand writes a file, creating it when missing and updating it otherwise.
type PutCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
}

// NewPutCommand creates a new PutCommand with the given provider registry.
func NewPutCommand(providerRegistry *infraRepos.ProviderRegistry) *PutCommand {
	return &PutCommand{providerRegistry: providerRegistry}
}

// Execute writes change.Content to change.Path. With an ExpectedHash the file is
// updated directly; otherwise the current SHA is looked up first.
func (it *PutCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	change entities.FileChange,
) (PutResult, error) {
	result := PutResult{Path: change.Path}

	repo, err := openRepository(it.providerRegistry, settings)
	if err != nil {
		return result, err
	}

	expectedHash := change.ExpectedHash
	if expectedHash == "" {
		exists, existsErr := repo.FileExists(ctx, change.Path)
		if existsErr != nil {
			return result, fmt.Errorf("failed to check %q: %w", change.Path, existsErr)
		}

		if !exists {
			if createErr := repo.CreateFile(ctx, change.Path, change.Message, change.Content); createErr != nil {
				return result, createErr
			}
			logger.Infof("Created %q in %s", change.Path, repo.Reference())
			result.Created = true
			return result, nil
		}

		expectedHash, err = repo.GetContentHash(ctx, change.Path)
		if err != nil {
			return result, err
		}
	}

	if err = repo.UpdateFile(ctx, change.Path, change.Message, change.Content, expectedHash); err != nil {
		return result, err
	}
	logger.Infof("Updated %q in %s", change.Path, repo.Reference())
	return result, nil
}
