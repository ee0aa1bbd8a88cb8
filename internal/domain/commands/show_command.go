package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	infraRepos "github.com/rios0rios0/repofiles/internal/infrastructure/repositories"
)

var (
	errNotAFile         = errors.New("path is not a single file")
	errContentNotLoaded = errors.New("content is too large for the contents API")
)

// Show is the interface for the show command.
type Show interface {
	Execute(ctx context.Context, settings *entities.Settings, path string) (ShowResult, error)
}

// ShowResult is a file's content together with the SHA needed to modify it.
type ShowResult struct {
	Path    string
	Content string
	SHA     string
}

// ShowCommand reads a single file.
type ShowCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
}

// NewShowCommand creates a new ShowCommand with the given provider registry.
func NewShowCommand(providerRegistry *infraRepos.ProviderRegistry) *ShowCommand {
	return &ShowCommand{providerRegistry: providerRegistry}
}

// Execute returns the content and current SHA of the file at path.
func (it *ShowCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	path string,
) (ShowResult, error) {
	repo, err := openRepository(it.providerRegistry, settings)
	if err != nil {
		return ShowResult{}, err
	}

	// content and SHA must come from the same listing, otherwise a concurrent
	// commit could pair old content with the new SHA
	items, err := repo.ListContents(ctx, path)
	if err != nil {
		var apiErr *entities.RemoteAPIError
		if errors.As(err, &apiErr) && apiErr.IsStatus(http.StatusNotFound) {
			return ShowResult{}, &entities.NotFoundError{Path: path, Err: err}
		}
		return ShowResult{}, err
	}
	if len(items) != 1 || items[0].Path != strings.Trim(path, "/") || items[0].IsDir() {
		return ShowResult{}, &entities.NotFoundError{Path: path, Err: errNotAFile}
	}

	item := items[0]
	if !item.ContentLoaded {
		return ShowResult{}, fmt.Errorf("%w: %q (%d bytes)", errContentNotLoaded, path, item.Size)
	}
	return ShowResult{Path: path, Content: item.Content, SHA: item.SHA}, nil
}
