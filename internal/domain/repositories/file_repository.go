package repositories

import (
	"context"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

// FileRepository performs file-level operations against one repository on a Git
// hosting service. Implementations hold no mutable state and are safe for
// concurrent use; optimistic concurrency is enforced by the remote service through
// the blob SHA passed as expectedHash.
type FileRepository interface {
	// Reference returns the repository the implementation is bound to.
	Reference() entities.RepositoryReference

	// ListContents returns the entries at path: one item for a file, the
	// children for a directory.
	ListContents(ctx context.Context, path string) ([]entities.ContentItem, error)

	// FileExists reports whether anything exists at path. A missing path is
	// (false, nil), not an error.
	FileExists(ctx context.Context, path string) (bool, error)

	// CreateFile commits a new file. A "file already exists" answer from the
	// service is treated as success.
	CreateFile(ctx context.Context, path, message string, content []byte) error

	// UpdateFile overwrites path, provided expectedHash is its current SHA.
	UpdateFile(ctx context.Context, path, message string, content []byte, expectedHash string) error

	// DeleteFile removes path, provided expectedHash is its current SHA.
	DeleteFile(ctx context.Context, path, message, expectedHash string) error

	// GetContentHash returns the SHA of the first item listed at path.
	GetContentHash(ctx context.Context, path string) (string, error)

	// GetFileContent returns the decoded content of the file at path.
	GetFileContent(ctx context.Context, path string) (string, error)
}
