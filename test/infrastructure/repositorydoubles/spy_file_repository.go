//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	"github.com/rios0rios0/repofiles/internal/domain/repositories"
)

// WriteCall records a single CreateFile, UpdateFile or DeleteFile invocation.
type WriteCall struct {
	Path         string
	Message      string
	Content      []byte
	ExpectedHash string
}

// SpyFileRepository implements repositories.FileRepository as a configurable spy.
type SpyFileRepository struct {
	mu sync.Mutex

	// --- identity ---
	Ref entities.RepositoryReference

	// --- ListContents ---
	Items       map[string][]entities.ContentItem // path -> items
	ListErr     error
	ListedPaths []string

	// --- FileExists ---
	ExistingFiles map[string]bool // path -> exists
	ExistsErr     error
	CheckedPaths  []string

	// --- CreateFile ---
	CreateErr   error
	CreateCalls []WriteCall

	// --- UpdateFile ---
	UpdateErr   error
	UpdateCalls []WriteCall

	// --- DeleteFile ---
	DeleteErr   error
	DeleteCalls []WriteCall

	// --- GetContentHash ---
	Hashes  map[string]string // path -> sha
	HashErr error

	// --- GetFileContent ---
	FileContents   map[string]string // path -> content
	FileContentErr error
}

var _ repositories.FileRepository = (*SpyFileRepository)(nil)

func (s *SpyFileRepository) Reference() entities.RepositoryReference { return s.Ref }

func (s *SpyFileRepository) ListContents(
	_ context.Context, path string,
) ([]entities.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListedPaths = append(s.ListedPaths, path)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Items[path], nil
}

func (s *SpyFileRepository) FileExists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CheckedPaths = append(s.CheckedPaths, path)
	if s.ExistsErr != nil {
		return false, s.ExistsErr
	}
	return s.ExistingFiles[path], nil
}

func (s *SpyFileRepository) CreateFile(
	_ context.Context, path, message string, content []byte,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CreateCalls = append(s.CreateCalls, WriteCall{Path: path, Message: message, Content: content})
	return s.CreateErr
}

func (s *SpyFileRepository) UpdateFile(
	_ context.Context, path, message string, content []byte, expectedHash string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls = append(s.UpdateCalls, WriteCall{
		Path: path, Message: message, Content: content, ExpectedHash: expectedHash,
	})
	return s.UpdateErr
}

func (s *SpyFileRepository) DeleteFile(
	_ context.Context, path, message, expectedHash string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DeleteCalls = append(s.DeleteCalls, WriteCall{
		Path: path, Message: message, ExpectedHash: expectedHash,
	})
	return s.DeleteErr
}

func (s *SpyFileRepository) GetContentHash(_ context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.HashErr != nil {
		return "", s.HashErr
	}
	if sha, ok := s.Hashes[path]; ok {
		return sha, nil
	}
	return "", &entities.NotFoundError{Path: path}
}

func (s *SpyFileRepository) GetFileContent(_ context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FileContentErr != nil {
		return "", s.FileContentErr
	}
	if content, ok := s.FileContents[path]; ok {
		return content, nil
	}
	return "", &entities.NotFoundError{Path: path}
}

// DummyFileRepository is a no-op implementation of repositories.FileRepository.
type DummyFileRepository struct{}

var _ repositories.FileRepository = (*DummyFileRepository)(nil)

func (d *DummyFileRepository) Reference() entities.RepositoryReference {
	return entities.RepositoryReference{}
}

func (d *DummyFileRepository) ListContents(
	_ context.Context, _ string,
) ([]entities.ContentItem, error) {
	return nil, nil
}

func (d *DummyFileRepository) FileExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (d *DummyFileRepository) CreateFile(_ context.Context, _, _ string, _ []byte) error {
	return nil
}

func (d *DummyFileRepository) UpdateFile(_ context.Context, _, _ string, _ []byte, _ string) error {
	return nil
}

func (d *DummyFileRepository) DeleteFile(_ context.Context, _, _, _ string) error {
	return nil
}

func (d *DummyFileRepository) GetContentHash(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (d *DummyFileRepository) GetFileContent(_ context.Context, _ string) (string, error) {
	return "", nil
}
