package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	"github.com/rios0rios0/repofiles/internal/domain/repositories"
)

const (
	opList   = "list contents of"
	opRead   = "read"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

var errIsDirectory = errors.New("path is a directory, not a file")

// Option configures a GitHubFileRepository at construction.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	committer  *gh.CommitAuthor
}

// WithBaseURL targets a GitHub Enterprise API endpoint instead of api.github.com.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient overrides the HTTP client used for every request.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithCommitter sets the committer recorded on writes. Both values are required by
// the API, so the option is ignored unless name and email are non-empty.
func WithCommitter(name, email string) Option {
	return func(o *options) {
		if name == "" || email == "" {
			return
		}
		o.committer = &gh.CommitAuthor{Name: gh.String(name), Email: gh.String(email)}
	}
}

// GitHubFileRepository implements repositories.FileRepository with the GitHub contents API.
// It is immutable once built and may be shared between goroutines.
type GitHubFileRepository struct {
	client    *gh.Client
	ref       entities.RepositoryReference
	committer *gh.CommitAuthor
}

var _ repositories.FileRepository = (*GitHubFileRepository)(nil)

// NewGitHubFileRepository builds an adapter bound to ref. It returns a
// *entities.ConfigurationError when the token or reference cannot form a usable client.
func NewGitHubFileRepository(
	token string,
	ref entities.RepositoryReference,
	opts ...Option,
) (*GitHubFileRepository, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if strings.TrimSpace(token) == "" {
		return nil, &entities.ConfigurationError{Field: "token", Reason: "must not be empty"}
	}
	if strings.ContainsAny(token, " \t\r\n") {
		return nil, &entities.ConfigurationError{Field: "token", Reason: "must not contain whitespace"}
	}
	if ref.Owner == "" {
		return nil, &entities.ConfigurationError{Field: "owner", Reason: "must not be empty"}
	}
	if ref.Name == "" {
		return nil, &entities.ConfigurationError{Field: "repository", Reason: "must not be empty"}
	}

	client := gh.NewClient(o.httpClient).WithAuthToken(token)
	if o.baseURL != "" {
		parsed, err := url.Parse(o.baseURL)
		if err != nil {
			return nil, &entities.ConfigurationError{Field: "base_url", Reason: "cannot be parsed", Err: err}
		}
		if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return nil, &entities.ConfigurationError{
				Field:  "base_url",
				Reason: fmt.Sprintf("%q must be an absolute http(s) URL", o.baseURL),
			}
		}
		client, err = client.WithEnterpriseURLs(o.baseURL, o.baseURL)
		if err != nil {
			return nil, &entities.ConfigurationError{Field: "base_url", Reason: "rejected by client", Err: err}
		}
	}

	return &GitHubFileRepository{
		client:    client,
		ref:       ref,
		committer: o.committer,
	}, nil
}

// NewFileRepository builds the adapter from settings; it is the factory registered
// under the "github" provider name.
func NewFileRepository(settings *entities.Settings) (repositories.FileRepository, error) {
	opts := []Option{
		WithCommitter(settings.Committer.Name, settings.Committer.Email),
	}
	if settings.BaseURL != "" {
		opts = append(opts, WithBaseURL(settings.BaseURL))
	}

	repo, err := NewGitHubFileRepository(settings.Token, settings.Reference(), opts...)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *GitHubFileRepository) Reference() entities.RepositoryReference { return r.ref }

func (r *GitHubFileRepository) ListContents(
	ctx context.Context,
	path string,
) ([]entities.ContentItem, error) {
	file, dir, err := r.fetch(ctx, path)
	if err != nil {
		return nil, r.translate(opList, path, err)
	}

	if file != nil {
		return []entities.ContentItem{toContentItem(file, true)}, nil
	}

	items := make([]entities.ContentItem, 0, len(dir))
	for _, entry := range dir {
		items = append(items, toContentItem(entry, false))
	}
	return items, nil
}

func (r *GitHubFileRepository) FileExists(ctx context.Context, path string) (bool, error) {
	_, _, err := r.fetch(ctx, path)
	if err == nil {
		return true, nil
	}

	translated := r.translate(opList, path, err)
	var apiErr *entities.RemoteAPIError
	if errors.As(translated, &apiErr) && apiErr.IsStatus(http.StatusNotFound) {
		return false, nil
	}
	return false, translated
}

func (r *GitHubFileRepository) CreateFile(
	ctx context.Context,
	path, message string,
	content []byte,
) error {
	if err := requireFields(path, message); err != nil {
		return err
	}

	logger.Debugf("Creating %q in %s", path, r.ref)
	_, _, err := r.client.Repositories.CreateFile(
		ctx, r.ref.Owner, r.ref.Name, path,
		r.fileOptions(message, nonNil(content), ""),
	)
	if err == nil {
		return nil
	}

	translated := r.translate(opCreate, path, err)
	var apiErr *entities.RemoteAPIError
	if errors.As(translated, &apiErr) && apiErr.IsStatus(http.StatusUnprocessableEntity) {
		// Someone else created the file first; the path exists, which is all create promises.
		logger.Debugf("File %q already exists in %s, treating create as done", path, r.ref)
		return nil
	}
	return translated
}

func (r *GitHubFileRepository) UpdateFile(
	ctx context.Context,
	path, message string,
	content []byte,
	expectedHash string,
) error {
	if err := requireFields(path, message); err != nil {
		return err
	}
	if expectedHash == "" {
		return fmt.Errorf("%w: expected hash is required to update %q", entities.ErrInvalidRequest, path)
	}

	logger.Debugf("Updating %q in %s (sha %s)", path, r.ref, expectedHash)
	_, _, err := r.client.Repositories.UpdateFile(
		ctx, r.ref.Owner, r.ref.Name, path,
		r.fileOptions(message, nonNil(content), expectedHash),
	)
	if err != nil {
		return r.translate(opUpdate, path, err)
	}
	return nil
}

func (r *GitHubFileRepository) DeleteFile(
	ctx context.Context,
	path, message, expectedHash string,
) error {
	if err := requireFields(path, message); err != nil {
		return err
	}
	if expectedHash == "" {
		return fmt.Errorf("%w: expected hash is required to delete %q", entities.ErrInvalidRequest, path)
	}

	logger.Debugf("Deleting %q in %s (sha %s)", path, r.ref, expectedHash)
	_, _, err := r.client.Repositories.DeleteFile(
		ctx, r.ref.Owner, r.ref.Name, path,
		r.fileOptions(message, nil, expectedHash),
	)
	if err != nil {
		return r.translate(opDelete, path, err)
	}
	return nil
}

func (r *GitHubFileRepository) GetContentHash(ctx context.Context, path string) (string, error) {
	items, err := r.ListContents(ctx, path)
	if err != nil {
		var apiErr *entities.RemoteAPIError
		if errors.As(err, &apiErr) && apiErr.IsStatus(http.StatusNotFound) {
			return "", &entities.NotFoundError{Path: path, Err: err}
		}
		return "", err
	}
	if len(items) == 0 {
		return "", &entities.NotFoundError{Path: path}
	}
	return items[0].SHA, nil
}

func (r *GitHubFileRepository) GetFileContent(ctx context.Context, path string) (string, error) {
	file, _, err := r.fetch(ctx, path)
	if err != nil {
		return "", r.translate(opRead, path, err)
	}
	if file == nil {
		return "", &entities.NotFoundError{Path: path, Err: errIsDirectory}
	}

	content, err := file.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode file content of %q: %w", path, err)
	}
	return content, nil
}

// fetch issues the single GetContents call every read operation is built on.
func (r *GitHubFileRepository) fetch(
	ctx context.Context,
	path string,
) (*gh.RepositoryContent, []*gh.RepositoryContent, error) {
	logger.Debugf("Fetching contents of %q from %s", path, r.ref)
	file, dir, _, err := r.client.Repositories.GetContents(
		ctx, r.ref.Owner, r.ref.Name, path,
		&gh.RepositoryContentGetOptions{Ref: r.ref.BranchName()},
	)
	return file, dir, err
}

func (r *GitHubFileRepository) fileOptions(
	message string,
	content []byte,
	sha string,
) *gh.RepositoryContentFileOptions {
	opts := &gh.RepositoryContentFileOptions{
		Message:   gh.String(message),
		Committer: r.committer,
	}
	if content != nil {
		opts.Content = content
	}
	if sha != "" {
		opts.SHA = gh.String(sha)
	}
	if branch := r.ref.BranchName(); branch != "" {
		opts.Branch = gh.String(branch)
	}
	return opts
}

// translate converts a go-github failure into a RemoteAPIError when the service
// answered with an HTTP status. Transport and context errors are wrapped unchanged.
func (r *GitHubFileRepository) translate(op, path string, err error) error {
	if status, message, ok := responseStatus(err); ok {
		return &entities.RemoteAPIError{
			Operation:  op,
			Path:       path,
			StatusCode: status,
			Message:    message,
			Err:        err,
		}
	}
	return fmt.Errorf("failed to %s %q in %s: %w", op, path, r.ref, err)
}

func responseStatus(err error) (int, string, bool) {
	var (
		resp    *http.Response
		message string
	)

	var errResp *gh.ErrorResponse
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	switch {
	case errors.As(err, &errResp):
		resp, message = errResp.Response, errResp.Message
	case errors.As(err, &rateErr):
		resp, message = rateErr.Response, rateErr.Message
	case errors.As(err, &abuseErr):
		resp, message = abuseErr.Response, abuseErr.Message
	default:
		return 0, "", false
	}

	if resp == nil {
		return 0, "", false
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return resp.StatusCode, message, true
}

func toContentItem(content *gh.RepositoryContent, decode bool) entities.ContentItem {
	item := entities.ContentItem{
		Name: content.GetName(),
		Path: content.GetPath(),
		SHA:  content.GetSHA(),
		Type: entities.ContentType(content.GetType()),
		Size: content.GetSize(),
	}
	if decode {
		decoded, err := content.GetContent()
		if err != nil {
			logger.Warnf("Content of %q (%d bytes) was not loaded: %v", item.Path, item.Size, err)
		} else {
			item.Content = decoded
			item.ContentLoaded = true
		}
	}
	return item
}

func requireFields(path, message string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: path is required", entities.ErrInvalidRequest)
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: commit message is required for %q", entities.ErrInvalidRequest, path)
	}
	return nil
}

// nonNil keeps an empty file encoded as "" rather than null.
func nonNil(content []byte) []byte {
	if content == nil {
		return []byte{}
	}
	return content
}
