//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/repofiles/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	provider   string
	token      string
	owner      string
	repository string
	branch     string
	baseURL    string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		provider:    "github",
		token:       "test-token",
		owner:       "test-owner",
		repository:  "test-repo",
	}
}

// WithProvider sets the provider name.
func (b *SettingsBuilder) WithProvider(provider string) *SettingsBuilder {
	b.provider = provider
	return b
}

// WithToken sets the auth token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithOwner sets the repository owner.
func (b *SettingsBuilder) WithOwner(owner string) *SettingsBuilder {
	b.owner = owner
	return b
}

// WithRepository sets the repository name.
func (b *SettingsBuilder) WithRepository(repository string) *SettingsBuilder {
	b.repository = repository
	return b
}

// WithBranch sets the branch.
func (b *SettingsBuilder) WithBranch(branch string) *SettingsBuilder {
	b.branch = branch
	return b
}

// WithBaseURL sets the enterprise API URL.
func (b *SettingsBuilder) WithBaseURL(baseURL string) *SettingsBuilder {
	b.baseURL = baseURL
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Provider:   b.provider,
		Token:      b.token,
		Owner:      b.owner,
		Repository: b.repository,
		Branch:     b.branch,
		BaseURL:    b.baseURL,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.provider = "github"
	b.token = "test-token"
	b.owner = "test-owner"
	b.repository = "test-repo"
	b.branch = ""
	b.baseURL = ""
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		provider:    b.provider,
		token:       b.token,
		owner:       b.owner,
		repository:  b.repository,
		branch:      b.branch,
		baseURL:     b.baseURL,
	}
}
