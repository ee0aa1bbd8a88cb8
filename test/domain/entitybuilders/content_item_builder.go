//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ContentItemBuilder helps create test content items with a fluent interface.
type ContentItemBuilder struct {
	*testkit.BaseBuilder
	path        string
	sha         string
	contentType entities.ContentType
	content     string
	loaded      bool
}

// NewContentItemBuilder creates a new content item builder with sensible defaults.
func NewContentItemBuilder() *ContentItemBuilder {
	return &ContentItemBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "notes/test.md",
		sha:         "3b18e512dba79e4c8300dd08aeb37f8e728b8dad",
		contentType: entities.ContentTypeFile,
	}
}

// WithPath sets the item path; the name is derived from it.
func (b *ContentItemBuilder) WithPath(itemPath string) *ContentItemBuilder {
	b.path = itemPath
	return b
}

// WithSHA sets the blob SHA.
func (b *ContentItemBuilder) WithSHA(sha string) *ContentItemBuilder {
	b.sha = sha
	return b
}

// AsDir marks the item as a directory.
func (b *ContentItemBuilder) AsDir() *ContentItemBuilder {
	b.contentType = entities.ContentTypeDir
	return b
}

// WithContent sets the decoded content.
func (b *ContentItemBuilder) WithContent(content string) *ContentItemBuilder {
	b.content = content
	b.loaded = true
	return b
}

// Build creates the item (satisfies testkit.Builder interface).
func (b *ContentItemBuilder) Build() interface{} {
	return b.BuildContentItem()
}

// BuildContentItem creates the item with a concrete return type.
func (b *ContentItemBuilder) BuildContentItem() entities.ContentItem {
	return entities.ContentItem{
		Name:          path.Base(b.path),
		Path:          b.path,
		SHA:           b.sha,
		Type:          b.contentType,
		Size:          len(b.content),
		Content:       b.content,
		ContentLoaded: b.loaded,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ContentItemBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "notes/test.md"
	b.sha = "3b18e512dba79e4c8300dd08aeb37f8e728b8dad"
	b.contentType = entities.ContentTypeFile
	b.content = ""
	b.loaded = false
	return b
}

// Clone creates a deep copy of the ContentItemBuilder.
func (b *ContentItemBuilder) Clone() testkit.Builder {
	return &ContentItemBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		sha:         b.sha,
		contentType: b.contentType,
		content:     b.content,
		loaded:      b.loaded,
	}
}
