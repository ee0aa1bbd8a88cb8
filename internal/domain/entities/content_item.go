package entities

// ContentType is the kind of entry returned by a content listing.
type ContentType string

const (
	ContentTypeFile      ContentType = "file"
	ContentTypeDir       ContentType = "dir"
	ContentTypeSymlink   ContentType = "symlink"
	ContentTypeSubmodule ContentType = "submodule"
)

// ContentItem is a remote file or directory entry.
type ContentItem struct {
	Name string
	Path string
	SHA  string // blob SHA, required as precondition for update and delete
	Type ContentType
	Size int

	// Content is the decoded payload. It is only populated when the
	// listing targeted a single file.
	Content string
	// ContentLoaded is false when Content was not delivered, e.g. directory
	// entries or files too large for the contents API (over 1 MB).
	ContentLoaded bool
}

// IsDir reports whether the item is a directory.
func (c ContentItem) IsDir() bool { return c.Type == ContentTypeDir }
