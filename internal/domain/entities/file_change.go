package entities

// FileChange represents a single file write or delete against the bound repository.
type FileChange struct {
	Path         string
	Message      string // commit message
	Content      []byte // ignored on delete
	ExpectedHash string // current blob SHA; empty means "resolve it first"
}
