package entities

import "strings"

// RepositoryReference binds an adapter to one repository on the hosting service.
// Branch is optional; when empty the repository default branch is used.
type RepositoryReference struct {
	Owner  string
	Name   string
	Branch string
}

// String renders the reference as "owner/name" or "owner/name@branch".
func (r RepositoryReference) String() string {
	var sb strings.Builder
	sb.WriteString(r.Owner)
	sb.WriteString("/")
	sb.WriteString(r.Name)
	if r.Branch != "" {
		sb.WriteString("@")
		sb.WriteString(strings.TrimPrefix(r.Branch, "refs/heads/"))
	}
	return sb.String()
}

// BranchName returns the branch without the "refs/heads/" prefix.
func (r RepositoryReference) BranchName() string {
	return strings.TrimPrefix(r.Branch, "refs/heads/")
}
