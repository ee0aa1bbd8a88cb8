//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

func TestRepositoryReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		ref            entities.RepositoryReference
		expectedString string
		expectedBranch string
	}{
		{
			name:           "should render owner and name without a branch",
			ref:            entities.RepositoryReference{Owner: "acme", Name: "notes"},
			expectedString: "acme/notes",
			expectedBranch: "",
		},
		{
			name:           "should render the branch",
			ref:            entities.RepositoryReference{Owner: "acme", Name: "notes", Branch: "main"},
			expectedString: "acme/notes@main",
			expectedBranch: "main",
		},
		{
			name:           "should strip the refs/heads prefix",
			ref:            entities.RepositoryReference{Owner: "acme", Name: "notes", Branch: "refs/heads/drafts"},
			expectedString: "acme/notes@drafts",
			expectedBranch: "drafts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			str := tt.ref.String()
			branch := tt.ref.BranchName()

			// then
			assert.Equal(t, tt.expectedString, str)
			assert.Equal(t, tt.expectedBranch, branch)
		})
	}
}
