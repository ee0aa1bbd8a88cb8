//go:build unit

package entities_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
)

func TestFileErrors(t *testing.T) {
	t.Parallel()

	t.Run("should tag each case with its kind", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			err      error
			expected entities.ErrorKind
		}{
			{
				name:     "should tag remote API errors",
				err:      &entities.RemoteAPIError{StatusCode: http.StatusInternalServerError},
				expected: entities.KindRemoteAPI,
			},
			{
				name:     "should tag not found errors",
				err:      &entities.NotFoundError{Path: "a.md"},
				expected: entities.KindNotFound,
			},
			{
				name:     "should tag configuration errors",
				err:      &entities.ConfigurationError{Field: "token", Reason: "must not be empty"},
				expected: entities.KindConfiguration,
			},
			{
				name:     "should find the kind through wrapping",
				err:      fmt.Errorf("outer: %w", &entities.NotFoundError{Path: "a.md"}),
				expected: entities.KindNotFound,
			},
			{
				name:     "should return zero for untyped errors",
				err:      errors.New("plain"),
				expected: 0,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// when
				kind := entities.KindOf(tt.err)

				// then
				assert.Equal(t, tt.expected, kind)
			})
		}
	})

	t.Run("should render status and message of a remote API error", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.RemoteAPIError{
			Operation:  "create",
			Path:       "notes/a.md",
			StatusCode: http.StatusInternalServerError,
			Message:    "Server Error",
		}

		// when
		msg := err.Error()

		// then
		assert.Contains(t, msg, "create")
		assert.Contains(t, msg, `"notes/a.md"`)
		assert.Contains(t, msg, "500")
		assert.Contains(t, msg, "Server Error")
		assert.True(t, err.IsStatus(http.StatusInternalServerError))
		assert.False(t, err.IsStatus(http.StatusUnprocessableEntity))
	})

	t.Run("should prefer the outer not found case while keeping the cause reachable", func(t *testing.T) {
		t.Parallel()

		// given
		cause := &entities.RemoteAPIError{StatusCode: http.StatusNotFound, Message: "Not Found"}
		err := error(&entities.NotFoundError{Path: "a.md", Err: cause})

		// when
		kind := entities.KindOf(err)

		// then
		assert.Equal(t, entities.KindNotFound, kind)
		var apiErr *entities.RemoteAPIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("should include the cause of a configuration error", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("missing ']' in host")
		err := &entities.ConfigurationError{Field: "base_url", Reason: "cannot be parsed", Err: cause}

		// when
		msg := err.Error()

		// then
		assert.Equal(t, "invalid configuration for base_url: cannot be parsed: missing ']' in host", msg)
		require.ErrorIs(t, err, cause)
	})

	t.Run("should name every kind", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "remote_api", entities.KindRemoteAPI.String())
		assert.Equal(t, "not_found", entities.KindNotFound.String())
		assert.Equal(t, "configuration", entities.KindConfiguration.String())
		assert.Equal(t, "unknown", entities.ErrorKind(0).String())
	})
}
