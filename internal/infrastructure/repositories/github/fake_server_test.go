//go:build unit

package github_test

import (
	"crypto/sha1" //nolint:gosec // git blob ids are sha1
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repofiles/internal/domain/entities"
	ghRepo "github.com/rios0rios0/repofiles/internal/infrastructure/repositories/github"
)

const (
	testOwner = "acme"
	testRepo  = "notes"
	testToken = "ghp_test"
)

// recordedRequest is what the fake saw for a single call.
type recordedRequest struct {
	Method        string
	Path          string
	Ref           string
	Authorization string
	Message       string
	SHA           string
	Branch        string
	Committer     string
}

type forcedResponse struct {
	status  int
	message string
	header  map[string]string
	body    any
}

// fakeContentsAPI is an in-memory stand-in for the GitHub contents endpoints.
type fakeContentsAPI struct {
	mu       sync.Mutex
	files    map[string][]byte
	forced   map[string]forcedResponse
	requests []recordedRequest
}

func newFakeContentsAPI() *fakeContentsAPI {
	return &fakeContentsAPI{
		files:  make(map[string][]byte),
		forced: make(map[string]forcedResponse),
	}
}

// seed stores a file without going through the API.
func (f *fakeContentsAPI) seed(path, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = []byte(content)
}

// force makes the next calls of method on path answer with status.
func (f *fakeContentsAPI) force(method, path string, status int, message string) {
	f.forceWithHeader(method, path, status, message, nil)
}

func (f *fakeContentsAPI) forceWithHeader(
	method, path string,
	status int,
	message string,
	header map[string]string,
) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forced[method+" "+path] = forcedResponse{status: status, message: message, header: header}
}

// forceBody makes the next calls of method on path answer with status and body as JSON.
func (f *fakeContentsAPI) forceBody(method, path string, status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forced[method+" "+path] = forcedResponse{status: status, body: body}
}

func (f *fakeContentsAPI) content(path string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[path]
	return string(data), ok
}

func (f *fakeContentsAPI) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *fakeContentsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	prefix := fmt.Sprintf("/api/v3/repos/%s/%s/contents", testOwner, testRepo)
	if !strings.HasPrefix(r.URL.Path, prefix) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")

	var body struct {
		Message   string `json:"message"`
		Content   string `json:"content"`
		SHA       string `json:"sha"`
		Branch    string `json:"branch"`
		Committer *struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"committer"`
	}
	if r.Body != nil && r.Method != http.MethodGet {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	rec := recordedRequest{
		Method:        r.Method,
		Path:          path,
		Ref:           r.URL.Query().Get("ref"),
		Authorization: r.Header.Get("Authorization"),
		Message:       body.Message,
		SHA:           body.SHA,
		Branch:        body.Branch,
	}
	if body.Committer != nil {
		rec.Committer = body.Committer.Name + " <" + body.Committer.Email + ">"
	}
	f.requests = append(f.requests, rec)

	if forced, ok := f.forced[r.Method+" "+path]; ok {
		for k, v := range forced.header {
			w.Header().Set(k, v)
		}
		if forced.body != nil {
			writeJSON(w, forced.status, forced.body)
			return
		}
		writeJSON(w, forced.status, map[string]string{"message": forced.message})
		return
	}

	switch r.Method {
	case http.MethodGet:
		f.get(w, path)
	case http.MethodPut:
		content, err := base64.StdEncoding.DecodeString(body.Content)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "content is not valid Base64"})
			return
		}
		f.put(w, path, body.SHA, content)
	case http.MethodDelete:
		f.delete(w, path, body.SHA)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Method Not Allowed"})
	}
}

func (f *fakeContentsAPI) get(w http.ResponseWriter, path string) {
	if data, ok := f.files[path]; ok {
		writeJSON(w, http.StatusOK, fileJSON(path, data, true))
		return
	}

	entries := f.children(path)
	if len(entries) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (f *fakeContentsAPI) put(w http.ResponseWriter, path, sha string, content []byte) {
	current, exists := f.files[path]
	switch {
	case sha == "" && exists:
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"message": "Invalid request.\n\n\"sha\" wasn't supplied.",
		})
		return
	case sha != "" && !exists:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	case sha != "" && sha != blobSHA(current):
		writeJSON(w, http.StatusConflict, map[string]string{
			"message": fmt.Sprintf("%s does not match %s", path, sha),
		})
		return
	}

	f.files[path] = content
	status := http.StatusOK
	if !exists {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{
		"content": fileJSON(path, content, false),
		"commit":  map[string]string{"sha": "c0ffee"},
	})
}

func (f *fakeContentsAPI) delete(w http.ResponseWriter, path, sha string) {
	current, exists := f.files[path]
	switch {
	case !exists:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		return
	case sha != blobSHA(current):
		writeJSON(w, http.StatusConflict, map[string]string{
			"message": fmt.Sprintf("%s does not match %s", path, sha),
		})
		return
	}

	delete(f.files, path)
	writeJSON(w, http.StatusOK, map[string]any{
		"content": nil,
		"commit":  map[string]string{"sha": "dead"},
	})
}

func (f *fakeContentsAPI) children(dir string) []map[string]any {
	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}

	seen := make(map[string]bool)
	var entries []map[string]any
	paths := make([]string, 0, len(f.files))
	for p := range f.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		name, _, nested := strings.Cut(rest, "/")
		if seen[name] {
			continue
		}
		seen[name] = true
		if nested {
			entries = append(entries, map[string]any{
				"type": "dir",
				"name": name,
				"path": prefix + name,
				"sha":  blobSHA([]byte(prefix + name)),
				"size": 0,
			})
			continue
		}
		entries = append(entries, fileJSON(p, f.files[p], false))
	}
	return entries
}

func fileJSON(path string, data []byte, withContent bool) map[string]any {
	name := path[strings.LastIndex(path, "/")+1:]
	out := map[string]any{
		"type": "file",
		"name": name,
		"path": path,
		"sha":  blobSHA(data),
		"size": len(data),
	}
	if withContent {
		out["encoding"] = "base64"
		out["content"] = base64.StdEncoding.EncodeToString(data)
	}
	return out
}

// blobSHA computes the git blob id of data, which is what GitHub reports as the file SHA.
func blobSHA(data []byte) string {
	h := sha1.New() //nolint:gosec // git blob ids are sha1
	_, _ = fmt.Fprintf(h, "blob %d\x00", len(data))
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// newTestRepository starts the fake and returns an adapter bound to it.
func newTestRepository(
	t *testing.T,
	opts ...ghRepo.Option,
) (*ghRepo.GitHubFileRepository, *fakeContentsAPI) {
	t.Helper()
	return newTestRepositoryForRef(t, entities.RepositoryReference{Owner: testOwner, Name: testRepo}, opts...)
}

// newTestRepositoryForRef is newTestRepository with a custom reference (e.g. a branch).
func newTestRepositoryForRef(
	t *testing.T,
	ref entities.RepositoryReference,
	opts ...ghRepo.Option,
) (*ghRepo.GitHubFileRepository, *fakeContentsAPI) {
	t.Helper()

	api := newFakeContentsAPI()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	allOpts := append([]ghRepo.Option{
		ghRepo.WithBaseURL(server.URL),
		ghRepo.WithHTTPClient(server.Client()),
	}, opts...)

	repo, err := ghRepo.NewGitHubFileRepository(testToken, ref, allOpts...)
	require.NoError(t, err)
	return repo, api
}
