package pins

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) *HTTPFetcher {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher()
	f.PyPIBase = srv.URL
	f.GitHubBase = srv.URL
	return f
}

func TestPyPIVersion(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pypi/pytest/json", r.URL.Path)
		_, _ = w.Write([]byte(`{"info": {"version": "8.3.4"}}`))
	})

	version, err := f.PyPIVersion(context.Background(), "pytest")
	require.NoError(t, err)
	assert.Equal(t, "8.3.4", version)
}

func TestGitHubReleaseStripsPrefix(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/astral-sh/uv/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name": "v0.10.2"}`))
	})

	version, err := f.GitHubRelease(context.Background(), UVRepo)
	require.NoError(t, err)
	assert.Equal(t, "0.10.2", version)
}

func TestGitHubTagTakesMostRecent(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/astral-sh/ruff-pre-commit/tags", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name": "v0.15.0"}, {"name": "v0.14.14"}]`))
	})

	version, err := f.GitHubTag(context.Background(), GitHubRepo{Owner: "astral-sh", Name: "ruff-pre-commit"})
	require.NoError(t, err)
	assert.Equal(t, "0.15.0", version)
}

func TestFetcherRejectsErrorStatus(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := f.PyPIVersion(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetcherRejectsEmptyPayload(t *testing.T) {
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := f.GitHubRelease(context.Background(), UVRepo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no release tag")
}
