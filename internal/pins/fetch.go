package pins

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const fetchTimeout = 30 * time.Second

// VersionFetcher resolves the latest released version of a tracked pin.
type VersionFetcher interface {
	// PyPIVersion returns the latest version of a package on PyPI.
	PyPIVersion(ctx context.Context, pkg string) (string, error)

	// GitHubRelease returns the latest release tag of a repository,
	// without a leading "v".
	GitHubRelease(ctx context.Context, repo GitHubRepo) (string, error)

	// GitHubTag returns the most recent tag of a repository, without a
	// leading "v". Used for repositories that tag but do not publish
	// releases.
	GitHubTag(ctx context.Context, repo GitHubRepo) (string, error)
}

// HTTPFetcher resolves versions against the live PyPI and GitHub APIs.
type HTTPFetcher struct {
	Client     *http.Client
	PyPIBase   string
	GitHubBase string
}

// NewHTTPFetcher returns a fetcher pointed at pypi.org and api.github.com.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client:     &http.Client{Timeout: fetchTimeout},
		PyPIBase:   "https://pypi.org",
		GitHubBase: "https://api.github.com",
	}
}

func (f *HTTPFetcher) PyPIVersion(ctx context.Context, pkg string) (string, error) {
	var payload struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}

	url := fmt.Sprintf("%s/pypi/%s/json", f.PyPIBase, pkg)
	if err := f.getJSON(ctx, url, &payload); err != nil {
		return "", err
	}
	if payload.Info.Version == "" {
		return "", fmt.Errorf("no version in PyPI response for %s", pkg)
	}
	return payload.Info.Version, nil
}

func (f *HTTPFetcher) GitHubRelease(ctx context.Context, repo GitHubRepo) (string, error) {
	var payload struct {
		TagName string `json:"tag_name"`
	}

	url := fmt.Sprintf("%s/repos/%s/releases/latest", f.GitHubBase, repo)
	if err := f.getJSON(ctx, url, &payload); err != nil {
		return "", err
	}
	if payload.TagName == "" {
		return "", fmt.Errorf("no release tag for %s", repo)
	}
	return strings.TrimPrefix(payload.TagName, "v"), nil
}

func (f *HTTPFetcher) GitHubTag(ctx context.Context, repo GitHubRepo) (string, error) {
	var payload []struct {
		Name string `json:"name"`
	}

	url := fmt.Sprintf("%s/repos/%s/tags", f.GitHubBase, repo)
	if err := f.getJSON(ctx, url, &payload); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("no tags for %s", repo)
	}
	return strings.TrimPrefix(payload[0].Name, "v"), nil
}

func (f *HTTPFetcher) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
