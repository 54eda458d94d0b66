package buildinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// ReleaseRepo is the "owner/name" GitHub repository releases are published
// to, set with -ldflags "-X novelarr/internal/buildinfo.ReleaseRepo=...".
// Empty disables the update check.
var ReleaseRepo = ""

var releaseAPI = "https://api.github.com"

var (
	ErrNoReleaseRepo = errors.New("no release repository configured for this build")
	ErrNoRelease     = errors.New("no release found")
)

type Release struct {
	TagName     string    `json:"tag_name"`
	PublishedAt time.Time `json:"published_at"`
}

// LatestRelease asks the GitHub API for the newest published release of repo.
func LatestRelease(ctx context.Context, client *http.Client, repo string) (Release, error) {
	if repo == "" {
		return Release{}, ErrNoReleaseRepo
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/repos/%s/releases/latest", releaseAPI, repo), nil)
	if err != nil {
		return Release{}, errors.Wrap(err, "could not create release request")
	}
	req.Header.Set("User-Agent", UserAgent())
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return Release{}, errors.Wrap(err, "could not fetch latest release")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Release{}, ErrNoRelease
	case resp.StatusCode != http.StatusOK:
		return Release{}, errors.Errorf("unexpected status code %d from release api", resp.StatusCode)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return Release{}, errors.Wrap(err, "could not decode release")
	}

	return rel, nil
}
