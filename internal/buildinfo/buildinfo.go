package buildinfo

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// UserAgent identifies the tool when it does not need to pass for a browser.
func UserAgent() string {
	return fmt.Sprintf("novelarr/%s (%s; %s)", Version, runtime.GOOS, runtime.GOARCH)
}

// NewerRelease reports whether latest is a newer semantic version than current.
// Development builds never report an update.
func NewerRelease(current, latest string) (bool, error) {
	if current == "dev" {
		return false, nil
	}

	cur, err := semver.NewVersion(current)
	if err != nil {
		return false, errors.Wrapf(err, "invalid version %q", current)
	}

	rel, err := semver.NewVersion(latest)
	if err != nil {
		return false, errors.Wrapf(err, "invalid release tag %q", latest)
	}

	return cur.LessThan(rel), nil
}
