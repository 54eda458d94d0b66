package buildinfo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/someone/novelarr/releases/latest":
			assert.Contains(t, r.Header.Get("User-Agent"), "novelarr/")
			w.Write([]byte(`{"tag_name":"v1.4.0","published_at":"2024-05-01T12:00:00Z"}`))
		case "/repos/someone/broken/releases/latest":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	prev := releaseAPI
	releaseAPI = server.URL
	t.Cleanup(func() { releaseAPI = prev })

	rel, err := LatestRelease(context.Background(), server.Client(), "someone/novelarr")
	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", rel.TagName)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), rel.PublishedAt.UTC())

	_, err = LatestRelease(context.Background(), server.Client(), "someone/missing")
	assert.True(t, errors.Is(err, ErrNoRelease))

	_, err = LatestRelease(context.Background(), server.Client(), "someone/broken")
	assert.Error(t, err)

	_, err = LatestRelease(context.Background(), server.Client(), "")
	assert.True(t, errors.Is(err, ErrNoReleaseRepo))
}
