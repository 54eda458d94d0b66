package sharedhttp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/":
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "the term", r.URL.Query().Get("searchkey"))
			assert.Equal(t, "https://example.com", r.Header.Get("Referer"))
			assert.Equal(t, "searchkey=the+term", string(body))
			assert.NotContains(t, r.Header.Get("User-Agent"), "Go-http-client")
			w.Write([]byte("<html>found</html>"))
		case "/missing":
			http.NotFound(w, r)
		default:
			w.Write([]byte("ok"))
		}
	}))
	defer server.Close()

	c := NewCollector(CollectorOptions{Timeout: 5 * time.Second})

	t.Run("post with query headers and body", func(t *testing.T) {
		body, err := c.Fetch(context.Background(), Request{
			Method: http.MethodPost,
			URL:    server.URL + "/search/",
			Query:  url.Values{"searchkey": {"the term"}},
			Header: http.Header{"Referer": {"https://example.com"}},
			Body:   "searchkey=the+term",
		})
		require.NoError(t, err)
		assert.Equal(t, "<html>found</html>", body)
	})

	t.Run("plain get", func(t *testing.T) {
		body, err := c.Fetch(context.Background(), Get(server.URL+"/anything"))
		require.NoError(t, err)
		assert.Equal(t, "ok", body)
	})

	t.Run("status error", func(t *testing.T) {
		_, err := c.Fetch(context.Background(), Get(server.URL+"/missing"))
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Fetch(ctx, Get(server.URL+"/anything"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCollector_BrowserUserAgent(t *testing.T) {
	var (
		mu     sync.Mutex
		agents []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		agents = append(agents, r.Header.Get("User-Agent"))
		mu.Unlock()
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	c := NewCollector(CollectorOptions{Timeout: 5 * time.Second})

	for i := 0; i < 3; i++ {
		_, err := c.Fetch(context.Background(), Get(server.URL))
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, agents, 3)
	for _, ua := range agents {
		assert.True(t, strings.HasPrefix(ua, "Mozilla/5.0"), "user agent %q", ua)
	}
}

func TestDownload(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cover.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte{0x89, 'P', 'N', 'G'})
		case "/forbidden":
			attempts++
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	asset, err := Download(context.Background(), server.Client(), server.URL+"/cover.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", asset.ContentType)
	assert.Len(t, asset.Data, 4)

	_, err = Download(context.Background(), server.Client(), server.URL+"/forbidden")
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "forbidden is not retried")
}

func TestCheckStatusCode(t *testing.T) {
	assert.NoError(t, CheckStatusCode(http.StatusOK))
	assert.Error(t, CheckStatusCode(http.StatusNotFound))
	assert.Error(t, CheckStatusCode(http.StatusTeapot))
}
