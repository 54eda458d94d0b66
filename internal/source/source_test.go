package source

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"novelarr/internal/sharedhttp"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type recordedRequest struct {
	Method string
	Query  url.Values
	Header http.Header
}

type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests map[string][]recordedRequest
}

// request returns the last request the server saw for path.
func (s *testServer) request(t *testing.T, path string) recordedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	reqs := s.requests[path]
	require.NotEmpty(t, reqs, "no request for %s", path)

	return reqs[len(reqs)-1]
}

// newTestServer serves fixed bodies by path and records every request.
// Paths missing from routes answer 404.
func newTestServer(t *testing.T, routes map[string]string) *testServer {
	t.Helper()

	ts := &testServer{requests: make(map[string][]recordedRequest)}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		ts.requests[r.URL.Path] = append(ts.requests[r.URL.Path], recordedRequest{
			Method: r.Method,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		})
		ts.mu.Unlock()

		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}

		if strings.HasPrefix(strings.TrimSpace(body), "{") {
			w.Header().Set("Content-Type", "application/json")
		} else {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	return ts
}

func newTestFetcher() sharedhttp.Fetcher {
	return sharedhttp.NewCollector(sharedhttp.CollectorOptions{Timeout: 5 * time.Second})
}

func pinNow(t *testing.T) {
	t.Helper()

	prev := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = prev })
}
