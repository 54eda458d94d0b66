package source

import (
	"context"
	"strings"
	"time"

	"novelarr/internal/domain"
	"novelarr/internal/markup"
	"novelarr/internal/sharedhttp"

	"github.com/PuerkitoBio/goquery"
)

const (
	providerVersion   = "1.0"
	defaultBatchDelay = 5 * time.Second
)

// now is swapped in tests to pin DateAdded and DateUpdated.
var now = time.Now

// fetchDocument performs req and parses the body as HTML.
func fetchDocument(ctx context.Context, f sharedhttp.Fetcher, id domain.ProviderID, req sharedhttp.Request) (*goquery.Document, error) {
	body, err := f.Fetch(ctx, req)
	if err != nil {
		return nil, &domain.FetchError{Provider: id, Err: err}
	}

	doc, err := markup.Parse(body)
	if err != nil {
		return nil, &domain.FetchError{Provider: id, Err: err}
	}

	return doc, nil
}

// trimSite turns an absolute link on site into a site-relative path.
func trimSite(href, site string) string {
	return strings.TrimPrefix(strings.TrimSpace(href), site)
}

// keepPreviews drops entries without a title or a path.
func keepPreviews(previews []domain.NovelPreview) []domain.NovelPreview {
	out := make([]domain.NovelPreview, 0, len(previews))
	for _, p := range previews {
		if p.Title == "" || p.Path == "" {
			continue
		}
		out = append(out, p)
	}

	return out
}

// numberChapters assigns 1-based numbers in list order. newestFirst lists are
// reversed first so that chapter 1 is always the oldest.
func numberChapters(chapters []domain.Chapter, newestFirst bool) []domain.Chapter {
	if newestFirst {
		for i, j := 0, len(chapters)-1; i < j; i, j = i+1, j-1 {
			chapters[i], chapters[j] = chapters[j], chapters[i]
		}
	}

	for i := range chapters {
		chapters[i].Number = i + 1
	}

	return chapters
}

func parseFailure(id domain.ProviderID, path string, err error) error {
	return &domain.ParseError{Provider: id, Path: path, Err: err}
}
