package domain

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type ProviderID string

const (
	FreeWebNovel ProviderID = "freeWebNovel"
	ScribbleHub  ProviderID = "scribbleHub"
	MTLNovel     ProviderID = "mtlNovel"
	LibRead      ProviderID = "libRead"
)

// ProviderIDs lists every supported site in display order.
var ProviderIDs = []ProviderID{FreeWebNovel, ScribbleHub, MTLNovel, LibRead}

func ParseProviderID(s string) (ProviderID, error) {
	for _, id := range ProviderIDs {
		if string(id) == s {
			return id, nil
		}
	}

	return "", errors.Errorf("unknown provider: %q", s)
}

type ProviderDetails struct {
	ID      ProviderID
	Name    string
	Site    string
	Version string

	// BatchSize and BatchDelay are the informal rate limit of the site.
	BatchSize  int
	BatchDelay time.Duration
}

// Provider is the scraping ruleset of one supported site.
type Provider interface {
	Details() ProviderDetails
	Search(ctx context.Context, term string) ([]NovelPreview, error)
	ParseNovel(ctx context.Context, path string) (Novel, error)
	ParseChapter(ctx context.Context, path string) ([]string, error)
}
