// Package search runs a search term against several providers.
package search

import (
	"context"
	"strings"

	"novelarr/internal/domain"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrBlankTerm = errors.New("search term is blank")

type ProviderLookup interface {
	Get(id domain.ProviderID) (domain.Provider, error)
}

// Result holds the previews of one provider, or the error it failed with.
type Result struct {
	Provider domain.ProviderID
	Previews []domain.NovelPreview
	Err      error
}

// Novels searches each provider in ids in order. A failing provider does not
// affect the others. Blank terms are rejected before any provider is called.
func Novels(ctx context.Context, providers ProviderLookup, ids []domain.ProviderID, term string, log zerolog.Logger) ([]Result, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrBlankTerm
	}

	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res := Result{Provider: id}

		p, err := providers.Get(id)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		res.Previews, res.Err = p.Search(ctx, term)
		if res.Err != nil {
			log.Error().Err(res.Err).Str("provider", string(id)).Str("term", term).Msg("search failed")
		} else {
			log.Debug().Str("provider", string(id)).Int("previews", len(res.Previews)).Msg("search finished")
		}

		results = append(results, res)
	}

	return results, nil
}

// Previews flattens the successful results in provider order.
func Previews(results []Result) []domain.NovelPreview {
	var out []domain.NovelPreview
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Previews...)
		}
	}

	return out
}
