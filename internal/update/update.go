// Package update refreshes tracked novels against their provider and
// appends newly published chapters.
package update

import (
	"context"
	"slices"
	"time"

	"novelarr/internal/domain"
	"novelarr/internal/library"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ProviderLookup resolves the provider a novel was added from.
type ProviderLookup interface {
	Get(id domain.ProviderID) (domain.Provider, error)
}

type Updater struct {
	providers ProviderLookup
	now       func() time.Time
	log       zerolog.Logger
}

func New(providers ProviderLookup, log zerolog.Logger) *Updater {
	return &Updater{
		providers: providers,
		now:       time.Now,
		log:       log,
	}
}

// WithClock replaces the time source used for DateUpdated.
func (u *Updater) WithClock(now func() time.Time) *Updater {
	u.now = now
	return u
}

// Update re-parses novel from its provider and returns the refreshed value
// together with the number of appended chapters. Existing chapters are never
// replaced or removed. On failure novel is returned unchanged.
func (u *Updater) Update(ctx context.Context, novel domain.Novel) (domain.Novel, int, error) {
	log := u.log.With().Str("novel", novel.Path).Str("provider", string(novel.Provider)).Logger()

	provider, err := u.providers.Get(novel.Provider)
	if err != nil {
		return novel, 0, err
	}

	fresh, err := provider.ParseNovel(ctx, novel.Path)
	if err != nil {
		log.Error().Err(err).Msg("could not refresh novel")
		return novel, 0, err
	}

	updated := novel.Clone()
	updated.Title = fresh.Title
	updated.CoverURL = fresh.CoverURL
	updated.Summary = slices.Clone(fresh.Summary)
	updated.Genres = slices.Clone(fresh.Genres)
	updated.Authors = slices.Clone(fresh.Authors)
	updated.Status = fresh.Status

	last := novel.LastChapterNumber()
	appended := 0
	for _, c := range fresh.Chapters {
		if c.Number > last {
			updated.Chapters = append(updated.Chapters, c)
			appended++
		}
	}

	if appended > 0 {
		updated.DateUpdated = u.advance(novel.DateUpdated)
		log.Info().Int("chapters", appended).Int("last", updated.LastChapterNumber()).Msg("new chapters found")
	} else {
		log.Debug().Msg("no new chapters")
	}

	return updated, appended, nil
}

// advance returns the current time, nudged forward if the clock would not
// move DateUpdated strictly past prev.
func (u *Updater) advance(prev time.Time) time.Time {
	t := u.now()
	if !t.After(prev) {
		t = prev.Add(time.Millisecond)
	}

	return t
}

// Result is the outcome of refreshing one novel.
type Result struct {
	Novel       domain.Novel
	NewChapters int
	Err         error
}

// Report collects the outcomes of a RefreshAll run.
type Report struct {
	RunID   string
	Results []Result
}

func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}

	return out
}

func (r Report) NewChapters() int {
	total := 0
	for _, res := range r.Results {
		total += res.NewChapters
	}

	return total
}

// RefreshAll updates every novel in lib one after another and swaps the
// successful results back in. A failing novel does not stop the run; the
// returned error is only set when ctx is cancelled.
func (u *Updater) RefreshAll(ctx context.Context, lib *library.Library) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	log := u.log.With().Str("run", report.RunID).Logger()

	novels := lib.Novels(library.FilterAll, library.SortByTitle)
	log.Info().Int("novels", len(novels)).Msg("refreshing library")

	for _, novel := range novels {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "refresh cancelled")
		}

		updated, n, err := u.Update(ctx, novel)
		report.Results = append(report.Results, Result{Novel: updated, NewChapters: n, Err: err})
		if err != nil {
			continue
		}

		if !lib.Replace(updated) {
			log.Warn().Str("novel", novel.Path).Msg("novel removed during refresh, dropping result")
		}
	}

	log.Info().Int("new_chapters", report.NewChapters()).Int("failed", len(report.Failed())).Msg("refresh finished")
	return report, nil
}
