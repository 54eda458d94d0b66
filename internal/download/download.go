// Package download fetches chapter content in rate limited batches.
package download

import (
	"context"
	"sync"
	"time"

	"novelarr/internal/domain"

	"github.com/rs/zerolog"
)

type Options struct {
	BatchSize int
	Delay     time.Duration
}

// OptionsFor returns the batch settings a provider asks for.
func OptionsFor(p domain.Provider) Options {
	d := p.Details()
	return Options{BatchSize: d.BatchSize, Delay: d.BatchDelay}
}

// Event reports the outcome of a single chapter fetch.
type Event struct {
	Batch   int
	Chapter domain.Chapter
	Err     error
}

type ChapterError struct {
	Chapter domain.Chapter
	Err     error
}

type Result struct {
	Downloaded int
	Failed     []ChapterError
}

// Chapters fetches the content of every chapter in place. Chapters are split
// into batches of at most opts.BatchSize; a batch runs concurrently and is
// joined before the next one starts after opts.Delay. A failing chapter keeps
// its previous content and is reported in Result.Failed. progress, if not
// nil, is called once per chapter and may be called concurrently.
func Chapters(ctx context.Context, p domain.Provider, chapters []domain.Chapter, opts Options, log zerolog.Logger, progress func(Event)) (Result, error) {
	var (
		result Result
		mu     sync.Mutex
	)

	batches := domain.Chunk(chapters, opts.BatchSize)
	for b, batch := range batches {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		log.Debug().Int("batch", b+1).Int("batches", len(batches)).Int("chapters", len(batch)).Msg("downloading batch")

		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)

			go func(c *domain.Chapter) {
				defer wg.Done()

				content, err := p.ParseChapter(ctx, c.Path)

				mu.Lock()
				if err != nil {
					log.Error().Err(err).Str("chapter", c.Path).Int("number", c.Number).Msg("error downloading chapter")
					result.Failed = append(result.Failed, ChapterError{Chapter: *c, Err: err})
				} else {
					c.Content = content
					result.Downloaded++
				}
				mu.Unlock()

				if progress != nil {
					progress(Event{Batch: b, Chapter: *c, Err: err})
				}
			}(&batch[i])
		}
		wg.Wait()

		if b == len(batches)-1 {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(opts.Delay):
		}
	}

	return result, nil
}
