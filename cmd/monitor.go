package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"novelarr/internal/domain"
	"novelarr/internal/update"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const refreshJob = "library-refresh"

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Refresh the library periodically and optionally download new chapters",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		a := newApp()

		if err := a.cfg.UpdateConfig(); err != nil {
			a.log.Error().Err(err).Msgf("error updating config")
		}

		// init dynamic config
		a.cfg.DynamicReload(a.log)

		s := gocron.NewScheduler(time.UTC)
		s.SingletonModeAll()

		interval := a.cfg.Snapshot().CheckInterval
		if err := a.scheduleRefresh(ctx, s, interval); err != nil {
			a.log.Fatal().Err(err).Msg("could not schedule library refresh")
		}

		a.log.Info().Int("novels", a.lib.Len()).Int("interval", interval).Msg("starting to monitor the library")
		s.StartAsync()

		// pick up checkInterval changes from config reloads
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					current := a.cfg.Snapshot().CheckInterval
					if current == interval {
						continue
					}

					if err := s.RemoveByTag(refreshJob); err != nil {
						a.log.Error().Err(err).Msg("could not remove refresh job")
						continue
					}
					if err := a.scheduleRefresh(ctx, s, current); err != nil {
						a.log.Error().Err(err).Msg("could not reschedule library refresh")
						continue
					}

					a.log.Info().Int("from", interval).Int("to", current).Msg("check interval changed")
					interval = current
				}
			}
		}()

		// set up a channel to catch signals for graceful shutdown
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		fmt.Printf("received signal: %s, stopping monitoring.\n", <-sigCh)
		cancel()
		s.Stop()
		a.saveLibrary()
	},
}

func (a *app) scheduleRefresh(ctx context.Context, s *gocron.Scheduler, minutes int) error {
	_, err := s.Every(minutes).Minutes().Tag(refreshJob).Do(func() {
		a.refreshLibrary(ctx)
	})

	return err
}

// refreshLibrary runs one monitor pass over the whole library.
func (a *app) refreshLibrary(ctx context.Context) {
	report, err := a.updater.RefreshAll(ctx, a.lib)
	a.saveLibrary()
	if err != nil {
		a.log.Warn().Err(err).Str("run", report.RunID).Msg("library refresh stopped")
		return
	}

	for _, res := range report.Failed() {
		a.log.Error().Err(res.Err).Str("run", report.RunID).Str("novel", res.Novel.Path).Msg("error updating novel")
	}

	if !a.cfg.Snapshot().AutoDownload {
		return
	}

	downloadNewChapters(ctx, report, a.lib.Contains, a.downloadChapters, a.log.Zerolog())
}

type chapterDownloader func(ctx context.Context, novel domain.Novel, chapters []domain.Chapter, showProgress bool) error

// downloadNewChapters fetches the chapters appended by a refresh run for every
// novel still tracked. A failing novel does not stop the others; a cancelled
// context does. It returns the paths of the novels it attempted.
func downloadNewChapters(ctx context.Context, report update.Report, tracked func(path string) bool, fetch chapterDownloader, log zerolog.Logger) []string {
	var attempted []string

	for _, res := range report.Results {
		if res.Err != nil || res.NewChapters == 0 || !tracked(res.Novel.Path) {
			continue
		}
		if ctx.Err() != nil {
			return attempted
		}

		fresh := newestChapters(res)
		attempted = append(attempted, res.Novel.Path)

		log.Info().Str("run", report.RunID).Str("novel", res.Novel.Path).Int("chapters", len(fresh)).Msg("downloading new chapters")
		if err := fetch(ctx, res.Novel, fresh, false); err != nil {
			log.Error().Err(err).Str("run", report.RunID).Str("novel", res.Novel.Path).Msg("error downloading new chapters")
			if ctx.Err() != nil {
				return attempted
			}
		}
	}

	return attempted
}

// newestChapters returns the chapters appended by the refresh behind res.
func newestChapters(res update.Result) []domain.Chapter {
	chapters := res.Novel.Chapters
	return chapters[max(len(chapters)-res.NewChapters, 0):]
}
