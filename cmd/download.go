package cmd

import (
	"context"
	"fmt"

	"novelarr/internal/domain"
	"novelarr/internal/download"
	"novelarr/internal/parse"
	"novelarr/internal/utils"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <novel>",
	Short: "Download the content of chapters for offline reading",
	Example: `  novelarr download "martial peak" --chapters 1-50
  novelarr download "martial peak" --chapters 3 --remove`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		a := newApp()

		novel, err := a.resolveNovel(args[0])
		if err != nil {
			printAlert(domain.NewAlert(err, "Error finding novel"))
			return
		}

		selected, err := parse.ChapterSelection(chapterNumbers, novel.Chapters)
		if err != nil {
			printAlert(domain.NewAlert(err, "Failed to parse chapter selection for %q", novel.Title))
			return
		}

		if removeContent {
			paths := make([]string, 0, len(selected))
			for _, c := range selected {
				paths = append(paths, c.Path)
			}

			if err := a.lib.ClearContent(novel.Path, paths...); err != nil {
				printAlert(domain.NewAlert(err, "Error removing content of %q", novel.Title))
				return
			}
			a.saveLibrary()

			fmt.Printf("Removed content of %d chapters\n", len(paths))
			return
		}

		pending := make([]domain.Chapter, 0, len(selected))
		for _, c := range selected {
			if force || !c.Downloaded() {
				pending = append(pending, c)
			}
		}

		if len(pending) == 0 {
			fmt.Println("Chapters have already been downloaded, nothing to do")
			return
		}

		if err := a.downloadChapters(ctx, novel, pending, true); err != nil {
			printAlert(domain.NewAlert(err, "Error downloading %q", novel.Title))
		}
	},
}

// downloadChapters fetches the content of chapters and stores whatever was
// downloaded, even when the run is cut short.
func (a *app) downloadChapters(ctx context.Context, novel domain.Novel, chapters []domain.Chapter, showProgress bool) error {
	p, err := a.provider(novel.Provider)
	if err != nil {
		return err
	}

	log := a.log.Zerolog().With().Str("novel", novel.Path).Str("provider", string(novel.Provider)).Logger()

	var observe func(download.Event)
	if showProgress {
		bar := newChapterProgress(utils.Truncate(novel.Title, 30), len(chapters))
		defer bar.Close()
		observe = bar.Observe
	}

	result, runErr := download.Chapters(ctx, p, chapters, download.OptionsFor(p), log, observe)

	contents := make(map[string][]string, result.Downloaded)
	for _, c := range chapters {
		if c.Content != nil {
			contents[c.Path] = c.Content
		}
	}

	if err := a.lib.SetContent(novel.Path, contents); err != nil {
		return err
	}
	a.saveLibrary()

	for _, f := range result.Failed {
		log.Warn().Err(f.Err).Str("chapter", f.Chapter.Path).Msg("chapter download failed")
	}

	log.Info().Int("downloaded", result.Downloaded).Int("failed", len(result.Failed)).Msg("download finished")

	return runErr
}
