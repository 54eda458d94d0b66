package cmd

import (
	"fmt"
	"strconv"

	"novelarr/internal/domain"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <novel> [number]",
	Short: "Print a chapter, by default the first one after the last read chapter",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		a := newApp()

		novel, err := a.resolveNovel(args[0])
		if err != nil {
			printAlert(domain.NewAlert(err, "Error finding novel"))
			return
		}

		chapter, idx, err := nextChapter(novel, args[1:])
		if err != nil {
			printAlert(domain.NewAlert(err, "Error selecting chapter of %q", novel.Title))
			return
		}

		content := chapter.Content
		if !chapter.Downloaded() {
			p, err := a.provider(novel.Provider)
			if err != nil {
				printAlert(domain.NewAlert(err, "Invalid provider"))
				return
			}

			content, err = p.ParseChapter(ctx, chapter.Path)
			if err != nil {
				printAlert(domain.NewAlert(err, "Error loading chapter %d", chapter.Number))
				return
			}
		}

		fmt.Printf("%s\n%s\n\n", novel.Title, chapter.Title)
		for _, paragraph := range content {
			fmt.Println(paragraph)
			fmt.Println()
		}

		var read []string
		if a.settings.MarkChapterAsReadWhenSwitching && idx > 0 {
			read = append(read, novel.Chapters[idx-1].Path)
		}
		if a.settings.MarkChapterAsReadWhenFinished {
			read = append(read, chapter.Path)
		}

		if len(read) == 0 {
			return
		}

		if err := a.lib.MarkRead(novel.Path, read...); err != nil {
			a.log.Error().Err(err).Str("novel", novel.Path).Msg("could not mark chapters as read")
			return
		}
		a.saveLibrary()
	},
}

// nextChapter picks the chapter named by args, or the one after the leading
// run of read chapters.
func nextChapter(novel domain.Novel, args []string) (domain.Chapter, int, error) {
	if len(novel.Chapters) == 0 {
		return domain.Chapter{}, -1, errors.New("novel has no chapters")
	}

	if len(args) == 1 {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return domain.Chapter{}, -1, errors.Wrapf(err, "invalid chapter number %q", args[0])
		}

		c, idx, ok := novel.ChapterByNumber(number)
		if !ok {
			return domain.Chapter{}, -1, errors.Errorf("chapter %d not found", number)
		}
		return c, idx, nil
	}

	last := novel.LastChapterReadNumber()
	if last < 0 {
		return novel.Chapters[0], 0, nil
	}

	c, idx, ok := novel.ChapterByNumber(last + 1)
	if !ok {
		return domain.Chapter{}, -1, errors.New("all chapters have been read")
	}

	return c, idx, nil
}
