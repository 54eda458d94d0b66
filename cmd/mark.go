package cmd

import (
	"fmt"

	"novelarr/internal/domain"
	"novelarr/internal/parse"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <novel>",
	Short: "Mark chapters as read or unread, or move a novel to another category",
	Example: `  novelarr mark "martial peak" --chapters 1-20
  novelarr mark "martial peak" --chapters 20 --unread
  novelarr mark "martial peak" --category completed`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp()

		novel, err := a.resolveNovel(args[0])
		if err != nil {
			printAlert(domain.NewAlert(err, "Error finding novel"))
			return
		}

		if cmd.Flags().Changed("category") {
			c, ok := domain.ParseCategory(markCategory)
			if !ok {
				printAlert(domain.NewAlert(errors.Errorf("unknown category %q", markCategory), "Invalid category"))
				return
			}

			if err := a.lib.SetCategory(novel.Path, c); err != nil {
				printAlert(domain.NewAlert(err, "Error moving %q", novel.Title))
				return
			}
			fmt.Printf("Moved %q to %s\n", novel.Title, c.Name())
		}

		if cmd.Flags().Changed("chapters") {
			selected, err := parse.ChapterSelection(chapterNumbers, novel.Chapters)
			if err != nil {
				printAlert(domain.NewAlert(err, "Failed to parse chapter selection for %q", novel.Title))
				return
			}

			paths := make([]string, 0, len(selected))
			for _, c := range selected {
				paths = append(paths, c.Path)
			}

			if unread {
				err = a.lib.UnmarkRead(novel.Path, paths...)
			} else {
				err = a.lib.MarkRead(novel.Path, paths...)
			}
			if err != nil {
				printAlert(domain.NewAlert(err, "Error marking chapters of %q", novel.Title))
				return
			}

			state := "read"
			if unread {
				state = "unread"
			}
			fmt.Printf("Marked %d chapters as %s\n", len(paths), state)
		}

		a.saveLibrary()
	},
}
