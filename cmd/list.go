package cmd

import (
	"fmt"

	"novelarr/internal/domain"
	"novelarr/internal/library"
	"novelarr/internal/utils"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [novel]",
	Short: "List the novels in the library, or the chapters of one novel",
	Example: `  novelarr list --filter unreadChapters --sort dateUpdated
  novelarr list "martial peak" --chapters`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp()

		if showChapters {
			if len(args) == 0 {
				fmt.Println("A novel is required to list chapters")
				return
			}

			novel, err := a.resolveNovel(args[0])
			if err != nil {
				printAlert(domain.NewAlert(err, "Error finding novel"))
				return
			}

			printChapters(novel, a.settings.ChapterChunkSize)
			return
		}

		f := filter
		if !cmd.Flags().Changed("filter") {
			f = a.settings.LibraryFilter
		}
		lf, err := library.ParseFilter(f)
		if err != nil {
			printAlert(domain.NewAlert(err, "Invalid filter"))
			return
		}

		s := sortingMode
		if !cmd.Flags().Changed("sort") {
			s = a.settings.LibrarySortingMode
		}
		mode, err := library.ParseSortingMode(s)
		if err != nil {
			printAlert(domain.NewAlert(err, "Invalid sorting mode"))
			return
		}

		novels := a.lib.Novels(lf, mode)
		if len(novels) == 0 {
			fmt.Println("No novels found")
			return
		}

		for _, n := range novels {
			fmt.Printf("%-50s %-10s %4d/%-4d unread  %s  %s\n",
				utils.Truncate(n.Title, 50),
				n.Category.Name(),
				n.UnreadCount(),
				len(n.Chapters),
				n.DateUpdated.Local().Format("2006-01-02"),
				n.Path,
			)
		}
	},
}

func printChapters(novel domain.Novel, chunkSize int) {
	fmt.Printf("%s (%s)\n", novel.Title, novel.Status)

	chunks := novel.Chunks(chunkSize)
	for _, chunk := range chunks {
		if len(chunks) > 1 {
			fmt.Printf("\nChapters %d-%d\n", chunk[0].Number, chunk[len(chunk)-1].Number)
		}

		for _, c := range chunk {
			read := " "
			if novel.IsRead(c) {
				read = "x"
			}
			downloaded := " "
			if c.Downloaded() {
				downloaded = "d"
			}

			fmt.Printf("[%s%s] %s %s\n", read, downloaded, utils.PadInt(c.Number, 4), c.Title)
		}
	}
}
