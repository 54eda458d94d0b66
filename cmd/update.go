package cmd

import (
	"fmt"

	"novelarr/internal/domain"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [novel]",
	Short: "Refresh one novel, or the whole library, from its provider",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		a := newApp()

		if len(args) == 1 {
			novel, err := a.resolveNovel(args[0])
			if err != nil {
				printAlert(domain.NewAlert(err, "Error finding novel"))
				return
			}

			updated, n, err := a.updater.Update(ctx, novel)
			if err != nil {
				printAlert(domain.NewAlert(err, "Error updating %q", novel.Title))
				return
			}

			a.lib.Replace(updated)
			a.saveLibrary()

			fmt.Printf("%s: %d new chapters\n", updated.Title, n)
			return
		}

		report, err := a.updater.RefreshAll(ctx, a.lib)
		a.saveLibrary()
		if err != nil {
			printAlert(domain.NewAlert(err, "Error updating library"))
			return
		}

		for _, res := range report.Results {
			switch {
			case res.Err != nil:
				printAlert(domain.NewAlert(res.Err, "Error updating %q", res.Novel.Title))
			case res.NewChapters > 0:
				fmt.Printf("%s: %d new chapters\n", res.Novel.Title, res.NewChapters)
			}
		}

		fmt.Printf("Updated %d novels, %d new chapters, %d failed\n",
			len(report.Results)-len(report.Failed()), report.NewChapters(), len(report.Failed()))
	},
}
