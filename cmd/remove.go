package cmd

import (
	"fmt"

	"novelarr/internal/domain"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <novel>",
	Short: "Remove a novel and its downloaded content from the library",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp()

		novel, err := a.resolveNovel(args[0])
		if err != nil {
			printAlert(domain.NewAlert(err, "Error finding novel"))
			return
		}

		a.lib.Remove(novel.Path)
		a.saveLibrary()

		fmt.Printf("Removed %q\n", novel.Title)
	},
}
