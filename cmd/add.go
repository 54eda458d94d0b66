package cmd

import (
	"fmt"

	"novelarr/internal/domain"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <provider> <path>",
	Short: "Add a novel to the library by provider and path",
	Example: `  novelarr add freeWebNovel /novel/martial-peak
  novelarr add scribbleHub /series/123/some-story/ --category completed`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp()

		id, err := domain.ParseProviderID(args[0])
		if err != nil {
			printAlert(domain.NewAlert(err, "Invalid provider"))
			return
		}

		c, ok := domain.ParseCategory(addCategory)
		if !ok {
			c = domain.CategoryReading
		}

		if err := a.addNovel(cmd, id, args[1], c); err != nil {
			printAlert(domain.NewAlert(err, "Error adding %q", args[1]))
		}
	},
}

// addNovel parses the novel detail page and stores the result in the library.
func (a *app) addNovel(cmd *cobra.Command, id domain.ProviderID, path string, c domain.Category) error {
	if a.lib.Contains(path) {
		fmt.Printf("%q is already in the library\n", path)
		return nil
	}

	p, err := a.provider(id)
	if err != nil {
		return err
	}

	novel, err := p.ParseNovel(cmd.Context(), path)
	if err != nil {
		return err
	}
	novel.Category = c

	a.lib.Add(novel)
	a.saveLibrary()

	a.log.Info().Str("novel", novel.Path).Str("provider", string(id)).Int("chapters", len(novel.Chapters)).Msg("added novel")
	fmt.Printf("Added %q with %d chapters\n", novel.Title, len(novel.Chapters))

	return nil
}
