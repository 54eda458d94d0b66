package cmd

import (
	"fmt"
	"strings"

	"novelarr/internal/domain"
	"novelarr/internal/search"
	"novelarr/internal/utils"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the enabled providers for novels",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		a := newApp()

		term := strings.Join(args, " ")

		ids, err := a.searchProviders()
		if err != nil {
			printAlert(domain.NewAlert(err, "Invalid provider"))
			return
		}

		results, err := search.Novels(ctx, a.registry, ids, term, a.log.Zerolog())
		if err != nil {
			printAlert(domain.NewAlert(err, "Error searching for %q", term))
			return
		}

		for _, res := range results {
			if res.Err != nil {
				printAlert(domain.NewAlert(res.Err, "Error searching %s", res.Provider))
				continue
			}

			fmt.Printf("%s (%d)\n", res.Provider, len(res.Previews))
			for _, p := range res.Previews {
				fmt.Printf("  %-50s %s\n", utils.Truncate(p.Title, 50), p.Path)
			}
		}

		if !addResult {
			return
		}

		previews := search.Previews(results)
		if len(previews) == 0 {
			fmt.Println("Nothing to add")
			return
		}

		items := make([]string, 0, len(previews))
		for _, p := range previews {
			label := fmt.Sprintf("%s (%s)", p.Title, p.Provider)
			if a.lib.Contains(p.Path) {
				label += "  (in library)"
			}
			items = append(items, label)
		}

		prompt := promptui.Select{
			Label: "Select novel",
			Items: items,
			Size:  15,
		}

		idx, _, err := prompt.Run()
		if err != nil {
			fmt.Println("Selection cancelled")
			return
		}

		selected := previews[idx]
		if err := a.addNovel(cmd, selected.Provider, selected.Path, domain.CategoryReading); err != nil {
			printAlert(domain.NewAlert(err, "Error adding %q", selected.Title))
		}
	},
}

// searchProviders returns the --provider ids or the providers enabled in settings.
func (a *app) searchProviders() ([]domain.ProviderID, error) {
	if len(providers) == 0 {
		return a.settings.Providers, nil
	}

	ids := make([]domain.ProviderID, 0, len(providers))
	for _, p := range providers {
		id, err := domain.ParseProviderID(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
