package cmd

import (
	"fmt"

	"novelarr/internal/domain"
	"novelarr/internal/settings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [key] [value]",
	Short: "Show or change the stored settings",
	Long: `Show or change the stored settings.

Keys: providers, chunkSize, markWhenFinished, markWhenSwitching, filter, sort`,
	Example: `  novelarr settings
  novelarr settings providers scribbleHub,libRead
  novelarr settings chunkSize 50`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a := newApp()

		switch len(args) {
		case 0:
			for _, key := range settings.Keys {
				v, _ := settings.Get(a.settings, key)
				fmt.Printf("%-18s %s\n", key, v)
			}
		case 1:
			v, err := settings.Get(a.settings, args[0])
			if err != nil {
				printAlert(domain.NewAlert(err, "Invalid setting"))
				return
			}
			fmt.Println(v)
		default:
			if err := settings.Set(&a.settings, args[0], args[1]); err != nil {
				printAlert(domain.NewAlert(err, "Invalid setting"))
				return
			}
			if err := a.saveSettings(); err != nil {
				printAlert(domain.NewAlert(err, "Could not save settings"))
				return
			}
			fmt.Println("Saved", args[0])
		}
	},
}
