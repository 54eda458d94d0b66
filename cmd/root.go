package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "novelarr",
	Short: "Search, track, download and export web novels from various providers.",
	Long: `Search, track, download and export web novels from various providers.

Provide a configuration file using one of the following methods:
1. Use the --config <path> or -c <path> flag.
2. Place a config.yaml file in the default user configuration directory (e.g., ~/.config/novelarr/).
3. Place a config.yaml file a folder inside your home directory (e.g., ~/.novelarr/).
4. Place a config.yaml file in the directory of the binary.

Supported providers: freeWebNovel, scribbleHub, mtlNovel, libRead`,
}

func init() {
	initRootFlags()
	initSearchFlags()
	initAddFlags()
	initListFlags()
	initDownloadFlags()
	initMarkFlags()
	initExportFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(monitorCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
