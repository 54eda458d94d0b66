package cmd

import (
	"fmt"
	"os"
	"time"

	"novelarr/internal/buildinfo"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version info and check for a newer release",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Println("Version:", buildinfo.Version)
		fmt.Println("Commit:", buildinfo.Commit)
		fmt.Println("Build date:", buildinfo.Date)
		fmt.Println()

		rel, err := buildinfo.LatestRelease(cmd.Context(), nil, buildinfo.ReleaseRepo)
		switch {
		case errors.Is(err, buildinfo.ErrNoReleaseRepo):
			fmt.Println("Update check is not available for this build")
			return
		case err != nil:
			fmt.Println("Failed to check for updates:", err)
			os.Exit(1)
		}

		newer, err := buildinfo.NewerRelease(buildinfo.Version, rel.TagName)
		if err != nil {
			fmt.Println("Failed to compare versions:", err)
			os.Exit(1)
		}

		if !newer {
			if buildinfo.Version == "dev" {
				fmt.Println("Development build, latest release is", rel.TagName)
				return
			}

			fmt.Println("You are running the latest release")
			return
		}

		fmt.Println("Update available:", buildinfo.Version, "->", rel.TagName)
		fmt.Println("Published at:", rel.PublishedAt.Format(time.RFC3339))
	},
}
