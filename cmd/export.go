package cmd

import (
	"fmt"
	"os"

	"novelarr/internal/domain"
	"novelarr/internal/export"
	"novelarr/internal/files"
	"novelarr/internal/parse"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <novel>",
	Short: "Export downloaded chapters of a novel to EPUB or PDF",
	Example: `  novelarr export "martial peak"
  novelarr export "martial peak" --format pdf --chapters 1-100 -o ~/books`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		a := newApp()

		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			printAlert(domain.NewAlert(err, "Invalid format"))
			return
		}

		dir := exportDirectory
		if dir == "" {
			dir = a.cfg.Config.ExportLocation
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				printAlert(domain.NewAlert(err, "Could not create export location"))
				return
			}
		}
		if err := files.IsValidLocation(dir); err != nil {
			printAlert(domain.NewAlert(err, "Invalid location"))
			return
		}

		tmpl := naming
		if tmpl == "" {
			tmpl = a.cfg.Config.NamingTemplate
		}

		novel, err := a.resolveNovel(args[0])
		if err != nil {
			printAlert(domain.NewAlert(err, "Error finding novel"))
			return
		}

		selected, err := parse.ChapterSelection(chapterNumbers, novel.Chapters)
		if err != nil {
			printAlert(domain.NewAlert(err, "Failed to parse chapter selection for %q", novel.Title))
			return
		}

		var site string
		if p, err := a.provider(novel.Provider); err == nil {
			site = p.Details().Site
		}

		out, err := export.Novel(ctx, novel, selected, export.Options{
			Format:    format,
			Directory: dir,
			Template:  tmpl,
			Site:      site,
		}, a.log.Zerolog().With().Str("novel", novel.Path).Logger())
		if err != nil {
			printAlert(domain.NewAlert(err, "Error exporting %q", novel.Title))
			return
		}

		fmt.Println("Exported to", out)
	},
}
