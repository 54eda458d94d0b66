// Package export renders downloaded chapters of a novel to EPUB or PDF.
package export

import (
	"context"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"novelarr/internal/domain"
	"novelarr/internal/files"
	"novelarr/internal/sanitize"
	"novelarr/internal/sharedhttp"
	"novelarr/internal/templater"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Format string

const (
	FormatEPUB Format = "epub"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatEPUB, "":
		return FormatEPUB, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", errors.Errorf("unsupported export format %q", s)
	}
}

var ErrNothingDownloaded = errors.New("no downloaded chapters to export")

type Options struct {
	Format    Format
	Directory string
	Template  string
	// Site resolves relative cover urls.
	Site string
	// Client is used for the cover download; nil uses the shared transport.
	Client *http.Client
}

// Novel writes the downloaded chapters among chapters to a file in
// opts.Directory and returns its path. Chapters without content are skipped.
func Novel(ctx context.Context, novel domain.Novel, chapters []domain.Chapter, opts Options, log zerolog.Logger) (string, error) {
	tmpl := opts.Template
	if tmpl == "" {
		tmpl = templater.DefaultTemplate
	}

	book := files.Book{
		Title:   novel.Title,
		Authors: novel.Authors,
		Summary: novel.Summary,
	}

	for _, c := range chapters {
		if !c.Downloaded() {
			continue
		}

		book.Chapters = append(book.Chapters, files.BookChapter{
			Heading:    templater.New(novel, c).ExecTemplate(tmpl),
			Paragraphs: c.Content,
		})
	}

	if len(book.Chapters) == 0 {
		return "", ErrNothingDownloaded
	}

	if cover, err := fetchCover(ctx, novel.CoverURL, opts); err != nil {
		log.Warn().Err(err).Str("novel", novel.Path).Msg("exporting without cover")
	} else {
		book.Cover = cover
	}

	name := sanitize.Filename(novel.Title)
	if name == "" {
		name = sanitize.Filename(strings.ReplaceAll(strings.Trim(novel.Path, "/"), "/", "-"))
	}
	format := opts.Format
	if format != FormatPDF {
		format = FormatEPUB
	}
	outputPath := filepath.Join(opts.Directory, name+"."+string(format))

	var err error
	if format == FormatPDF {
		err = files.CreatePDF(book, outputPath)
	} else {
		err = files.CreateEPUB(book, outputPath)
	}
	if err != nil {
		return "", err
	}

	log.Info().Str("novel", novel.Path).Int("chapters", len(book.Chapters)).Str("path", outputPath).Msg("exported novel")
	return outputPath, nil
}

func fetchCover(ctx context.Context, coverURL string, opts Options) ([]byte, error) {
	if coverURL == "" {
		return nil, errors.New("novel has no cover")
	}

	u, err := url.Parse(coverURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid cover url")
	}

	if !u.IsAbs() {
		base, err := url.Parse(opts.Site)
		if err != nil {
			return nil, errors.Wrap(err, "invalid site url")
		}
		u = base.ResolveReference(u)
	}

	asset, err := sharedhttp.Download(ctx, opts.Client, u.String())
	if err != nil {
		return nil, err
	}

	return files.NormalizeImage(asset.Data)
}
