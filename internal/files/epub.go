package files

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/pkg/errors"
)

// CreateEPUB writes book as an epub with an optional cover section followed by one section per chapter.
func CreateEPUB(book Book, epubPath string) error {
	if err := os.MkdirAll(filepath.Dir(epubPath), os.ModePerm); err != nil {
		return err
	}

	e, err := epub.NewEpub(book.Title)
	if err != nil {
		return errors.Wrap(err, "failed to create epub")
	}

	if len(book.Authors) > 0 {
		e.SetAuthor(strings.Join(book.Authors, ", "))
	}
	if len(book.Summary) > 0 {
		e.SetDescription(strings.Join(book.Summary, "\n\n"))
	}

	lang := book.Language
	if lang == "" {
		lang = "en"
	}
	e.SetLang(lang)

	if len(book.Cover) > 0 {
		temp, err := os.MkdirTemp("", "novelarr-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(temp)

		coverPath := filepath.Join(temp, "cover.png")
		if err := os.WriteFile(coverPath, book.Cover, 0o600); err != nil {
			return err
		}

		internalPath, err := e.AddImage(coverPath, "cover.png")
		if err != nil {
			return errors.Wrap(err, "failed to add cover")
		}

		body := fmt.Sprintf(`<div class="cover"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>`, internalPath, html.EscapeString(book.Title))
		if _, err := e.AddSection(body, "Cover", "cover.xhtml", ""); err != nil {
			return errors.Wrap(err, "failed to add cover section")
		}
	}

	for i, chapter := range book.Chapters {
		var body strings.Builder
		body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(chapter.Heading)))
		for _, p := range chapter.Paragraphs {
			body.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(p)))
		}

		if _, err := e.AddSection(body.String(), chapter.Heading, fmt.Sprintf("chapter%05d.xhtml", i+1), ""); err != nil {
			return errors.Wrapf(err, "failed to add chapter %q", chapter.Heading)
		}
	}

	if err := e.Write(epubPath); err != nil {
		return errors.Wrap(err, "failed to write epub")
	}

	return nil
}
