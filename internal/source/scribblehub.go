package source

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"novelarr/internal/domain"
	"novelarr/internal/markup"
	"novelarr/internal/sharedhttp"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const (
	scribbleHubURL = "https://www.scribblehub.com"

	// release dates are shown like "Mar 3, 2023 07:15 PM"
	scribbleHubDateLayout = "Jan 2, 2006 03:04 PM"
)

type scribbleHub struct {
	details domain.ProviderDetails
	fetcher sharedhttp.Fetcher
}

func NewScribbleHub(fetcher sharedhttp.Fetcher, site string) domain.Provider {
	if site == "" {
		site = scribbleHubURL
	}

	return &scribbleHub{
		details: domain.ProviderDetails{
			ID:         domain.ScribbleHub,
			Name:       "Scribble Hub",
			Site:       site,
			Version:    providerVersion,
			BatchSize:  15,
			BatchDelay: defaultBatchDelay,
		},
		fetcher: fetcher,
	}
}

func (s *scribbleHub) Details() domain.ProviderDetails {
	return s.details
}

// Search queries the fiction search of Scribble Hub
func (s *scribbleHub) Search(ctx context.Context, term string) ([]domain.NovelPreview, error) {
	doc, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Request{
		Method: http.MethodPost,
		URL:    s.details.Site + "/",
		Query:  url.Values{"s": {term}, "post_type": {"fictionposts"}},
	})
	if err != nil {
		return nil, err
	}

	var previews []domain.NovelPreview
	doc.Find(".search_main_box").Each(func(_ int, e *goquery.Selection) {
		link := e.Find(".search_title > a")

		previews = append(previews, domain.NovelPreview{
			Path:     trimSite(link.AttrOr("href", ""), s.details.Site),
			Title:    markup.Text(link),
			CoverURL: e.Find(".search_img > img").AttrOr("src", ""),
			Provider: s.details.ID,
		})
	})

	return keepPreviews(previews), nil
}

// ParseNovel scrapes the series page with the full table of contents expanded
func (s *scribbleHub) ParseNovel(ctx context.Context, path string) (domain.Novel, error) {
	doc, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Request{
		Method: http.MethodGet,
		URL:    s.details.Site + path,
		Query:  url.Values{"toc": {"-1"}},
	})
	if err != nil {
		return domain.Novel{}, parseFailure(s.details.ID, path, err)
	}

	title := markup.Clean(doc.Find(".fic_title").AttrOr("title", ""))
	if title == "" {
		return domain.Novel{}, parseFailure(s.details.ID, path, errors.New("missing title"))
	}

	table := doc.Find(".wi_fic_table")
	if table.Length() == 0 {
		return domain.Novel{}, parseFailure(s.details.ID, path, errors.New("missing table of contents"))
	}

	novel := domain.NewNovel(path, s.details.ID, now())
	novel.Title = title
	novel.CoverURL = doc.Find(".fic_image > img").AttrOr("src", "")
	novel.Summary = markup.Texts(doc.Find(".wi_fic_desc > p"))
	novel.Genres = markup.Texts(doc.Find(".fic_genre"))

	novel.Authors = []string{"Unknown"}
	if author := markup.Text(doc.Find(".auth_name_fic").First()); author != "" {
		novel.Authors = []string{author}
	}

	novel.Status = scribbleHubStatus(markup.Text(doc.Find(".rnd_stats").Last().Next()))

	chapters := make([]domain.Chapter, 0)
	table.Find(".toc_ol > .toc_w").Each(func(_ int, e *goquery.Selection) {
		link := e.Find(".toc_a")

		chapters = append(chapters, domain.Chapter{
			Path:        trimSite(link.AttrOr("href", ""), s.details.Site),
			Title:       markup.Text(link),
			ReleaseTime: scribbleHubReleaseTime(e.Find(".fic_date_pub").AttrOr("title", "")),
			Provider:    s.details.ID,
		})
	})
	novel.Chapters = numberChapters(chapters, true)

	return novel, nil
}

// ParseChapter returns the paragraphs of a chapter page
func (s *scribbleHub) ParseChapter(ctx context.Context, path string) ([]string, error) {
	doc, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Get(s.details.Site+path))
	if err != nil {
		return nil, parseFailure(s.details.ID, path, err)
	}

	body := doc.Find("div.chp_raw")
	if body.Length() == 0 {
		return nil, parseFailure(s.details.ID, path, errors.New("missing chapter body"))
	}

	return markup.Texts(body.Find("p")), nil
}

func scribbleHubStatus(raw string) string {
	switch {
	case strings.Contains(raw, "Hiatus"):
		return "Hiatus"
	case strings.Contains(raw, "Ongoing"):
		return "Ongoing"
	case strings.Contains(raw, "Completed"):
		return "Completed"
	default:
		return "Unknown"
	}
}

func scribbleHubReleaseTime(raw string) *int64 {
	if raw == "" {
		return nil
	}

	t, err := time.ParseInLocation(scribbleHubDateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return nil
	}

	millis := t.UnixMilli()
	return &millis
}
