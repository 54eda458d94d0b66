package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"novelarr/internal/domain"
	"novelarr/internal/markup"
	"novelarr/internal/sharedhttp"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const (
	freeWebNovelURL = "https://freewebnovel.com"
	libReadURL      = "https://libread.org"
)

// novelFull scrapes the "novel full" site theme shared by Free Web Novel and Lib Read.
type novelFull struct {
	details       domain.ProviderDetails
	fetcher       sharedhttp.Fetcher
	defaultStatus string
}

func NewFreeWebNovel(fetcher sharedhttp.Fetcher, site string) domain.Provider {
	if site == "" {
		site = freeWebNovelURL
	}

	return &novelFull{
		details: domain.ProviderDetails{
			ID:         domain.FreeWebNovel,
			Name:       "Free Web Novel",
			Site:       site,
			Version:    providerVersion,
			BatchSize:  15,
			BatchDelay: defaultBatchDelay,
		},
		fetcher:       fetcher,
		defaultStatus: "Unknown",
	}
}

func NewLibRead(fetcher sharedhttp.Fetcher, site string) domain.Provider {
	if site == "" {
		site = libReadURL
	}

	return &novelFull{
		details: domain.ProviderDetails{
			ID:         domain.LibRead,
			Name:       "Lib Read",
			Site:       site,
			Version:    providerVersion,
			BatchSize:  15,
			BatchDelay: defaultBatchDelay,
		},
		fetcher:       fetcher,
		defaultStatus: "",
	}
}

func (s *novelFull) Details() domain.ProviderDetails {
	return s.details
}

// Search posts the term to the site search page
func (s *novelFull) Search(ctx context.Context, term string) ([]domain.NovelPreview, error) {
	doc, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Request{
		Method: http.MethodPost,
		URL:    s.details.Site + "/search/",
		Query:  url.Values{"searchkey": {term}},
		Header: http.Header{
			"Content-Type": {"application/x-www-form-urlencoded"},
			"Referer":      {s.details.Site},
			"Origin":       {s.details.Site},
		},
	})
	if err != nil {
		return nil, err
	}

	var previews []domain.NovelPreview
	doc.Find(".li-row > .li > .con").Each(func(_ int, e *goquery.Selection) {
		previews = append(previews, domain.NovelPreview{
			Path:     e.Find("h3 > a").AttrOr("href", ""),
			Title:    markup.Text(e.Find(".tit")),
			CoverURL: e.Find(".pic > a > img").AttrOr("src", ""),
			Provider: s.details.ID,
		})
	})

	return keepPreviews(previews), nil
}

// ParseNovel scrapes the novel detail page, which also carries the full chapter index
func (s *novelFull) ParseNovel(ctx context.Context, path string) (domain.Novel, error) {
	doc, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Get(s.details.Site+path))
	if err != nil {
		return domain.Novel{}, parseFailure(s.details.ID, path, err)
	}

	title := markup.Text(doc.Find("h1.tit"))
	if title == "" {
		return domain.Novel{}, parseFailure(s.details.ID, path, errors.New("missing title"))
	}

	index := doc.Find("#idData")
	if index.Length() == 0 {
		return domain.Novel{}, parseFailure(s.details.ID, path, errors.New("missing chapter index"))
	}

	novel := domain.NewNovel(path, s.details.ID, now())
	novel.Title = title
	novel.CoverURL = doc.Find(".pic > img").AttrOr("src", "")
	novel.Summary = markup.Texts(doc.Find(".inner > p"))

	if genres, ok := markup.LabelValue(doc, "Genre"); ok {
		novel.Genres = markup.SplitList(genres, ",")
	}
	if authors, ok := markup.LabelValue(doc, "Author"); ok {
		novel.Authors = markup.SplitList(authors, ",")
	}

	novel.Status = s.defaultStatus
	if status, ok := markup.LabelValue(doc, "Status"); ok {
		novel.Status = status
	}

	chapters := make([]domain.Chapter, 0)
	index.Find("li > a").Each(func(i int, e *goquery.Selection) {
		number := i + 1

		title := markup.Clean(e.AttrOr("title", ""))
		if title == "" {
			title = fmt.Sprintf("Chapter %d", number)
		}

		chapterPath := e.AttrOr("href", "")
		if chapterPath == "" {
			chapterPath = fmt.Sprintf("%s/%d", path, number)
		}

		chapters = append(chapters, domain.Chapter{
			Path:     chapterPath,
			Title:    title,
			Provider: s.details.ID,
		})
	})
	novel.Chapters = numberChapters(chapters, false)

	return novel, nil
}

// ParseChapter returns the paragraphs of a chapter page
func (s *novelFull) ParseChapter(ctx context.Context, path string) ([]string, error) {
	doc, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Get(s.details.Site+path))
	if err != nil {
		return nil, parseFailure(s.details.ID, path, err)
	}

	body := doc.Find("div.txt")
	if body.Length() == 0 {
		return nil, parseFailure(s.details.ID, path, errors.New("missing chapter body"))
	}

	return markup.Texts(body.Find("p")), nil
}
