package source

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"novelarr/internal/domain"
	"novelarr/internal/markup"
	"novelarr/internal/sharedhttp"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

const (
	mtlNovelURL  = "https://www.mtlnovel.com"
	mtlNovelHost = "www.mtlnovel.com"
)

type mtlNovel struct {
	details domain.ProviderDetails
	fetcher sharedhttp.Fetcher
}

type mtlSearchResponse struct {
	Items []struct {
		Results []struct {
			Permalink string `json:"permalink"`
			Title     string `json:"title"`
			Thumbnail string `json:"thumbnail"`
		} `json:"results"`
	} `json:"items"`
}

func NewMTLNovel(fetcher sharedhttp.Fetcher, site string) domain.Provider {
	if site == "" {
		site = mtlNovelURL
	}

	return &mtlNovel{
		details: domain.ProviderDetails{
			ID:         domain.MTLNovel,
			Name:       "MTL Novel",
			Site:       site,
			Version:    providerVersion,
			BatchSize:  10,
			BatchDelay: defaultBatchDelay,
		},
		fetcher: fetcher,
	}
}

func (s *mtlNovel) Details() domain.ProviderDetails {
	return s.details
}

func (s *mtlNovel) header(referer bool) http.Header {
	h := http.Header{"Alt-Used": {mtlNovelHost}}
	if referer {
		h.Set("Referer", s.details.Site+"/novel-list")
	}

	return h
}

// Search uses the autosuggest endpoint, which answers with JSON
func (s *mtlNovel) Search(ctx context.Context, term string) ([]domain.NovelPreview, error) {
	body, err := s.fetcher.Fetch(ctx, sharedhttp.Request{
		Method: http.MethodPost,
		URL:    s.details.Site + "/wp-admin/admin-ajax.php",
		Query: url.Values{
			"action":              {"autosuggest"},
			"q":                   {term},
			"__amp_source_origin": {mtlNovelURL},
		},
		Header: s.header(false),
	})
	if err != nil {
		return nil, &domain.FetchError{Provider: s.details.ID, Err: err}
	}

	var resp mtlSearchResponse
	if err := markup.Decode(body, &resp); err != nil {
		return nil, &domain.FetchError{Provider: s.details.ID, Err: err}
	}

	if len(resp.Items) == 0 {
		return []domain.NovelPreview{}, nil
	}

	previews := make([]domain.NovelPreview, 0, len(resp.Items[0].Results))
	for _, r := range resp.Items[0].Results {
		previews = append(previews, domain.NovelPreview{
			Path:     trimSite(r.Permalink, s.details.Site),
			Title:    markup.StripTags(r.Title),
			CoverURL: r.Thumbnail,
			Provider: s.details.ID,
		})
	}

	return keepPreviews(previews), nil
}

// ParseNovel scrapes the novel page and then its separate chapter list page
func (s *mtlNovel) ParseNovel(ctx context.Context, path string) (domain.Novel, error) {
	doc, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Request{
		Method: http.MethodGet,
		URL:    s.details.Site + path,
		Header: s.header(true),
	})
	if err != nil {
		return domain.Novel{}, parseFailure(s.details.ID, path, err)
	}

	title := markup.Text(doc.Find("h1.entry-title"))
	if title == "" {
		return domain.Novel{}, parseFailure(s.details.ID, path, errors.New("missing title"))
	}

	novel := domain.NewNovel(path, s.details.ID, now())
	novel.Title = title
	novel.CoverURL = doc.Find(".nov-head > amp-img").AttrOr("src", "")
	novel.Summary = markup.Lines(doc.Find("div.desc > p"))

	if genres := markup.Text(doc.Find("#genre").First()); genres != "" {
		novel.Genres = markup.SplitList(genres, ",")
	}
	if authors := markup.Text(doc.Find("#author").First()); authors != "" {
		novel.Authors = markup.SplitList(authors, ",")
	}

	novel.Status = "Unknown"
	if status := markup.Text(doc.Find("#status")); status != "" {
		novel.Status = status
	}

	listURL := s.details.Site + path
	if !strings.HasSuffix(listURL, "/") {
		listURL += "/"
	}

	list, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Request{
		Method: http.MethodGet,
		URL:    listURL + "chapter-list/",
		Header: s.header(true),
	})
	if err != nil {
		return domain.Novel{}, parseFailure(s.details.ID, path, errors.Wrap(err, "chapter list"))
	}

	chapters := make([]domain.Chapter, 0)
	list.Find("a.ch-link").Each(func(_ int, e *goquery.Selection) {
		chapters = append(chapters, domain.Chapter{
			Path:     trimSite(e.AttrOr("href", ""), s.details.Site),
			Title:    markup.Text(e),
			Provider: s.details.ID,
		})
	})
	novel.Chapters = numberChapters(chapters, true)

	return novel, nil
}

// ParseChapter returns the paragraphs of a chapter page
func (s *mtlNovel) ParseChapter(ctx context.Context, path string) ([]string, error) {
	doc, err := fetchDocument(ctx, s.fetcher, s.details.ID, sharedhttp.Request{
		Method: http.MethodGet,
		URL:    s.details.Site + path,
		Header: s.header(false),
	})
	if err != nil {
		return nil, parseFailure(s.details.ID, path, err)
	}

	body := doc.Find("div.par")
	if body.Length() == 0 {
		return nil, parseFailure(s.details.ID, path, errors.New("missing chapter body"))
	}

	return markup.Texts(body.Find("p")), nil
}
