package source

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"novelarr/internal/domain"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mtlSearchJSON = `{"items":[{"results":[
	{"permalink":"%[1]s/the-villains-way/","title":"The <strong>Villain</strong>&#8217;s Way","thumbnail":"https://cdn.example/villain.jpg"},
	{"permalink":"","title":"Nothing","thumbnail":""}
]}]}`

const mtlDetailHTML = `<html><body>
<div class="nov-head"><amp-img src="https://cdn.example/villain.jpg"></amp-img></div>
<h1 class="entry-title">The Villain's Way</h1>
<div class="desc"><p>First line.<br />Second line.</p></div>
<table>
	<tr><td id="author">Writer One, Writer Two</td></tr>
	<tr><td id="status">Ongoing</td></tr>
</table>
</body></html>`

const mtlChapterListHTML = `<html><body>
<div class="ch-list">
	<a class="ch-link" href="%[1]s/the-villains-way/chapter-3/">Chapter 3</a>
	<a class="ch-link" href="%[1]s/the-villains-way/chapter-2/">Chapter 2</a>
	<a class="ch-link" href="%[1]s/the-villains-way/chapter-1/">Chapter 1</a>
</div>
</body></html>`

func TestMTLNovel_Search(t *testing.T) {
	routes := map[string]string{}
	server := newTestServer(t, routes)
	routes["/wp-admin/admin-ajax.php"] = fmt.Sprintf(mtlSearchJSON, server.URL)

	p := NewMTLNovel(newTestFetcher(), server.URL)

	previews, err := p.Search(context.Background(), "villain")
	require.NoError(t, err)

	require.Len(t, previews, 1)
	assert.Equal(t, domain.NovelPreview{
		Path:     "/the-villains-way/",
		Title:    "The Villain’s Way",
		CoverURL: "https://cdn.example/villain.jpg",
		Provider: domain.MTLNovel,
	}, previews[0])

	req := server.request(t, "/wp-admin/admin-ajax.php")
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "autosuggest", req.Query.Get("action"))
	assert.Equal(t, "villain", req.Query.Get("q"))
	assert.Equal(t, "https://www.mtlnovel.com", req.Query.Get("__amp_source_origin"))
	assert.Equal(t, "www.mtlnovel.com", req.Header.Get("Alt-Used"))
}

func TestMTLNovel_SearchBadJSON(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/wp-admin/admin-ajax.php": `<html>not json</html>`,
	})
	p := NewMTLNovel(newTestFetcher(), server.URL)

	_, err := p.Search(context.Background(), "villain")

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
}

func TestMTLNovel_ParseNovel(t *testing.T) {
	pinNow(t)

	routes := map[string]string{}
	server := newTestServer(t, routes)
	routes["/the-villains-way/"] = mtlDetailHTML
	routes["/the-villains-way/chapter-list/"] = fmt.Sprintf(mtlChapterListHTML, server.URL)
	routes["/no-list/"] = mtlDetailHTML

	p := NewMTLNovel(newTestFetcher(), server.URL)
	assert.Equal(t, 10, p.Details().BatchSize)

	novel, err := p.ParseNovel(context.Background(), "/the-villains-way/")
	require.NoError(t, err)

	assert.Equal(t, "The Villain's Way", novel.Title)
	assert.Equal(t, "https://cdn.example/villain.jpg", novel.CoverURL)
	assert.Equal(t, []string{"First line.", "Second line."}, novel.Summary)
	assert.Equal(t, []string{}, novel.Genres)
	assert.Equal(t, []string{"Writer One", "Writer Two"}, novel.Authors)
	assert.Equal(t, "Ongoing", novel.Status)

	require.Len(t, novel.Chapters, 3)
	assert.Equal(t, "Chapter 1", novel.Chapters[0].Title)
	assert.Equal(t, "/the-villains-way/chapter-1/", novel.Chapters[0].Path)
	assert.Equal(t, 3, novel.Chapters[2].Number)

	for _, path := range []string{"/the-villains-way/", "/the-villains-way/chapter-list/"} {
		req := server.request(t, path)
		assert.Equal(t, http.MethodGet, req.Method, path)
		assert.Equal(t, "www.mtlnovel.com", req.Header.Get("Alt-Used"), path)
		assert.Equal(t, server.URL+"/novel-list", req.Header.Get("Referer"), path)
	}

	_, err = p.ParseNovel(context.Background(), "/no-list/")
	var parseErr *domain.ParseError
	require.True(t, errors.As(err, &parseErr), "a missing chapter list fails the whole parse")
}

func TestMTLNovel_ParseChapter(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/the-villains-way/chapter-1/": `<html><body><div class="par"><p>Line one.</p><p>Line two.</p></div></body></html>`,
	})
	p := NewMTLNovel(newTestFetcher(), server.URL)

	content, err := p.ParseChapter(context.Background(), "/the-villains-way/chapter-1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"Line one.", "Line two."}, content)

	req := server.request(t, "/the-villains-way/chapter-1/")
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "www.mtlnovel.com", req.Header.Get("Alt-Used"))
	assert.NotContains(t, req.Header.Get("User-Agent"), "Go-http-client")
}
