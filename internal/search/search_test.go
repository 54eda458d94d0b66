package search

import (
	"context"
	"testing"

	"novelarr/internal/domain"
	"novelarr/internal/source"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	id    domain.ProviderID
	found []domain.NovelPreview
	err   error
	terms []string
}

func (f *fakeProvider) Details() domain.ProviderDetails {
	return domain.ProviderDetails{ID: f.id}
}

func (f *fakeProvider) Search(_ context.Context, term string) ([]domain.NovelPreview, error) {
	f.terms = append(f.terms, term)
	if f.err != nil {
		return nil, f.err
	}

	return f.found, nil
}

func (f *fakeProvider) ParseNovel(context.Context, string) (domain.Novel, error) {
	return domain.Novel{}, nil
}

func (f *fakeProvider) ParseChapter(context.Context, string) ([]string, error) {
	return nil, nil
}

func TestNovels_BlankTerm(t *testing.T) {
	p := &fakeProvider{id: domain.FreeWebNovel}
	registry := source.NewRegistryWith(p)

	for _, term := range []string{"", "   ", "\t\n"} {
		_, err := Novels(context.Background(), registry, []domain.ProviderID{domain.FreeWebNovel}, term, zerolog.Nop())
		assert.ErrorIs(t, err, ErrBlankTerm)
	}

	assert.Empty(t, p.terms, "no provider is called for a blank term")
}

func TestNovels_FailureIsolation(t *testing.T) {
	good := &fakeProvider{id: domain.FreeWebNovel, found: []domain.NovelPreview{{Path: "/a", Title: "A", Provider: domain.FreeWebNovel}}}
	bad := &fakeProvider{id: domain.ScribbleHub, err: &domain.FetchError{Provider: domain.ScribbleHub, Err: errors.New("boom")}}
	other := &fakeProvider{id: domain.LibRead, found: []domain.NovelPreview{{Path: "/b", Title: "B", Provider: domain.LibRead}}}
	registry := source.NewRegistryWith(good, bad, other)

	ids := []domain.ProviderID{domain.FreeWebNovel, domain.ScribbleHub, domain.MTLNovel, domain.LibRead}
	results, err := Novels(context.Background(), registry, ids, "  hero ", zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, results, 4)
	assert.NoError(t, results[0].Err)

	var fetchErr *domain.FetchError
	assert.True(t, errors.As(results[1].Err, &fetchErr))
	assert.Error(t, results[2].Err, "unregistered provider")
	assert.NoError(t, results[3].Err)

	assert.Equal(t, []string{"hero"}, good.terms)

	previews := Previews(results)
	require.Len(t, previews, 2)
	assert.Equal(t, "/a", previews[0].Path)
	assert.Equal(t, "/b", previews[1].Path)
}
