package library

import (
	"slices"
	"strings"

	"novelarr/internal/domain"
	"novelarr/internal/files"

	"github.com/rs/zerolog"
)

// FileName is the library document inside the data directory.
const FileName = "library.data"

type document struct {
	Novels []domain.Novel `json:"novels"`
}

// Load reads the library document at path. A missing or undecodable document
// yields an empty library; the problem is logged and never returned.
func Load(path string, log zerolog.Logger) *Library {
	var doc document

	found, err := files.ReadJSON(path, &doc)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("could not load library, starting empty")
		return New()
	}
	if !found {
		log.Debug().Str("path", path).Msg("no library found, starting empty")
		return New()
	}

	l := New()
	for _, n := range doc.Novels {
		if n.ChaptersRead == nil {
			n.ChaptersRead = domain.PathSet{}
		}
		if n.Category == "" {
			n.Category = domain.CategoryReading
		}

		if !l.Add(n) {
			log.Warn().Str("novel", n.Path).Msg("duplicate novel in library document, keeping the first")
		}
	}

	log.Debug().Str("path", path).Int("novels", l.Len()).Msg("library loaded")
	return l
}

// Save overwrites the document at path with the whole library.
func (l *Library) Save(path string) error {
	l.mu.RLock()
	doc := document{Novels: make([]domain.Novel, 0, len(l.novels))}
	for _, n := range l.novels {
		doc.Novels = append(doc.Novels, n)
	}
	l.mu.RUnlock()

	slices.SortFunc(doc.Novels, func(a, b domain.Novel) int {
		return strings.Compare(a.Path, b.Path)
	})

	return files.WriteJSON(path, doc)
}
