// Package library holds the user's tracked novels keyed by path.
package library

import (
	"slices"
	"strings"
	"sync"

	"novelarr/internal/domain"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("novel not in library")

type Library struct {
	mu     sync.RWMutex
	novels map[string]domain.Novel
}

func New(novels ...domain.Novel) *Library {
	l := &Library{novels: make(map[string]domain.Novel, len(novels))}
	for _, n := range novels {
		l.novels[n.Path] = n.Clone()
	}

	return l
}

// Add inserts n unless a novel with the same path is already tracked.
func (l *Library) Add(n domain.Novel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.novels[n.Path]; ok {
		return false
	}

	l.novels[n.Path] = n.Clone()
	return true
}

// Replace swaps in n for the novel with the same path. It reports false if
// the novel has been removed in the meantime.
func (l *Library) Replace(n domain.Novel) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.novels[n.Path]; !ok {
		return false
	}

	l.novels[n.Path] = n.Clone()
	return true
}

func (l *Library) Get(path string) (domain.Novel, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n, ok := l.novels[path]
	if !ok {
		return domain.Novel{}, false
	}

	return n.Clone(), true
}

func (l *Library) Contains(path string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.novels[path]
	return ok
}

func (l *Library) Remove(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.novels[path]; !ok {
		return false
	}

	delete(l.novels, path)
	return true
}

func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.novels)
}

// Modify applies fn to the stored novel under the write lock.
func (l *Library) Modify(path string, fn func(n *domain.Novel) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, ok := l.novels[path]
	if !ok {
		return errors.Wrap(ErrNotFound, path)
	}

	n = n.Clone()
	if err := fn(&n); err != nil {
		return err
	}

	l.novels[path] = n
	return nil
}

// Novels returns the novels matching filter ordered by mode. An empty filter matches all.
func (l *Library) Novels(filter Filter, mode SortingMode) []domain.Novel {
	l.mu.RLock()
	out := make([]domain.Novel, 0, len(l.novels))
	for _, n := range l.novels {
		if filter.Matches(n) {
			out = append(out, n.Clone())
		}
	}
	l.mu.RUnlock()

	slices.SortStableFunc(out, mode.compare)
	return out
}

// Find returns the novels whose path equals ref or whose title contains ref, ignoring case.
func (l *Library) Find(ref string) []domain.Novel {
	if n, ok := l.Get(ref); ok {
		return []domain.Novel{n}
	}

	needle := strings.ToLower(strings.TrimSpace(ref))

	var out []domain.Novel
	for _, n := range l.Novels("", SortByTitle) {
		if needle != "" && strings.Contains(strings.ToLower(n.Title), needle) {
			out = append(out, n)
		}
	}

	return out
}

// MarkRead adds the chapter paths to the read set of a novel.
func (l *Library) MarkRead(path string, chapterPaths ...string) error {
	return l.Modify(path, func(n *domain.Novel) error {
		n.ChaptersRead.Add(chapterPaths...)
		return nil
	})
}

func (l *Library) UnmarkRead(path string, chapterPaths ...string) error {
	return l.Modify(path, func(n *domain.Novel) error {
		n.ChaptersRead.Remove(chapterPaths...)
		return nil
	})
}

func (l *Library) SetCategory(path string, category domain.Category) error {
	return l.Modify(path, func(n *domain.Novel) error {
		n.Category = category
		return nil
	})
}

// SetContent stores downloaded paragraphs on the matching chapters. Chapters
// without content in contents are left as they are.
func (l *Library) SetContent(path string, contents map[string][]string) error {
	return l.Modify(path, func(n *domain.Novel) error {
		for i := range n.Chapters {
			if c, ok := contents[n.Chapters[i].Path]; ok {
				n.Chapters[i].Content = c
			}
		}
		return nil
	})
}

// ClearContent drops downloaded text for the given chapters, or for every
// chapter when none are given. Identity and read state are kept.
func (l *Library) ClearContent(path string, chapterPaths ...string) error {
	only := domain.NewPathSet(chapterPaths...)

	return l.Modify(path, func(n *domain.Novel) error {
		for i := range n.Chapters {
			if len(only) == 0 || only.Contains(n.Chapters[i].Path) {
				n.Chapters[i].Content = nil
			}
		}
		return nil
	})
}
