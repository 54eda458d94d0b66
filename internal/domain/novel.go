package domain

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

type Category string

const (
	CategoryReading   Category = "reading"
	CategoryCompleted Category = "completed"
)

func (c Category) Name() string {
	switch c {
	case CategoryCompleted:
		return "Completed"
	default:
		return "Reading"
	}
}

func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(s)) {
	case CategoryReading:
		return CategoryReading, true
	case CategoryCompleted:
		return CategoryCompleted, true
	}

	return "", false
}

// NovelPreview is a search result. Two previews are the same novel when their paths match.
type NovelPreview struct {
	Path     string
	Title    string
	CoverURL string
	Provider ProviderID
}

func (p NovelPreview) Equal(o NovelPreview) bool {
	return p.Path == o.Path
}

type Chapter struct {
	Path        string     `json:"path"`
	Title       string     `json:"title"`
	Number      int        `json:"number"`
	ReleaseTime *int64     `json:"releaseTime,omitempty"` // epoch millis
	Content     []string   `json:"content,omitempty"`
	Provider    ProviderID `json:"provider"`
}

func (c Chapter) Equal(o Chapter) bool {
	return c.Path == o.Path
}

func (c Chapter) Downloaded() bool {
	return c.Content != nil
}

// Novel is the persisted aggregate of a tracked web-novel. Identity is the path alone.
type Novel struct {
	Path         string     `json:"path"`
	Title        string     `json:"title"`
	CoverURL     string     `json:"coverURL"`
	Summary      []string   `json:"summary"`
	Genres       []string   `json:"genres"`
	Authors      []string   `json:"authors"`
	Status       string     `json:"status"`
	Chapters     []Chapter  `json:"chapters"`
	ChaptersRead PathSet    `json:"chaptersRead"`
	DateAdded    time.Time  `json:"dateAdded"`
	DateUpdated  time.Time  `json:"dateUpdated"`
	Category     Category   `json:"category"`
	Provider     ProviderID `json:"provider"`
}

// NewNovel builds a freshly parsed novel, not yet part of any library.
func NewNovel(path string, provider ProviderID, now time.Time) Novel {
	return Novel{
		Path:         path,
		Summary:      []string{},
		Genres:       []string{},
		Authors:      []string{},
		Chapters:     []Chapter{},
		ChaptersRead: PathSet{},
		DateAdded:    now,
		DateUpdated:  now,
		Category:     CategoryReading,
		Provider:     provider,
	}
}

// Clone returns a copy that shares no slices or maps with n.
func (n Novel) Clone() Novel {
	c := n
	c.Summary = slices.Clone(n.Summary)
	c.Genres = slices.Clone(n.Genres)
	c.Authors = slices.Clone(n.Authors)
	c.Chapters = slices.Clone(n.Chapters)
	c.ChaptersRead = n.ChaptersRead.Clone()

	return c
}

func (n Novel) Equal(o Novel) bool {
	return n.Path == o.Path
}

// Chapter returns the chapter with the given path.
func (n Novel) Chapter(path string) (Chapter, int, bool) {
	for i, c := range n.Chapters {
		if c.Path == path {
			return c, i, true
		}
	}

	return Chapter{}, -1, false
}

// ChapterByNumber returns the chapter with the given sequence number.
func (n Novel) ChapterByNumber(number int) (Chapter, int, bool) {
	i, found := slices.BinarySearchFunc(n.Chapters, number, func(c Chapter, number int) int {
		return c.Number - number
	})
	if !found {
		return Chapter{}, -1, false
	}

	return n.Chapters[i], i, true
}

func (n Novel) LastChapterNumber() int {
	if len(n.Chapters) == 0 {
		return -1
	}

	return n.Chapters[len(n.Chapters)-1].Number
}

// LastChapterReadNumber is the number of the last chapter of the leading run of read chapters,
// or -1 if the first chapter is unread.
func (n Novel) LastChapterReadNumber() int {
	last := -1

	for _, c := range n.Chapters {
		if !n.ChaptersRead.Contains(c.Path) {
			return last
		}

		last = c.Number
	}

	return last
}

func (n Novel) IsRead(c Chapter) bool {
	return n.ChaptersRead.Contains(c.Path)
}

func (n Novel) UnreadCount() int {
	count := 0
	for _, c := range n.Chapters {
		if !n.ChaptersRead.Contains(c.Path) {
			count++
		}
	}

	return count
}

// Chunks splits the chapter list into consecutive groups of at most size chapters.
func (n Novel) Chunks(size int) [][]Chapter {
	return Chunk(n.Chapters, size)
}

func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = len(items)
	}

	var chunks [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}

	return chunks
}

// PathSet is a set of chapter paths, encoded as a sorted JSON array.
type PathSet map[string]struct{}

func NewPathSet(paths ...string) PathSet {
	s := make(PathSet, len(paths))
	s.Add(paths...)
	return s
}

func (s PathSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

func (s PathSet) Add(paths ...string) {
	for _, p := range paths {
		s[p] = struct{}{}
	}
}

func (s PathSet) Remove(paths ...string) {
	for _, p := range paths {
		delete(s, p)
	}
}

func (s PathSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)

	return out
}

func (s PathSet) Clone() PathSet {
	out := make(PathSet, len(s))
	for p := range s {
		out[p] = struct{}{}
	}

	return out
}

func (s PathSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *PathSet) UnmarshalJSON(data []byte) error {
	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return err
	}

	*s = NewPathSet(paths...)
	return nil
}
