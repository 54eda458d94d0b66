package library

import (
	"cmp"
	"strings"

	"novelarr/internal/domain"

	"github.com/pkg/errors"
)

type Filter string

const (
	FilterAll            Filter = ""
	FilterReading        Filter = "reading"
	FilterCompleted      Filter = "completed"
	FilterUnreadChapters Filter = "unreadChapters"
	FilterNotStarted     Filter = "notStarted"
)

var Filters = []Filter{FilterReading, FilterCompleted, FilterUnreadChapters, FilterNotStarted}

func ParseFilter(s string) (Filter, error) {
	if s == "" || s == "all" {
		return FilterAll, nil
	}

	for _, f := range Filters {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}

	return "", errors.Errorf("unknown filter %q", s)
}

func (f Filter) Matches(n domain.Novel) bool {
	switch f {
	case FilterReading:
		return n.Category == domain.CategoryReading
	case FilterCompleted:
		return n.Category == domain.CategoryCompleted
	case FilterUnreadChapters:
		return n.UnreadCount() > 0
	case FilterNotStarted:
		return len(n.ChaptersRead) == 0
	default:
		return true
	}
}

type SortingMode string

const (
	SortByTitle       SortingMode = "title"
	SortByDateAdded   SortingMode = "dateAdded"
	SortByDateUpdated SortingMode = "dateUpdated"
)

var SortingModes = []SortingMode{SortByTitle, SortByDateAdded, SortByDateUpdated}

func ParseSortingMode(s string) (SortingMode, error) {
	if s == "" {
		return SortByTitle, nil
	}

	for _, m := range SortingModes {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}

	return "", errors.Errorf("unknown sorting mode %q", s)
}

// compare orders titles ascending and dates newest first. Ties fall back to path.
func (m SortingMode) compare(a, b domain.Novel) int {
	var c int
	switch m {
	case SortByDateAdded:
		c = b.DateAdded.Compare(a.DateAdded)
	case SortByDateUpdated:
		c = b.DateUpdated.Compare(a.DateUpdated)
	default:
		c = cmp.Compare(a.Title, b.Title)
	}

	if c != 0 {
		return c
	}

	return cmp.Compare(a.Path, b.Path)
}
