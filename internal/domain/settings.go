package domain

// Settings are the user preferences persisted next to the library.
type Settings struct {
	Providers                      []ProviderID `json:"novelProviders"`
	ChapterChunkSize               int          `json:"novelChapterChunkSize"`
	MarkChapterAsReadWhenFinished  bool         `json:"markNovelChapterAsReadWhenFinished"`
	MarkChapterAsReadWhenSwitching bool         `json:"markNovelChapterAsReadWhenSwitching"`
	LibraryFilter                  string       `json:"libraryFilter"`
	LibrarySortingMode             string       `json:"librarySortingMode"`
}

func DefaultSettings() Settings {
	return Settings{
		Providers:                      append([]ProviderID(nil), ProviderIDs...),
		ChapterChunkSize:               100,
		MarkChapterAsReadWhenFinished:  true,
		MarkChapterAsReadWhenSwitching: true,
		LibraryFilter:                  "reading",
		LibrarySortingMode:             "title",
	}
}

func (s Settings) ProviderEnabled(id ProviderID) bool {
	for _, p := range s.Providers {
		if p == id {
			return true
		}
	}

	return false
}
