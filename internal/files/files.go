package files

import (
	"os"
)

func IsValidLocation(location string) error {
	if _, err := os.Stat(location); err != nil {
		return err
	}

	return nil
}

// Book is a novel flattened for export.
type Book struct {
	Title    string
	Authors  []string
	Summary  []string
	Language string
	Cover    []byte // PNG, optional
	Chapters []BookChapter
}

type BookChapter struct {
	Heading    string
	Paragraphs []string
}
