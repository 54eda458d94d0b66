package parse

import (
	"slices"
	"strconv"
	"strings"

	"novelarr/internal/domain"

	"github.com/pkg/errors"
)

// ChapterSelection parses the user input for ranges and parts, e.g. "1-10,15",
// and returns the matching chapters in ascending order. "all" selects every chapter.
func ChapterSelection(input string, chapters []domain.Chapter) ([]domain.Chapter, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "all") {
		return slices.Clone(chapters), nil
	}

	parts := strings.Split(input, ",")
	uniqueNumbers := make(map[int]bool)

	for _, part := range parts {
		if strings.Contains(part, "-") {
			rangeParts := strings.Split(part, "-")
			if len(rangeParts) != 2 {
				return nil, errors.Errorf("invalid range format: %s", part)
			}
			start, end, err := getRange(rangeParts)
			if err != nil {
				return nil, err
			}

			for n := start; n <= end; n++ {
				uniqueNumbers[n] = true
			}
		} else {
			number, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, errors.Errorf("invalid chapter number: %s", part)
			}
			uniqueNumbers[number] = true
		}
	}

	selected := make([]domain.Chapter, 0, len(uniqueNumbers))
	for _, c := range chapters {
		if uniqueNumbers[c.Number] {
			selected = append(selected, c)
		}
	}

	if len(selected) == 0 {
		return nil, errors.Errorf("no chapters match selection: %s", input)
	}

	return selected, nil
}

// getRange parses the user input for chapter ranges
func getRange(rangeParts []string) (int, int, error) {
	start, err := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
	if err != nil {
		return 0, 0, errors.Errorf("invalid start of range: %s", rangeParts[0])
	}
	end, err := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
	if err != nil {
		return 0, 0, errors.Errorf("invalid end of range: %s", rangeParts[1])
	}

	if start > end {
		return 0, 0, errors.Errorf("start of range should not be greater than end: %s-%s", rangeParts[0], rangeParts[1])
	}

	return start, end, nil
}
