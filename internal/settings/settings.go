// Package settings persists user preferences in settings.data.
package settings

import (
	"slices"
	"strconv"
	"strings"

	"novelarr/internal/domain"
	"novelarr/internal/files"
	"novelarr/internal/library"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const FileName = "settings.data"

// Load reads settings from path on top of the defaults, so keys missing
// from the document keep their default value. Unknown provider ids are dropped.
func Load(path string, log zerolog.Logger) domain.Settings {
	s := domain.DefaultSettings()

	found, err := files.ReadJSON(path, &s)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("could not load settings, using defaults")
		return domain.DefaultSettings()
	}
	if !found {
		return s
	}

	s.Providers = slices.DeleteFunc(s.Providers, func(id domain.ProviderID) bool {
		_, err := domain.ParseProviderID(string(id))
		if err != nil {
			log.Warn().Str("provider", string(id)).Msg("ignoring unknown provider in settings")
		}
		return err != nil
	})

	if s.ChapterChunkSize <= 0 {
		s.ChapterChunkSize = domain.DefaultSettings().ChapterChunkSize
	}

	return s
}

func Save(path string, s domain.Settings) error {
	return files.WriteJSON(path, s)
}

// Keys lists the names accepted by Set, in display order.
var Keys = []string{"providers", "chunkSize", "markWhenFinished", "markWhenSwitching", "filter", "sort"}

// Get renders the value of key.
func Get(s domain.Settings, key string) (string, error) {
	switch key {
	case "providers":
		ids := make([]string, 0, len(s.Providers))
		for _, id := range s.Providers {
			ids = append(ids, string(id))
		}
		return strings.Join(ids, ","), nil
	case "chunkSize":
		return strconv.Itoa(s.ChapterChunkSize), nil
	case "markWhenFinished":
		return strconv.FormatBool(s.MarkChapterAsReadWhenFinished), nil
	case "markWhenSwitching":
		return strconv.FormatBool(s.MarkChapterAsReadWhenSwitching), nil
	case "filter":
		return s.LibraryFilter, nil
	case "sort":
		return s.LibrarySortingMode, nil
	}

	return "", errors.Errorf("unknown setting %q", key)
}

// Set parses value and stores it under key. s is left untouched on error.
func Set(s *domain.Settings, key, value string) error {
	switch key {
	case "providers":
		var ids []domain.ProviderID
		for _, p := range strings.Split(value, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			id, err := domain.ParseProviderID(p)
			if err != nil {
				return err
			}
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return errors.New("at least one provider must be enabled")
		}
		s.Providers = ids
	case "chunkSize":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return errors.Errorf("invalid chunk size %q", value)
		}
		s.ChapterChunkSize = n
	case "markWhenFinished", "markWhenSwitching":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "invalid value for %s", key)
		}
		if key == "markWhenFinished" {
			s.MarkChapterAsReadWhenFinished = b
		} else {
			s.MarkChapterAsReadWhenSwitching = b
		}
	case "filter":
		f, err := library.ParseFilter(value)
		if err != nil {
			return err
		}
		s.LibraryFilter = string(f)
	case "sort":
		m, err := library.ParseSortingMode(value)
		if err != nil {
			return err
		}
		s.LibrarySortingMode = string(m)
	default:
		return errors.Errorf("unknown setting %q", key)
	}

	return nil
}
