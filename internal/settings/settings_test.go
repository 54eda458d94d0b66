package settings

import (
	"os"
	"path/filepath"
	"testing"

	"novelarr/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	t.Run("defaults when missing", func(t *testing.T) {
		s := Load(path, zerolog.Nop())
		assert.Equal(t, domain.DefaultSettings(), s)
		assert.Len(t, s.Providers, 4)
		assert.Equal(t, 100, s.ChapterChunkSize)
		assert.True(t, s.MarkChapterAsReadWhenFinished)
	})

	t.Run("partial document keeps defaults", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`{"novelProviders":["libRead","bogus"],"novelChapterChunkSize":0}`), 0o600))

		s := Load(path, zerolog.Nop())
		assert.Equal(t, []domain.ProviderID{domain.LibRead}, s.Providers)
		assert.Equal(t, 100, s.ChapterChunkSize)
		assert.True(t, s.MarkChapterAsReadWhenSwitching)
		assert.True(t, s.ProviderEnabled(domain.LibRead))
		assert.False(t, s.ProviderEnabled(domain.MTLNovel))
	})

	t.Run("corrupt document", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte(`[`), 0o600))
		assert.Equal(t, domain.DefaultSettings(), Load(path, zerolog.Nop()))
	})

	t.Run("round trip", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.ChapterChunkSize = 25
		s.MarkChapterAsReadWhenFinished = false

		require.NoError(t, Save(path, s))
		assert.Equal(t, s, Load(path, zerolog.Nop()))
	})
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, s domain.Settings)
		wantErr bool
	}{
		{
			name:  "providers are deduplicated",
			key:   "providers",
			value: "scribbleHub, libRead,scribbleHub",
			check: func(t *testing.T, s domain.Settings) {
				assert.Equal(t, []domain.ProviderID{domain.ScribbleHub, domain.LibRead}, s.Providers)
			},
		},
		{name: "unknown provider", key: "providers", value: "royalRoad", wantErr: true},
		{name: "no providers", key: "providers", value: " , ", wantErr: true},
		{
			name:  "chunk size",
			key:   "chunkSize",
			value: "25",
			check: func(t *testing.T, s domain.Settings) {
				assert.Equal(t, 25, s.ChapterChunkSize)
			},
		},
		{name: "zero chunk size", key: "chunkSize", value: "0", wantErr: true},
		{
			name:  "mark when switching",
			key:   "markWhenSwitching",
			value: "false",
			check: func(t *testing.T, s domain.Settings) {
				assert.False(t, s.MarkChapterAsReadWhenSwitching)
				assert.True(t, s.MarkChapterAsReadWhenFinished)
			},
		},
		{
			name:  "filter",
			key:   "filter",
			value: "unreadchapters",
			check: func(t *testing.T, s domain.Settings) {
				assert.Equal(t, "unreadChapters", s.LibraryFilter)
			},
		},
		{name: "bad sort", key: "sort", value: "rating", wantErr: true},
		{name: "unknown key", key: "theme", value: "dark", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultSettings()

			err := Set(&s, tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, domain.DefaultSettings(), s)
				return
			}

			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestGet(t *testing.T) {
	s := domain.DefaultSettings()

	for _, key := range Keys {
		_, err := Get(s, key)
		assert.NoError(t, err, key)
	}

	v, err := Get(s, "providers")
	require.NoError(t, err)
	assert.Equal(t, "freeWebNovel,scribbleHub,mtlNovel,libRead", v)

	_, err = Get(s, "theme")
	assert.Error(t, err)
}
