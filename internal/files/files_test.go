package files

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCover(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 12))
	for x := 0; x < 8; x++ {
		for y := 0; y < 12; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 20), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func testBook(t *testing.T) Book {
	cover, err := NormalizeImage(testCover(t))
	require.NoError(t, err)

	return Book{
		Title:   "Martial Peak",
		Authors: []string{"Momo"},
		Summary: []string{"The journey is lonely."},
		Cover:   cover,
		Chapters: []BookChapter{
			{Heading: "Martial Peak Ch. 001 - Sweeper", Paragraphs: []string{"Paragraph one.", "Paragraph <two> & more."}},
			{Heading: "Martial Peak Ch. 002", Paragraphs: []string{"Café au lait."}},
		},
	}
}

func TestNormalizeImage(t *testing.T) {
	out, err := NormalizeImage(testCover(t))
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Width)

	_, err = NormalizeImage([]byte("not an image"))
	assert.Error(t, err)
}

func TestCreatePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "Martial Peak.pdf")

	require.NoError(t, CreatePDF(testBook(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestCreateEPUB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Martial Peak.epub")

	require.NoError(t, CreateEPUB(testBook(t), path))

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	var all strings.Builder
	hasCover := false
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "cover.png") {
			hasCover = true
		}
		if !strings.HasSuffix(f.Name, ".xhtml") {
			continue
		}

		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		all.Write(data)
	}

	assert.True(t, hasCover)
	assert.Contains(t, all.String(), "Paragraph one.")
	assert.Contains(t, all.String(), "Paragraph &lt;two&gt; &amp; more.")
}

func TestJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.data")

	var v map[string]int
	found, err := ReadJSON(path, &v)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, WriteJSON(path, map[string]int{"a": 1}))

	found, err = ReadJSON(path, &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]int{"a": 1}, v)

	require.NoError(t, IsValidLocation(filepath.Dir(path)))
	assert.Error(t, IsValidLocation(filepath.Join(path, "missing")))
}
