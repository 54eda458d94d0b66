package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNovel(read ...string) Novel {
	n := NewNovel("/novel/a", FreeWebNovel, time.Unix(0, 0))
	for i, p := range []string{"/a/1", "/a/2", "/a/3", "/a/4"} {
		n.Chapters = append(n.Chapters, Chapter{Path: p, Number: i + 1, Provider: FreeWebNovel})
	}
	n.ChaptersRead.Add(read...)

	return n
}

func TestNovel_LastChapterReadNumber(t *testing.T) {
	assert.Equal(t, -1, testNovel().LastChapterReadNumber())
	assert.Equal(t, 2, testNovel("/a/1", "/a/2", "/a/4").LastChapterReadNumber())
	assert.Equal(t, -1, testNovel("/a/2").LastChapterReadNumber())
	assert.Equal(t, 4, testNovel("/a/1", "/a/2", "/a/3", "/a/4").LastChapterReadNumber())
	assert.Equal(t, -1, NewNovel("/empty", LibRead, time.Now()).LastChapterNumber())
}

func TestNovel_ChapterLookups(t *testing.T) {
	n := testNovel("/a/3", "/stale")

	c, idx, ok := n.ChapterByNumber(3)
	require.True(t, ok)
	assert.Equal(t, "/a/3", c.Path)
	assert.Equal(t, 2, idx)

	_, _, ok = n.ChapterByNumber(9)
	assert.False(t, ok)

	_, idx, ok = n.Chapter("/a/4")
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	assert.Equal(t, 3, n.UnreadCount())
	assert.True(t, n.IsRead(c))
}

func TestNovel_Clone(t *testing.T) {
	n := testNovel("/a/1")
	c := n.Clone()

	c.Chapters[0].Title = "changed"
	c.ChaptersRead.Add("/a/2")

	assert.Empty(t, n.Chapters[0].Title)
	assert.False(t, n.ChaptersRead.Contains("/a/2"))
	assert.True(t, n.Equal(c))
}

func TestChunk(t *testing.T) {
	chunks := Chunk([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)

	chunks[0] = append(chunks[0], 9)
	assert.Equal(t, []int{3, 4}, chunks[1])

	assert.Nil(t, Chunk([]int{}, 3))
	assert.Len(t, testNovel().Chunks(0), 1)
}

func TestPathSet_JSON(t *testing.T) {
	data, err := json.Marshal(NewPathSet("/b", "/a"))
	require.NoError(t, err)
	assert.JSONEq(t, `["/a","/b"]`, string(data))

	var s PathSet
	require.NoError(t, json.Unmarshal([]byte(`["/x","/x","/y"]`), &s))
	assert.Equal(t, []string{"/x", "/y"}, s.Sorted())
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("Completed")
	assert.True(t, ok)
	assert.Equal(t, CategoryCompleted, c)
	assert.Equal(t, "Completed", c.Name())

	_, ok = ParseCategory("dropped")
	assert.False(t, ok)
}
