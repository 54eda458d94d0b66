package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const infoFixture = `<html><body>
<div class="item"><span title="Genre">Genre:</span><div class="right">
	Action,
	Fantasy</div></div>
<div class="item"><span title="Author">Author:</span><div class="right">Jane Doe</div></div>
<div class="desc"><p>First line<br>Second &amp; line<br/><br /><strong>Third</strong></p></div>
<ul><li>  one  </li><li></li><li>two</li></ul>
</body></html>`

func TestLabelValue(t *testing.T) {
	doc, err := Parse(infoFixture)
	require.NoError(t, err)

	genre, ok := LabelValue(doc, "Genre")
	require.True(t, ok)
	assert.Equal(t, []string{"Action", "Fantasy"}, SplitList(genre, ","))

	author, ok := LabelValue(doc, "Author")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", author)

	_, ok = LabelValue(doc, "Status")
	assert.False(t, ok)
}

func TestLines(t *testing.T) {
	doc, err := Parse(infoFixture)
	require.NoError(t, err)

	assert.Equal(t, []string{"First line", "Second & line", "Third"}, Lines(doc.Find("div.desc > p")))
}

func TestTexts(t *testing.T) {
	doc, err := Parse(infoFixture)
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, Texts(doc.Find("li")))
}

func TestDecode(t *testing.T) {
	var v struct {
		Items []string `json:"items"`
	}
	require.NoError(t, Decode(`{"items":["a"]}`, &v))
	assert.Equal(t, []string{"a"}, v.Items)

	assert.Error(t, Decode(`{`, &v))
}
