package gdrive

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsDocument_TextFlattensParagraphs(t *testing.T) {
	raw := `{
		"documentId": "doc1",
		"title": "Notes",
		"body": {
			"content": [
				{"paragraph": {"elements": [{"textRun": {"content": "Hello "}}, {"textRun": {"content": "world\n"}}]}},
				{"paragraph": {"elements": [{"textRun": {"content": "Second line\n"}}]}}
			]
		}
	}`

	var doc docsDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "doc1", doc.DocumentID)
	assert.Equal(t, "Hello world\nSecond line\n", doc.text())
}

func TestDocsDocument_TextWalksTables(t *testing.T) {
	raw := `{
		"body": {
			"content": [
				{"table": {"tableRows": [
					{"tableCells": [
						{"content": [{"paragraph": {"elements": [{"textRun": {"content": "cell1\n"}}]}}]},
						{"content": [{"paragraph": {"elements": [{"textRun": {"content": "cell2\n"}}]}}]}
					]}
				]}}
			]
		}
	}`

	var doc docsDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "cell1\ncell2\n", doc.text())
}

func TestExtractText_HTMLStripsMarkup(t *testing.T) {
	html := `<html><head><style>body { color: red }</style></head>
	<body><h1>Title</h1><script>alert(1)</script><p>First paragraph</p></body></html>`

	text, err := ExtractText("text/html", []byte(html))
	require.NoError(t, err)

	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "First paragraph")
	assert.NotContains(t, text, "alert(1)")
	assert.NotContains(t, text, "color: red")
}

func TestExtractText_JSONIndented(t *testing.T) {
	text, err := ExtractText("application/json", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", text)
}

func TestExtractText_PlainPassthrough(t *testing.T) {
	text, err := ExtractText("text/plain", []byte("as is"))
	require.NoError(t, err)
	assert.Equal(t, "as is", text)
}
