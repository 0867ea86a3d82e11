package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentMetadata(t *testing.T) {
	t.Parallel()

	var nilDoc *Document
	assert.Equal(t, Metadata{Title: "Page"}, nilDoc.Metadata())
	assert.Nil(t, nilDoc.Widgets())

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"data":{
		"seo":{"metaTitle":"About","metaDescription":"Who we are","metaImage":{"url":{"url":"https://cdn.example.com/og.png"}}},
		"widgets":[{"widget_type":"InnerBanner"}]
	}}`), &doc))

	assert.Equal(t, Metadata{
		Title:       "About",
		Description: "Who we are",
		Image:       "https://cdn.example.com/og.png",
	}, doc.Metadata())
	require.Len(t, doc.Widgets(), 1)
	assert.Equal(t, "InnerBanner", doc.Widgets()[0].Type)
}

func TestDocumentMetadataDefaults(t *testing.T) {
	t.Parallel()

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"seo":{"metaDescription":"d"}}}`), &doc))
	m := doc.Metadata()
	assert.Equal(t, "Page", m.Title)
	assert.Equal(t, "d", m.Description)
	assert.Empty(t, m.Image)

	doc = Document{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &doc))
	assert.Equal(t, "Page", doc.Metadata().Title)
	assert.Empty(t, doc.Widgets())
}
