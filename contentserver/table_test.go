package contentserver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcstudio/studioweb/content"
)

func TestParseJSONCompacts(t *testing.T) {
	table, err := ParseJSON([]byte("{\n  \"about\": {\n    \"title\": \"About Us\"\n  }\n}"))
	require.NoError(t, err)

	doc, ok := table.Lookup("about")
	require.True(t, ok)
	assert.Equal(t, `{"title":"About Us"}`, string(doc))

	_, ok = table.Lookup("missing")
	assert.False(t, ok)
}

func TestParseJSONRejectsNonObject(t *testing.T) {
	_, err := ParseJSON([]byte(`["about"]`))
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	src := `
about:
  title: About Us
works/case-1:
  data:
    widgets:
      - widget_type: WorkDetailBanner
        data:
          title: Case One
`
	table, err := ParseYAML([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "works/case-1"}, table.Slugs())

	doc, _ := table.Lookup("about")
	assert.JSONEq(t, `{"title":"About Us"}`, string(doc))

	var d content.Document
	raw, _ := table.Lookup("works/case-1")
	require.NoError(t, json.Unmarshal(raw, &d))
	require.Len(t, d.Widgets(), 1)
	assert.Equal(t, "WorkDetailBanner", d.Widgets()[0].Type)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "db.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"faq": {"title": "FAQ"}}`), 0o644))
	table, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"faq"}, table.Slugs())

	yamlPath := filepath.Join(dir, "db.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("faq:\n  title: FAQ\n"), 0o644))
	table, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"faq"}, table.Slugs())

	_, err = LoadFile(filepath.Join(dir, "db.toml"))
	assert.Error(t, err)
}

func TestDefaultTableDecodesAsDocuments(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	for _, slug := range []string{"home", "about", "services", "works", "works/case-1", "blogs", "contact", "faq"} {
		raw, ok := table.Lookup(slug)
		require.True(t, ok, slug)
		var d content.Document
		require.NoError(t, json.Unmarshal(raw, &d), slug)
		assert.NotEmpty(t, d.Widgets(), slug)
	}
}

func TestServerConfigDefaults(t *testing.T) {
	t.Setenv("CONTENT_SERVER_ADDR", "")
	t.Setenv("CONTENT_DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)

	table, err := cfg.LoadTable()
	require.NoError(t, err)
	assert.Contains(t, table.Slugs(), "home")
}
