package contentserver

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/db.json
var defaultTable []byte

// Table maps a slug to its pre-serialized JSON document. It is built once
// and only read afterwards, so it needs no locking.
type Table map[string]json.RawMessage

// Lookup returns the document stored under slug.
func (t Table) Lookup(slug string) (json.RawMessage, bool) {
	doc, ok := t[slug]
	return doc, ok
}

// Slugs returns every key in lexical order.
func (t Table) Slugs() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Default returns the table shipped with the binary.
func Default() (Table, error) {
	return ParseJSON(defaultTable)
}

// LoadFile reads a table from a .json, .yaml or .yml file.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("contentserver: read table: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("contentserver: unsupported table format %q", filepath.Ext(path))
	}
}

// ParseJSON decodes a top-level JSON object into a Table. Each value is
// compacted so it is served byte-for-byte as canonical JSON.
func ParseJSON(data []byte) (Table, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("contentserver: parse json table: %w", err)
	}
	t := make(Table, len(raw))
	for slug, doc := range raw {
		var buf bytes.Buffer
		if err := json.Compact(&buf, doc); err != nil {
			return nil, fmt.Errorf("contentserver: compact %q: %w", slug, err)
		}
		t[slug] = buf.Bytes()
	}
	return t, nil
}

// ParseYAML decodes a top-level YAML mapping into a Table, converting every
// value to JSON.
func ParseYAML(data []byte) (Table, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("contentserver: parse yaml table: %w", err)
	}
	t := make(Table, len(raw))
	for slug, v := range raw {
		doc, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("contentserver: encode %q: %w", slug, err)
		}
		t[slug] = doc
	}
	return t, nil
}
