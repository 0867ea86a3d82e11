package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcstudio/studioweb"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.db")
	store, err := studioweb.NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ada", "Grace"} {
		_, err := store.SaveSubmission(context.Background(), studioweb.ContactSubmission{
			FirstName: name,
			LastName:  "Tester",
			Email:     name + "@example.com",
			Message:   "Hello from " + name,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
	return path
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"site", "content-server", "submissions", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "studioweb dev\n", out)
}

func TestSubmissionsListTable(t *testing.T) {
	db := seedStore(t)

	out, err := run(t, "submissions", "list", "--database", db)
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Grace Tester")
	assert.Contains(t, out, "Ada@example.com")
}

func TestSubmissionsListJSON(t *testing.T) {
	db := seedStore(t)

	out, err := run(t, "submissions", "list", "--database", db, "-o", "json", "-n", "1")
	require.NoError(t, err)

	var got []submissionView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Grace Tester", got[0].Name)
	assert.Equal(t, "2024-06-01T10:00:00Z", got[0].CreatedAt)
}

func TestSubmissionsShowAndDelete(t *testing.T) {
	db := seedStore(t)

	out, err := run(t, "submissions", "show", "1", "--database", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Tester")
	assert.Contains(t, out, "Hello from Ada")

	out, err = run(t, "submissions", "delete", "1", "--database", db)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted submission 1")

	_, err = run(t, "submissions", "show", "1", "--database", db)
	assert.ErrorIs(t, err, studioweb.ErrNotFound)

	_, err = run(t, "submissions", "show", "abc", "--database", db)
	assert.Error(t, err)
}

func TestSubmissionsUnknownFormat(t *testing.T) {
	db := seedStore(t)
	_, err := run(t, "submissions", "list", "--database", db, "-o", "xml")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a b", truncate("a\n  b", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
