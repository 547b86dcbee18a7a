package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command in dir and returns its stdout.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--dir", dir}, args...))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { extractJSON = false })

	out := run(t, dir, "extract", "Data", "is", "the", "new", "oil", "for", "modern", "enterprises")
	assert.Equal(t, "Data\nnew\noil\n", out)

	out = run(t, dir, "extract", "--json", "the a an of")
	var keywords []string
	require.NoError(t, json.Unmarshal([]byte(out), &keywords))
	assert.Empty(t, keywords)
	assert.NotNil(t, keywords)

	_, err := os.Stat(filepath.Join(dir, ".promptmark"))
	assert.True(t, os.IsNotExist(err), "extract must not create the state directory")
}

func TestTrackAndListCommands(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		trackURL, trackTitle, trackRole = "", "", "user"
		chatsJSON = false
		outlineJSON = false
	})

	out := run(t, dir, "track",
		"--url", "https://chat.openai.com/c/abc",
		"--title", "Go generics - ChatGPT",
		"How do generics work in Go?")
	assert.Contains(t, out, "Tracked chat abc: 1 new, 0 updated")

	out = run(t, dir, "chats", "--json")
	var bookmarks []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &bookmarks))
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "Go generics", bookmarks[0]["title"])

	out = run(t, dir, "outline", "--json", "abc")
	var entries []struct {
		Keywords []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"generics", "work", "Go"}, entries[0].Keywords)

	out = run(t, dir, "delete", "abc")
	assert.Contains(t, out, "Deleted abc")
}

func TestClearCommand(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		trackURL, trackTitle, trackRole = "", "", "user"
		chatsJSON = false
		clearYes = false
	})

	run(t, dir, "track", "--url", "https://chat.openai.com/c/one", "first chat")
	run(t, dir, "track", "--url", "https://chatgpt.com/g/g-abc123-helper/c/two", "second chat")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--dir", dir, "clear"})
	require.Error(t, rootCmd.Execute())

	out := run(t, dir, "clear", "--yes")
	assert.Contains(t, out, "Cleared all chats")

	out = run(t, dir, "chats", "--json")
	var bookmarks []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &bookmarks))
	assert.Empty(t, bookmarks)

	_, err := os.Stat(filepath.Join(dir, ".promptmark", "promptmark.log"))
	assert.NoError(t, err)
}
