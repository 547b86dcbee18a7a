package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAML(t *testing.T) {
	data := []byte(`
url: https://chat.openai.com/c/abc
title: Go generics - ChatGPT
messages:
  - role: user
    text: How do generics work in Go?
  - id: fixed-id
    role: assistant
    text: Type parameters let functions work over many types.
    color: "rgb(247, 247, 248)"
`)

	tr, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "https://chat.openai.com/c/abc", tr.URL)
	require.Len(t, tr.Messages, 2)
	assert.Equal(t, "user", tr.Messages[0].Role)
	assert.Equal(t, "fixed-id", tr.Messages[1].ID)
	assert.Equal(t, "rgb(247, 247, 248)", tr.Messages[1].Color)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"url":"https://gemini.google.com/app?chatId=1","messages":[{"role":"model","text":"hi"}]}`)

	tr, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, tr.Messages, 1)
	assert.Equal(t, "model", tr.Messages[0].Role)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`title: no url`), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte(`{`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte(`url: x`), Format("toml"))
	assert.Error(t, err)
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.yml")
	require.NoError(t, os.WriteFile(path, []byte("url: https://chat.openai.com/c/1\n"), 0644))

	tr, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://chat.openai.com/c/1", tr.URL)

	_, err = NewLoader().Load(filepath.Join(dir, "chat.txt"))
	assert.Error(t, err)
}
