package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"promptmark/internal/adapter/fs"
	"promptmark/internal/adapter/transcript"
)

func TestImport(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.yaml": "url: https://chat.openai.com/c/a\nmessages:\n  - role: user\n    text: hello\n",
		"b.json": `{"url":"https://gemini.google.com/app?chatId=b","messages":[{"role":"model","text":"hi"},{"role":"user","text":"bye"}]}`,
		"c.yaml": "url: https://chat.openai.com/c/c\n",
		"d.yaml": "url: https://example.com/c/d\nmessages:\n  - text: x\n",
		"e.json": "{",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(body), 0644))
	}

	tracker, st := newTracker(t)
	uc := NewImportUseCase(fs.NewWalker([]string{"*.yaml", "*.json"}, nil), transcript.NewLoader(), tracker)

	var calls, lastTotal int
	result, err := uc.Import(root, func(processed, total int, _ string) {
		calls++
		lastTotal = total
		assert.Equal(t, calls, processed)
	})
	require.NoError(t, err)

	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, lastTotal)
	assert.Equal(t, 2, result.FilesImported)
	assert.Equal(t, 1, result.FilesSkipped)
	assert.Equal(t, 3, result.MessagesAdded)
	assert.Equal(t, []string{"a", "b"}, result.ChatIDs)
	assert.Len(t, result.Errors, 2)

	chats, err := st.ListChats()
	require.NoError(t, err)
	assert.Len(t, chats, 2)
}

func TestImport_MissingRoot(t *testing.T) {
	tracker, _ := newTracker(t)
	uc := NewImportUseCase(fs.NewWalker(nil, nil), transcript.NewLoader(), tracker)

	_, err := uc.Import(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}
