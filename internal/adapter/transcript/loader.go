package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"promptmark/internal/domain"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks a transcript format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported transcript extension: %s", filepath.Ext(path))
	}
}

// Loader reads chat transcripts from disk.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Load(path string) (domain.Transcript, error) {
	format, err := FormatFor(path)
	if err != nil {
		return domain.Transcript{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Transcript{}, err
	}
	t, err := Parse(data, format)
	if err != nil {
		return domain.Transcript{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a transcript and checks it names a chat URL.
func Parse(data []byte, format Format) (domain.Transcript, error) {
	var t domain.Transcript
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &t)
	case FormatJSON:
		err = json.Unmarshal(data, &t)
	default:
		return t, fmt.Errorf("unknown transcript format %q", format)
	}
	if err != nil {
		return domain.Transcript{}, fmt.Errorf("failed to decode transcript: %w", err)
	}
	if strings.TrimSpace(t.URL) == "" {
		return domain.Transcript{}, fmt.Errorf("transcript has no url")
	}
	return t, nil
}
