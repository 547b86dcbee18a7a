package port

import "promptmark/internal/domain"

type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path    string
	ModTime int64
	Size    int64
}

type TranscriptLoader interface {
	Load(path string) (domain.Transcript, error)
}
