package usecase

import (
	"fmt"

	"promptmark/internal/port"
)

// ProgressFunc is called after each transcript file is processed.
type ProgressFunc func(processed, total int, currentFile string)

// ImportUseCase tracks every transcript file found under a directory.
type ImportUseCase struct {
	walker  port.FileWalker
	loader  port.TranscriptLoader
	tracker *TrackUseCase
}

// NewImportUseCase creates a new import use case.
func NewImportUseCase(walker port.FileWalker, loader port.TranscriptLoader, tracker *TrackUseCase) *ImportUseCase {
	return &ImportUseCase{
		walker:  walker,
		loader:  loader,
		tracker: tracker,
	}
}

// ImportResult contains the results of an import operation.
type ImportResult struct {
	FilesImported int
	FilesSkipped  int
	MessagesAdded int
	ChatIDs       []string
	Errors        []string
}

// Import walks root and tracks each transcript. Per-file failures are
// collected in the result rather than aborting the import.
func (u *ImportUseCase) Import(root string, progress ProgressFunc) (*ImportResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	result := &ImportResult{}
	for i, file := range files {
		if err := u.importFile(file.Path, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Path, err))
		}
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	return result, nil
}

func (u *ImportUseCase) importFile(path string, result *ImportResult) error {
	t, err := u.loader.Load(path)
	if err != nil {
		return err
	}
	tr, err := u.tracker.Track(t)
	if err != nil {
		return err
	}
	if tr.Skipped {
		result.FilesSkipped++
		return nil
	}
	result.FilesImported++
	result.MessagesAdded += tr.Added
	result.ChatIDs = append(result.ChatIDs, tr.ChatID)
	return nil
}
