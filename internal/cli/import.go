package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"promptmark/internal/adapter/fs"
	"promptmark/internal/adapter/transcript"
	"promptmark/internal/usecase"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Track every transcript file in a directory",
	Long: `Track every chat transcript found under a directory. Files are selected
with the import.includes / import.excludes patterns of the config.

Examples:
  promptmark import ./exports
  promptmark import --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "do not write to the chat store")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	st, err := openStore(importDryRun)
	if err != nil {
		return err
	}
	defer st.Close()

	walker := fs.NewWalker(cfg.Import.Includes, cfg.Import.Excludes)
	tracker := usecase.NewTrackUseCase(st, siteRegistry(), GetLogger())
	importUC := usecase.NewImportUseCase(walker, transcript.NewLoader(), tracker)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex

	progressCallback := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Importing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
		}
		bar.Set(processed)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning %s...\n", path)
	result, err := importUC.Import(path, progressCallback)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(out, "\nImport complete:\n")
	fmt.Fprintf(out, "  Files imported: %d\n", result.FilesImported)
	fmt.Fprintf(out, "  Files skipped:  %d (no messages)\n", result.FilesSkipped)
	fmt.Fprintf(out, "  Messages added: %d\n", result.MessagesAdded)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
			GetLogger().Warnf("import: %s", e)
		}
	}

	if importDryRun {
		fmt.Fprintln(out, "\n(dry run, nothing saved)")
	}
	return nil
}
