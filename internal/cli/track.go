package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"promptmark/internal/adapter/transcript"
	"promptmark/internal/domain"
	"promptmark/internal/usecase"
)

var (
	trackFile   string
	trackURL    string
	trackTitle  string
	trackRole   string
	trackID     string
	trackDryRun bool
)

var trackCmd = &cobra.Command{
	Use:   "track [text...]",
	Short: "Record a chat transcript or a single message",
	Long: `Record messages of an AI chat page. Each capture replaces the chat's
stored messages, so tracking the same transcript twice updates it instead
of duplicating it, and a regenerated reply replaces the old one.

Examples:
  promptmark track -f chat.yaml
  promptmark track --url https://chat.openai.com/c/abc --title "Go generics - ChatGPT" \
      --role user "How do generics work in Go?"`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().StringVarP(&trackFile, "file", "f", "", "transcript file (.yaml, .yml or .json)")
	trackCmd.Flags().StringVar(&trackURL, "url", "", "chat page URL")
	trackCmd.Flags().StringVar(&trackTitle, "title", "", "chat page title")
	trackCmd.Flags().StringVar(&trackRole, "role", "user", "message role (user, assistant, system)")
	trackCmd.Flags().StringVar(&trackID, "id", "", "message ID (default derived from text)")
	trackCmd.Flags().BoolVar(&trackDryRun, "dry-run", false, "do not write to the chat store")
	trackCmd.MarkFlagsMutuallyExclusive("file", "url")
}

func runTrack(cmd *cobra.Command, args []string) error {
	t, err := trackTranscript(args)
	if err != nil {
		return err
	}

	st, err := openStore(trackDryRun)
	if err != nil {
		return err
	}
	defer st.Close()

	tracker := usecase.NewTrackUseCase(st, siteRegistry(), GetLogger())
	result, err := tracker.Track(t)
	if err != nil {
		return fmt.Errorf("track failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if result.Skipped {
		fmt.Fprintf(out, "No messages to track for chat %s.\n", result.ChatID)
		return nil
	}
	fmt.Fprintf(out, "Tracked chat %s: %d new, %d updated\n", result.ChatID, result.Added, result.Updated)
	if trackDryRun {
		fmt.Fprintln(out, "(dry run, nothing saved)")
	}
	return nil
}

func trackTranscript(args []string) (domain.Transcript, error) {
	if trackFile != "" {
		if len(args) > 0 {
			return domain.Transcript{}, fmt.Errorf("message text cannot be combined with --file")
		}
		return transcript.NewLoader().Load(trackFile)
	}

	if trackURL == "" {
		return domain.Transcript{}, fmt.Errorf("either --file or --url is required")
	}
	t := domain.Transcript{URL: trackURL, Title: trackTitle}
	if text := strings.TrimSpace(strings.Join(args, " ")); text != "" {
		t.Messages = []domain.RawMessage{{ID: trackID, Role: trackRole, Text: text}}
	}
	return t, nil
}
