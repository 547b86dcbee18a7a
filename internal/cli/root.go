package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"promptmark/config"
	"promptmark/internal/adapter/memstore"
	"promptmark/internal/adapter/site"
	"promptmark/internal/adapter/store"
	"promptmark/internal/logging"
	"promptmark/internal/port"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "promptmark",
	Short: "Bookmark AI chat conversations and outline them by keyword",
	Long: `promptmark keeps a local index of AI chat conversations (ChatGPT, Gemini, ...)
and outlines each message by its first few non-stopword keywords.

Example usage:
  promptmark extract "the quick brown fox"    # Print keywords of a prompt
  promptmark track -f chat.yaml               # Record a chat transcript
  promptmark chats -s generics                # Search bookmarked chats
  promptmark outline <chat-id>                # Keyword outline of a chat`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logger != nil {
			logger.Close()
			logger = nil
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Close()
			logger = nil
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Errorf("%v", err)
			logger.Close()
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./promptmark.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// GetLogger returns the file logger once the chat store has been opened,
// and a discarding logger before that.
func GetLogger() *logging.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}

// openLogger starts the rotating file log under the state directory.
func openLogger() error {
	if logger != nil {
		return nil
	}
	l, err := logging.NewFile(logging.Options{
		Path:       cfg.LogPath(rootDir),
		Level:      cfg.Logging.Level,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	logger = l
	return nil
}

// openStore opens the chat database, migrating its schema when needed.
// A dry run gets an empty in-memory store instead and leaves the state
// directory untouched.
func openStore(dryRun bool) (port.ChatStore, error) {
	if dryRun {
		return memstore.NewMemoryStore(), nil
	}

	if err := config.EnsureStateDir(rootDir); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", config.StateDirName, err)
	}
	if err := openLogger(); err != nil {
		return nil, err
	}
	logger.Debugf("opening chat store, root %s", rootDir)

	dbPath := GetConfig().DBPath(rootDir)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open chat store: %w", err)
	}

	migration, err := st.CheckMigration()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check migration: %w", err)
	}
	if migration.Incompatible {
		st.Close()
		return nil, fmt.Errorf("cannot open %s: %s", dbPath, migration.Reason)
	}
	if migration.NeedsMigration {
		GetLogger().Infof("running schema migration: %s", migration.Reason)
		if err := st.Migrate(); err != nil {
			st.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return st, nil
}

func siteRegistry() *site.Registry {
	return site.FromConfig(GetConfig().Sites)
}
