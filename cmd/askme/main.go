package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ahmednasr/askme/internal/config"
)

// version is set at build time with -ldflags "-X main.version=…".
var version = "dev"

var (
	// Global flags
	serverURL string
	timeout   time.Duration
	logFile   string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "askme",
	Short: "Ask me anything, from the terminal",
	Long: `askme talks to the answer service and reveals each reply as it is typed out.

Run without arguments to start the interactive chat screen.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(logFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runChat,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive chat screen",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the answer",
	Example: `  askme ask "What's your favorite food?"
  askme ask --typewriter --format plain What do you do for fun`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the askme version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "askme %s\n", version)
	},
}

func init() {
	defaults, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "askme: %v\n", err)
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaults.ServerURL, "answer service base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaults.Timeout, "overall request timeout")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaults.LogFile, "write logs to this file")

	askCmd.Flags().StringVar(&askFormat, "format", "terminal", "output format: terminal, html or plain")
	askCmd.Flags().BoolVar(&askTypewriter, "typewriter", false, "reveal the answer progressively")

	rootCmd.AddCommand(chatCmd, askCmd, versionCmd)
}

// newLogger writes JSON logs to path. Without a path logging is disabled,
// since the chat screen owns the terminal.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
