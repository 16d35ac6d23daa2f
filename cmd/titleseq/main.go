// titleseq inspects and edits attract-mode title sequences, stored either
// as a directory of files or as a single .parkseq archive.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var (
		debug   bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:           "titleseq",
		Short:         "Inspect and edit attract-mode title sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(debug)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newListCmd(&noColor),
		newShowCmd(&noColor),
		newCheckCmd(&noColor),
		newFmtCmd(),
		newParkCmd(),
		newWatchCmd(&noColor),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configureLogging mirrors TITLESEQ_DEBUG: the flag or the environment
// variable switches the text handler to debug level.
func configureLogging(debug bool) {
	level := slog.LevelInfo
	if debug || os.Getenv("TITLESEQ_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove timestamp for cleaner output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)
}
