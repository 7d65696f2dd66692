// Package cli implements the command-line interface using cobra.
// Commands delegate to driving port interfaces; wiring of concrete
// adapters happens in buildIngestor at command run time.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/GaureshArt/docsy/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "docsy",
	Short: "Ingest GitHub documentation into retrieval-ready chunks",
	Long: `docsy walks a GitHub repository, selects its documentation files,
ranks them by importance, normalises the content and splits it into
overlapping chunks suitable for embedding and retrieval.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
