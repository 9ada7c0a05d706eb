// Package cli provides the command-line interface for ubiquitous-gen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/ubiquitous-gen/internal/logging"
)

// NewRootCommand builds the ubiquitous-gen command tree.
func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "ubiquitous-gen",
		Short: "Build a ubiquitous language glossary from doc comments",
		Long: `Scans source code for classes whose doc comments carry @ubiquitous,
@context and @description tags and renders them as an HTML glossary table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logging.SetLogLevel(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
