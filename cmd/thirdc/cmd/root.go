// Package cmd implements the thirdc command-line surface: a thin cobra
// wrapper over internal/compiler that turns any fatal compiler error into a
// single diagnostic line and exit code 2.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lassik/thirdc/internal/logio"
)

// Version is overridden by build flags, following go-dws's cmd package.
var Version = "0.1.0-dev"

// log is shared by every subcommand: each RunE reports its own error
// through log.ErrorIf rather than returning it to cobra, so Execute can
// derive the exit code (2 on any fatal error, 0 otherwise) from a single
// place instead of re-deriving it from cobra's generic error return.
var log logio.Logger

var rootCmd = &cobra.Command{
	Use:           "thirdc",
	Short:         "Compile a Forth dialect to C",
	Long:          `thirdc reads a Forth-like source file and emits C source text that links against a small runtime primitive layer.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	log.SetOutput(os.Stderr)
	defer log.Close()
	if err := rootCmd.Execute(); err != nil {
		log.ErrorIf(err)
	}
	return log.ExitCode()
}
