package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wollok-core",
	Short: "Inspection CLI for the Wollok core evaluator",
	Long: `wollok-core exposes the staged AST, name-resolution, and runtime
evaluation state that sit at the center of a Wollok-like interpreter:

  - a Raw/Filled/Linked AST and its tree algorithms
  - hierarchy linearisation, FQN computation, and method/constructor lookup
  - instance interning and frame-stack evaluation state

This command builds a small fixed environment in memory and reports
what the core computes over it, without a parser or bytecode dispatcher
attached.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
