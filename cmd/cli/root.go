package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cloudnest",
		Short: "CloudNest demo server CLI",
		Long: `CloudNest is a demonstration cloud file-storage service. It serves the
dashboard, trash, and pricing surfaces from in-memory demo data; no real
storage, authentication, or payment backend exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("api-url", "", "Override API URL for client commands")

	rootCmd.AddCommand(NewStartCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewResetCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
