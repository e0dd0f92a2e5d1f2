package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudnest/cloudnest/pkg/clients/cloudnest"

	"github.com/spf13/cobra"
)

func NewResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reseed a running server with the demo catalog",
		Long:  `Ask a running CloudNest server to replace its collections with the demo catalog. Unlike read operations this has no fallback: reseeding needs a live server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiURL, _ := cmd.Flags().GetString("api-url")
			return runReset(apiURL)
		},
	}

	return cmd
}

func runReset(apiURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	options := []cloudnest.ClientOption{cloudnest.WithTimeout(3 * time.Second)}
	if apiURL != "" {
		options = append(options, cloudnest.WithBaseURL(apiURL))
	}

	client := cloudnest.NewClient(options...)

	if err := client.Reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	fmt.Println("✅ Demo data reseeded")
	return nil
}
