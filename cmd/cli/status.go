package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudnest/cloudnest/pkg/clients/cloudnest"

	"github.com/spf13/cobra"
)

func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the collections a running server reports",
		Long:  `Query a CloudNest server for its file, folder, and trash collections. When the server is unreachable the canned demo payloads are shown instead, tagged as fallback data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiURL, _ := cmd.Flags().GetString("api-url")
			return runStatus(apiURL)
		},
	}

	return cmd
}

func runStatus(apiURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	options := []cloudnest.ClientOption{cloudnest.WithTimeout(3 * time.Second)}
	if apiURL != "" {
		options = append(options, cloudnest.WithBaseURL(apiURL))
	}

	client := cloudnest.NewClient(options...)
	resolver := cloudnest.NewResolver(cloudnest.ResolverDependencies{Client: client})

	files := resolver.Files(ctx)
	folders := resolver.Folders(ctx)
	trash := resolver.Trash(ctx)

	if files.Source == cloudnest.SourceLive {
		fmt.Println("✅ Server is reachable")
	} else {
		fmt.Println("❌ Server is unreachable, showing demo fallback data")
	}

	fmt.Printf("   Files:   %d (%s)\n", len(files.Files), files.Source)
	fmt.Printf("   Folders: %d (%s)\n", len(folders.Folders), folders.Source)
	fmt.Printf("   Trash:   %d (%s)\n", len(trash.Items), trash.Source)

	return nil
}
