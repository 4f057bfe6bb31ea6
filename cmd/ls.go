package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivebridge/drivebridge/internal/drive"
)

func newLsCmd() *cobra.Command {
	var (
		accessToken string
		folderID    string
		allPages    bool
	)

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List files in Google Drive",
		Long: `List non-trashed files, one per line. Without --folder the whole Drive
is listed; with --folder only the direct children of that folder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := accessTokenFromEnv(accessToken)
			if err != nil {
				return err
			}

			ctx := context.Background()
			client := drive.NewClient(nil)

			pageToken := ""
			n := 0
			for {
				list, err := client.ListFiles(ctx, token, drive.ListOptions{
					FolderID:  folderID,
					PageToken: pageToken,
				})
				if err != nil {
					return fmt.Errorf("failed to list files: %w", err)
				}

				for _, f := range list.Files {
					size := f.Size
					if size == "" {
						size = "-"
					}
					fmt.Printf("%s\t%s\t%s\t%s\n", f.ID, f.MimeType, size, f.Name)
					n++
				}

				pageToken = list.NextPageToken
				if pageToken == "" || !allPages {
					if pageToken != "" {
						fmt.Printf("# next page token: %s\n", pageToken)
					}
					break
				}
			}

			fmt.Printf("# %d files\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "OAuth access token. Can also use DRIVE_ACCESS_TOKEN env var.")
	cmd.Flags().StringVar(&folderID, "folder", "", "Restrict the listing to children of this folder ID")
	cmd.Flags().BoolVar(&allPages, "all", false, "Follow page tokens until the listing is exhausted")
	return cmd
}
