package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivebridge/drivebridge/internal/drive"
)

func newGetCmd() *cobra.Command {
	var (
		accessToken string
		destDir     string
	)

	cmd := &cobra.Command{
		Use:   "get <file-id> <file-name>",
		Short: "Download a file from Google Drive",
		Long: `Download a file to the destination directory. Native Google documents
(Docs, Sheets, Slides) are exported to a portable format and the matching
extension is appended to the file name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := accessTokenFromEnv(accessToken)
			if err != nil {
				return err
			}

			client := drive.NewClient(nil)
			dest, err := client.DownloadFile(context.Background(), token, args[0], args[1], destDir)
			if err != nil {
				return fmt.Errorf("failed to download file: %w", err)
			}

			fmt.Println(dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "OAuth access token. Can also use DRIVE_ACCESS_TOKEN env var.")
	cmd.Flags().StringVar(&destDir, "dest", ".", "Destination directory")
	return cmd
}
