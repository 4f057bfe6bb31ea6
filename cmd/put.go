package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivebridge/drivebridge/internal/drive"
)

func newPutCmd() *cobra.Command {
	var (
		accessToken string
		folderID    string
		name        string
	)

	cmd := &cobra.Command{
		Use:   "put <path>",
		Short: "Upload a file to Google Drive",
		Long: `Upload a local file. The remote name defaults to the local base name
and the MIME type is inferred from the extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := accessTokenFromEnv(accessToken)
			if err != nil {
				return err
			}

			client := drive.NewClient(nil)
			file, err := client.UploadFile(context.Background(), token, args[0], drive.UploadOptions{
				FolderID: folderID,
				Name:     name,
			})
			if err != nil {
				return fmt.Errorf("failed to upload file: %w", err)
			}

			fmt.Printf("%s\t%s\t%s\n", file.ID, file.MimeType, file.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "OAuth access token. Can also use DRIVE_ACCESS_TOKEN env var.")
	cmd.Flags().StringVar(&folderID, "folder", "", "Destination folder ID")
	cmd.Flags().StringVar(&name, "name", "", "Remote file name (default: local base name)")
	return cmd
}
