package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drivebridge/drivebridge/internal/drive"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Obtain Google Drive OAuth2 credentials",
		Long: `Walk through the OAuth2 authorization code flow by hand.

First run "auth url" and open the printed URL in a browser. Google redirects
back to the configured redirect URI with a code; pass that code to
"auth exchange" to obtain tokens.`,
	}

	cmd.AddCommand(newAuthURLCmd())
	cmd.AddCommand(newAuthExchangeCmd())
	return cmd
}

func newAuthURLCmd() *cobra.Command {
	var clientID, redirectURI string

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the Google consent URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientID == "" {
				clientID = os.Getenv("DRIVE_CLIENT_ID")
			}
			if redirectURI == "" {
				redirectURI = os.Getenv("DRIVE_REDIRECT_URI")
			}

			client := drive.NewClient(nil)
			authURL, err := client.AuthURL(clientID, redirectURI)
			if err != nil {
				return err
			}
			fmt.Println(authURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Google OAuth client ID. Can also use DRIVE_CLIENT_ID env var.")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "OAuth redirect URI. Can also use DRIVE_REDIRECT_URI env var.")
	return cmd
}

func newAuthExchangeCmd() *cobra.Command {
	var clientID, clientSecret, redirectURI string

	cmd := &cobra.Command{
		Use:   "exchange <code>",
		Short: "Exchange an authorization code for tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientID == "" {
				clientID = os.Getenv("DRIVE_CLIENT_ID")
			}
			if clientSecret == "" {
				clientSecret = os.Getenv("DRIVE_CLIENT_SECRET")
			}
			if redirectURI == "" {
				redirectURI = os.Getenv("DRIVE_REDIRECT_URI")
			}

			client := drive.NewClient(nil)
			creds, err := client.ExchangeCode(context.Background(), args[0], clientID, clientSecret, redirectURI)
			if err != nil {
				return fmt.Errorf("failed to exchange code: %w", err)
			}

			out, err := json.MarshalIndent(creds, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Google OAuth client ID. Can also use DRIVE_CLIENT_ID env var.")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Google OAuth client secret. Can also use DRIVE_CLIENT_SECRET env var.")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "OAuth redirect URI. Can also use DRIVE_REDIRECT_URI env var.")
	return cmd
}

// accessTokenFromEnv resolves the token used by the file transfer commands.
func accessTokenFromEnv(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if tok := os.Getenv("DRIVE_ACCESS_TOKEN"); tok != "" {
		return tok, nil
	}
	return "", fmt.Errorf("no access token: pass --access-token or set DRIVE_ACCESS_TOKEN")
}
