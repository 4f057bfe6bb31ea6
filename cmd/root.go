package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the drivebridge application
var rootCmd = &cobra.Command{
	Use:   "drivebridge",
	Short: "Google Drive file transfer over OAuth2",
	Long: `drivebridge connects AI assistants and scripts to Google Drive.

It can run as:
  - An MCP (Model Context Protocol) server for AI assistants (default)
  - A standalone CLI for listing, downloading and uploading files

Tokens are always supplied by the caller; drivebridge never persists
credentials on disk.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "drivebridge version %s\n" .Version}}`)

	// If no subcommand is provided, run the MCP server by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newPutCmd())
	rootCmd.AddCommand(newVersionCmd())
}
