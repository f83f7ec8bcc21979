package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contentform",
	Short: "Render content type edit forms and feature pickers",
	Long: `contentform renders the edit form of a content type (record, schema, layout,
validations and errors) as HTML or as an interactive terminal session, and
runs the feature picker used to switch between content types.

Flags override the CONTENTFORM_* environment variables.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("schema-dir", "", "Directory of content type documents (CONTENTFORM_SCHEMA_DIR)")
	rootCmd.PersistentFlags().String("openapi", "", "OpenAPI document path or URL to import content types from (CONTENTFORM_SCHEMA_OPENAPI)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (CONTENTFORM_LOGGER_LEVEL)")
}
