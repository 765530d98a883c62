package cmd

import (
	"fmt"

	"github.com/overlayenv/dotenv"
	"github.com/spf13/cobra"
)

var listFiles []string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the merged variables from .env files",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringArrayVarP(&listFiles, "file", "f", []string{".env"}, "env file to merge, in precedence order")
}

func runList(cmd *cobra.Command, args []string) error {
	merged, err := dotenv.New().Merge(cmd.Context(), listFiles...)
	if err != nil {
		return fmt.Errorf("merging env files: %w", err)
	}

	values := merged.Variables()
	for _, name := range merged.Names() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, values[name])
	}
	return nil
}
