package cmd

import (
	"fmt"

	"github.com/overlayenv/dotenv"
	"github.com/spf13/cobra"
)

var explainFiles []string

var explainCmd = &cobra.Command{
	Use:   "explain NAME",
	Short: "Show where a merged variable got its value",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().StringArrayVarP(&explainFiles, "file", "f", []string{".env"}, "env file to merge, in precedence order")
}

func runExplain(cmd *cobra.Command, args []string) error {
	merged, err := dotenv.New().Merge(cmd.Context(), explainFiles...)
	if err != nil {
		return fmt.Errorf("merging env files: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), merged.Explain(args[0]))
	return nil
}
