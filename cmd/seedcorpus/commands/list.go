package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lxl66566/urldecoder/internal/corpus"
)

// ListCmd prints every scenario name with a short description.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, sc := range corpus.Scenarios() {
			kind := "fixed"
			if sc.Randomized {
				kind = "random"
			}
			if _, err := fmt.Fprintf(out, "%-34s %-6s %s\n", sc.Name, kind, sc.Description); err != nil {
				return err
			}
		}
		return nil
	},
}
