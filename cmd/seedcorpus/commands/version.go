package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lxl66566/urldecoder/version"
)

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		return err
	},
}
