package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chng-cli/chng/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chng v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
