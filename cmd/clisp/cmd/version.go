package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version defaults to "dev"; a build can override it with
// -ldflags "-X github.com/Hejdula/clisp/cmd/clisp/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clisp %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
