package commands

import (
	"fmt"

	"github.com/battlesnakeio/arcade/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the arcade version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}
