package commands

import (
	"github.com/battlesnakeio/arcade/rules"
	"github.com/spf13/cobra"
)

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "one snake steered with WASD, play until it bites itself",
	RunE: func(c *cobra.Command, args []string) error {
		return play(rules.GameModeSinglePlayer, opts)
	},
}
