package commands

import (
	"github.com/battlesnakeio/arcade/rules"
	"github.com/spf13/cobra"
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "red on the arrow keys against blue on WASD, the first crash ends the round",
	RunE: func(c *cobra.Command, args []string) error {
		return play(rules.GameModeTwoPlayer, opts)
	},
}
