package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "arcade",
	Short:   "arcade plays snake in the terminal or in a window",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		return setupLogging(opts.logFile, opts.logLevel)
	},
	RunE: func(c *cobra.Command, args []string) error {
		return singleCmd.RunE(c, args)
	},
}

var opts = options{
	backend:    "termbox",
	logLevel:   "info",
	promListen: ":9000",
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&opts.backend, "backend", "b", opts.backend, "backend to draw with, as one of: "+backendNames())
	f.StringVar(&opts.window, "window", opts.window, "window size in pixels as WIDTHxHEIGHT, a terminal pixel is one character")
	f.StringVar(&opts.cell, "cell", opts.cell, "cell size in pixels as WIDTHxHEIGHT")
	f.IntVar(&opts.fps, "fps", opts.fps, "frames per second, the snakes move one cell per frame")
	f.IntVar(&opts.length, "length", opts.length, "initial snake length")
	f.Int64Var(&opts.seed, "seed", opts.seed, "random seed, 0 picks one from the clock")
	f.StringVar(&opts.logFile, "log-file", opts.logFile, "file to write logs to, logs are discarded when empty")
	f.StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level")
	f.BoolVar(&opts.promEnable, "prometheus", opts.promEnable, "enable prometheus metrics")
	f.StringVar(&opts.promListen, "prometheus-listen", opts.promListen, "prometheus http endpoint")

	rootCmd.AddCommand(singleCmd)
	rootCmd.AddCommand(duelCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
