package cmd

import (
	"github.com/scholarpage/scholarpage/build"
	"github.com/scholarpage/scholarpage/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)
	addInputFlags(browseCmd)
}

// browseCmd opens the interactive entry browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse publications, talks and products interactively",
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := build.OptionsFromConfig()
		handleErr(err)
		handleErr(tui.Run(opts))
	},
}
