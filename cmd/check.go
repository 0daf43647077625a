package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/build"
	"github.com/scholarpage/scholarpage/check"
	"github.com/scholarpage/scholarpage/icon"
	"github.com/scholarpage/scholarpage/style"
	"github.com/scholarpage/scholarpage/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	addInputFlags(checkCmd)
	checkCmd.Flags().BoolP("strict", "s", false, "Exit with an error when anything is found")
	checkCmd.SetOut(os.Stdout)
}

// checkCmd lints the inputs without writing the page.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing links, unlinked co-authors and unplayable videos",
	Long: `Render the homepage in memory and report everything that degrades it:
missing artefact links, co-authors without a homepage, video links that
cannot be embedded, missing local images and structural problems.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := build.OptionsFromConfig()
		handleErr(err)

		report, err := check.Check(opts)
		handleErr(err)

		problems := report.Problems()
		if problems == 0 {
			cmd.Println(style.Box(
				style.SuccessColor,
				fmt.Sprintf("%s All good", icon.Get(icon.Success)),
				fmt.Sprintf("Checked %s.", util.Quantify(report.Entries, "entry", "entries")),
			))
			return
		}

		cmd.Println(style.Box(
			style.WarningColor,
			fmt.Sprintf("%s %s in %s", icon.Get(icon.Warn), util.Quantify(problems, "problem", "problems"), util.Quantify(report.Entries, "entry", "entries")),
			report.Format(terminalWidth()-4),
		))

		if lo.Must(cmd.Flags().GetBool("strict")) {
			os.Exit(1)
		}
	},
}

// terminalWidth is the width of stdout, or 80 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 80
	}
	return util.Clamp(width, 40, 120)
}
