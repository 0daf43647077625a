package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/build"
	"github.com/scholarpage/scholarpage/color"
	"github.com/scholarpage/scholarpage/icon"
	"github.com/scholarpage/scholarpage/key"
	"github.com/scholarpage/scholarpage/style"
	"github.com/scholarpage/scholarpage/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(buildCmd)
	addInputFlags(buildCmd)

	buildCmd.Flags().StringP("output", "o", "", "Path of the generated page")
	buildCmd.Flags().BoolP("watch", "w", false, "Rebuild whenever an input changes")
}

// inputFlags maps the flags shared by every command that reads the inputs to their config keys.
var inputFlags = map[string]string{
	"site":         key.SiteFile,
	"publications": key.BibPublications,
	"talks":        key.BibTalks,
	"with-talks":   key.BuildTalks,
	"output":       key.BuildOutput,
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("site", "", "Site data file (toml, yaml or json)")
	cmd.Flags().StringP("publications", "p", "", "BibTeX file listing publications")
	cmd.Flags().StringP("talks", "t", "", "BibTeX file listing talks")
	cmd.Flags().Bool("with-talks", false, "Include the talks section")

	lo.Must0(cmd.MarkFlagFilename("site", "toml", "yaml", "yml", "json"))
	lo.Must0(cmd.MarkFlagFilename("publications", "bib"))
	lo.Must0(cmd.MarkFlagFilename("talks", "bib"))

	// a key can be bound to a single flag, so bind those of the running command only
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		for flag, k := range inputFlags {
			if f := cmd.Flags().Lookup(flag); f != nil {
				lo.Must0(viper.BindPFlag(k, f))
			}
		}
	}
}

// buildCmd renders the homepage.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the homepage from the configured site file and bibliographies",
	Example: `  scholarpage build
  scholarpage build --site site.toml -p papers.bib -o public/index.html
  scholarpage build --with-talks --watch`,
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := build.OptionsFromConfig()
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if !lo.Must(cmd.Flags().GetBool("watch")) {
			erase := util.PrintErasable(fmt.Sprintf("%s Building %s...", icon.Get(icon.Progress), opts.Output))
			res, err := build.Run(ctx, opts)
			erase()
			handleErr(err)
			printBuild(cmd, res)
			return
		}

		debounce := time.Duration(viper.GetInt(key.WatchDebounceMS)) * time.Millisecond
		cmd.Printf("%s watching for changes, press Ctrl+C to stop\n", icon.Get(icon.Progress))
		handleErr(build.Watch(ctx, opts, debounce, func(res *build.Result, err error) {
			if err != nil {
				cmd.PrintErrf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
				return
			}
			printBuild(cmd, res)
		}))
	},
}

func printBuild(cmd *cobra.Command, res *build.Result) {
	summary := util.Quantify(res.Publications, "publication", "publications")
	if res.Talks > 0 {
		summary += ", " + util.Quantify(res.Talks, "talk", "talks")
	}
	summary += ", " + util.Quantify(res.Products, "product", "products")

	cmd.Printf(
		"%s wrote %s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		style.Fg(color.Purple)(res.Output),
		style.Faint("("+summary+")"),
	)

	for _, w := range res.Warnings {
		cmd.Printf("%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), w)
	}
}
