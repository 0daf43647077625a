package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/scholarpage/scholarpage/icon"
	"github.com/scholarpage/scholarpage/key"
	"github.com/scholarpage/scholarpage/util"
	"github.com/scholarpage/scholarpage/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type cleanTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var cleanTargets = []cleanTarget{
	{"generated page", "output", mo.Some("o"), func() string { return viper.GetString(key.BuildOutput) }},
	{"logs", "logs", mo.Some("l"), where.Logs},
	{"previews", "temp", mo.Some("t"), where.Temp},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	for _, target := range cleanTargets {
		help := fmt.Sprintf("remove %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			cleanCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			cleanCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// cleanCmd removes generated files.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the generated page, logs or video previews",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleaned bool

		for _, target := range cleanTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}
			anyCleaned = true

			path := target.location()
			if !util.Exists(path) {
				fmt.Printf("%s %s already gone\n", icon.Get(icon.Success), util.Capitalize(target.name))
				continue
			}

			e := util.PrintErasable(fmt.Sprintf("%s Removing %s...", icon.Get(icon.Progress), target.name))
			err := util.Delete(path)
			e()
			handleErr(err)
			fmt.Printf("%s %s removed\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleaned {
			handleErr(cmd.Help())
		}
	},
}
