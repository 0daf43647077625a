package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/color"
	"github.com/scholarpage/scholarpage/filesystem"
	"github.com/scholarpage/scholarpage/icon"
	"github.com/scholarpage/scholarpage/site"
	"github.com/scholarpage/scholarpage/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringP("output", "o", "", "Write the schema to a file instead of stdout")
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd prints the JSON schema of site files for editor integration.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the site file",
	Run: func(cmd *cobra.Command, args []string) {
		schema, err := site.Schema()
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			cmd.Println(string(schema))
			return
		}

		handleErr(filesystem.WriteAtomic(output, append(schema, '\n'), 0644))
		cmd.Printf("%s wrote schema to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), output)
	},
}
