package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/color"
	"github.com/scholarpage/scholarpage/constant"
	"github.com/scholarpage/scholarpage/filesystem"
	"github.com/scholarpage/scholarpage/icon"
	"github.com/scholarpage/scholarpage/site"
	"github.com/scholarpage/scholarpage/style"
	"github.com/scholarpage/scholarpage/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing files")
	initCmd.Flags().BoolP("example", "e", false, "Write the built-in example site without asking")
}

const exampleBib = `@InProceedings{doe2025example,
  author    = {%s and Jane Doe},
  title     = {An Example Publication},
  booktitle = {Conference on Examples},
  year      = {2025},
  html      = {https://example.com/project},
  pdf       = {https://example.com/paper.pdf},
  video     = {https://www.youtube.com/watch?v=dQw4w9WgXcQ}
}
`

type initAnswers struct {
	First   string
	Last    string
	Email   string
	Github  string
	Profile string
}

// initCmd scaffolds a site file and a publication list.
var initCmd = &cobra.Command{
	Use:   "init [site file]",
	Short: "Create a site file and an example publication list",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := constant.SiteFile
		if len(args) == 1 {
			path = args[0]
		}

		force := lo.Must(cmd.Flags().GetBool("force"))
		if util.Exists(path) && !force {
			handleErr(fmt.Errorf("%s already exists, use --force to overwrite", path))
		}

		var owner string
		if lo.Must(cmd.Flags().GetBool("example")) {
			handleErr(filesystem.WriteAtomic(path, site.DefaultSource(), 0644))
			s, err := site.Default()
			handleErr(err)
			owner = s.Name.Full()
		} else {
			answers, err := askSite()
			handleErr(err)
			handleErr(writeSite(path, answers))
			owner = site.Name{First: answers.First, Last: answers.Last}.Full()
		}
		printCreated(path)

		bib := constant.PublicationsFile
		if !util.Exists(bib) || force {
			handleErr(filesystem.WriteAtomic(bib, []byte(fmt.Sprintf(exampleBib, owner)), 0644))
			printCreated(bib)
		}

		fmt.Println(style.Faint(fmt.Sprintf("build it with: %s build --site %s", constant.App, path)))
	},
}

func printCreated(path string) {
	fmt.Printf("%s created %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(path))
}

func askSite() (*initAnswers, error) {
	questions := []*survey.Question{
		{
			Name:     "first",
			Prompt:   &survey.Input{Message: "First name"},
			Validate: survey.Required,
		},
		{
			Name:     "last",
			Prompt:   &survey.Input{Message: "Last name"},
			Validate: survey.Required,
		},
		{
			Name:   "email",
			Prompt: &survey.Input{Message: "Email (optional)"},
		},
		{
			Name:   "github",
			Prompt: &survey.Input{Message: "GitHub profile URL (optional)"},
		},
		{
			Name:   "profile",
			Prompt: &survey.Input{Message: "Profile picture", Default: "assets/img/profile.jpg"},
		},
	}

	var answers initAnswers
	if err := survey.Ask(questions, &answers); err != nil {
		return nil, err
	}
	return &answers, nil
}

func writeSite(path string, a *initAnswers) error {
	v := viper.New()
	v.SetFs(filesystem.API())

	v.Set("name.first", a.First)
	v.Set("name.last", a.Last)
	v.Set("profile", a.Profile)
	v.Set("bio", fmt.Sprintf("%s %s is a researcher.", a.First, a.Last))

	var links []map[string]any
	if a.Email != "" {
		links = append(links, map[string]any{"label": "Email", "icon": "fas fa-envelope fa-lg", "url": "mailto:" + a.Email})
	}
	if a.Github != "" {
		links = append(links, map[string]any{"label": "GitHub", "icon": "fab fa-github fa-lg", "url": a.Github})
	}
	if len(links) > 0 {
		v.Set("links", links)
	}

	return v.WriteConfigAs(path)
}
