package cmd

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/color"
	"github.com/scholarpage/scholarpage/constant"
	"github.com/scholarpage/scholarpage/filesystem"
	"github.com/scholarpage/scholarpage/icon"
	"github.com/scholarpage/scholarpage/key"
	"github.com/scholarpage/scholarpage/style"
	"github.com/scholarpage/scholarpage/util"
	"github.com/scholarpage/scholarpage/video"
	"github.com/scholarpage/scholarpage/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(videoCmd)

	videoCmd.Flags().BoolP("kind", "k", false, "Print the classification instead of markup")
	videoCmd.Flags().BoolP("thumbnail", "t", false, "Use the layout of videos next to entries")
	videoCmd.Flags().StringP("ratio", "r", "", "Aspect ratio of embedded players")
	videoCmd.Flags().Int("height", 0, "Maximum height in pixels of native players")
	videoCmd.Flags().BoolP("preview", "p", false, "Write an HTML page showing the players and print its path")

	lo.Must0(videoCmd.RegisterFlagCompletionFunc("ratio", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(video.Ratios(), func(r video.Ratio, _ int) string { return string(r) }), cobra.ShellCompDirectiveNoFileComp
	}))
	videoCmd.MarkFlagsMutuallyExclusive("kind", "preview")
}

// videoCmd renders embed markup for video links.
var videoCmd = &cobra.Command{
	Use:   "video [url...]",
	Short: "Render the embed markup for video links",
	Example: `  scholarpage video https://youtu.be/dQw4w9WgXcQ
  scholarpage video --kind https://vimeo.com/123456 https://example.com/clip.webm`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("kind")) {
			for _, raw := range args {
				src := video.Classify(raw)
				cmd.Printf("%s %s\n", style.Fg(kindColor(src.Kind()))(fmt.Sprintf("%-7s", src.Kind())), src.Target())
			}
			return
		}

		opts, err := videoOptions(cmd)
		handleErr(err)

		markup := lo.Map(args, func(raw string, _ int) string {
			return video.Render(raw, opts)
		})

		if !lo.Must(cmd.Flags().GetBool("preview")) {
			cmd.Println(strings.Join(markup, "\n"))
			return
		}

		path := filepath.Join(where.Temp(), "video-preview.html")
		handleErr(writePreview(path, markup))
		cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Video)), path)
	},
}

func videoOptions(cmd *cobra.Command) (video.Options, error) {
	opts := video.DefaultOptions()
	if lo.Must(cmd.Flags().GetBool("thumbnail")) {
		opts = video.ThumbnailOptions()
		if r, ok := video.ParseRatio(viper.GetString(key.MediaRatio)); ok {
			opts.Ratio = r
		}
		opts.MediaHeight = viper.GetInt(key.MediaHeight)
	}

	if cmd.Flags().Changed("ratio") {
		raw := lo.Must(cmd.Flags().GetString("ratio"))
		r, ok := video.ParseRatio(raw)
		if !ok {
			return video.Options{}, fmt.Errorf("unknown ratio %q, available: %s", raw, strings.Join(lo.Map(video.Ratios(), func(r video.Ratio, _ int) string { return string(r) }), ", "))
		}
		opts.Ratio = r
	}

	if cmd.Flags().Changed("height") {
		opts.MediaHeight = util.Clamp(lo.Must(cmd.Flags().GetInt("height")), 0, 4320)
	}

	return opts, nil
}

func kindColor(k video.Kind) lipgloss.Color {
	switch k {
	case video.KindYouTube:
		return color.Red
	case video.KindVimeo:
		return color.Cyan
	case video.KindFile:
		return color.Green
	default:
		return color.Yellow
	}
}

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://stackpath.bootstrapcdn.com/bootstrap/4.3.1/css/bootstrap.min.css">
</head>
<body>
  <div class="container my-4">
  {{- range .Players }}
    <div class="row"><div class="col-md-6">{{ . }}</div></div>
  {{- end }}
  </div>
</body>
</html>
`))

func writePreview(path string, markup []string) error {
	var buf bytes.Buffer
	err := previewTemplate.Execute(&buf, struct {
		Title   string
		Players []template.HTML
	}{
		Title:   constant.App + " video preview",
		Players: lo.Map(markup, func(m string, _ int) template.HTML { return template.HTML(m) }),
	})
	if err != nil {
		return err
	}

	return filesystem.WriteAtomic(path, buf.Bytes(), 0644)
}
