package build

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/filesystem"
	"github.com/scholarpage/scholarpage/key"
	"github.com/scholarpage/scholarpage/page"
	"github.com/scholarpage/scholarpage/video"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

const publications = `
@InProceedings{huang2025latent,
  author    = {Chi-Yao Huang and Yezhou Yang},
  title     = {Latent SLAM},
  booktitle = {CVPR},
  year      = {2025},
  html      = {https://example.com/latent},
  video     = {https://example.com/teaser.mp4}
}
`

func options() Options {
	return Options{
		Publications: "/work/publication_list.bib",
		Talks:        "/work/talk_list.bib",
		Output:       "/work/public/index.html",
		Video:        video.ThumbnailOptions(),
	}
}

func TestRun(t *testing.T) {
	Convey("Given a bibliography on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/work/publication_list.bib", []byte(publications), 0644), ShouldBeNil)

		Convey("Run writes the page", func() {
			res, err := Run(context.Background(), options())
			So(err, ShouldBeNil)
			So(res.Output, ShouldEqual, "/work/public/index.html")
			So(res.Publications, ShouldEqual, 1)
			So(res.Products, ShouldEqual, 3)
			So(res.Talks, ShouldEqual, 0)

			written := string(lo.Must(filesystem.API().ReadFile(res.Output)))
			So(len(written), ShouldEqual, res.Bytes)
			So(written, ShouldContainSubstring, `<source src="https://example.com/teaser.mp4" type="video/mp4">`)
			So(written, ShouldContainSubstring, `style="max-height: 180px;"`)
		})

		Convey("The site owner is bold unless overridden", func() {
			res, err := Run(context.Background(), options())
			So(err, ShouldBeNil)
			So(string(lo.Must(filesystem.API().ReadFile(res.Output))), ShouldContainSubstring,
				`<span style="font-weight: bold;">Chi-Yao Huang</span>`)

			opts := options()
			opts.BoldName = "Nobody"
			res, err = Run(context.Background(), opts)
			So(err, ShouldBeNil)
			So(string(lo.Must(filesystem.API().ReadFile(res.Output))), ShouldNotContainSubstring, `font-weight: bold;">Chi-Yao Huang`)
		})

		Convey("Missing artefacts are reported", func() {
			res, err := Run(context.Background(), options())
			So(err, ShouldBeNil)
			So(res.Warnings, ShouldContain, page.Warning{Entry: "huang2025latent", Field: "pdf"})
		})

		Convey("Talks are read only when enabled", func() {
			opts := options()
			opts.ShowTalks = true
			_, err := Run(context.Background(), opts)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "talk_list.bib")
		})

		Convey("A cancelled context stops before writing", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := Run(ctx, options())
			So(err, ShouldEqual, context.Canceled)
			So(lo.Must(filesystem.API().Exists("/work/public/index.html")), ShouldBeFalse)
		})
	})

	Convey("Given a missing bibliography", t, func() {
		filesystem.SetMemMapFs()
		_, err := Run(context.Background(), options())
		So(err, ShouldNotBeNil)
	})
}

func TestOptionsFromConfig(t *testing.T) {
	Convey("Given configured values", t, func() {
		viper.Set(key.BibPublications, "pubs.bib")
		viper.Set(key.BuildOutput, "out/index.html")
		viper.Set(key.BuildTalks, true)
		viper.Set(key.MediaRatio, "16by9")
		viper.Set(key.MediaHeight, 240)

		opts, err := OptionsFromConfig()
		So(err, ShouldBeNil)
		So(opts.Publications, ShouldEqual, "pubs.bib")
		So(opts.Output, ShouldEqual, "out/index.html")
		So(opts.ShowTalks, ShouldBeTrue)
		So(opts.Video.Ratio, ShouldEqual, video.Ratio16by9)
		So(opts.Video.MediaHeight, ShouldEqual, 240)
		So(opts.Video.Margin, ShouldEqual, "my-0")

		Convey("Unknown ratios are rejected", func() {
			viper.Set(key.MediaRatio, "3by2")
			_, err := OptionsFromConfig()
			So(err, ShouldNotBeNil)
		})

		Convey("Negative heights are rejected", func() {
			viper.Set(key.MediaRatio, "4by3")
			viper.Set(key.MediaHeight, -1)
			_, err := OptionsFromConfig()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestWatchHelpers(t *testing.T) {
	Convey("Given build options", t, func() {
		opts := Options{
			SiteFile:     "/work/site.toml",
			Publications: "/work/publication_list.bib",
			Talks:        "/work/talks/talk_list.bib",
		}

		Convey("Talks are watched only when shown", func() {
			So(watchedFiles(opts), ShouldResemble, []string{"/work/publication_list.bib", "/work/site.toml"})

			opts.ShowTalks = true
			So(watchedFiles(opts), ShouldContain, "/work/talks/talk_list.bib")
		})

		Convey("Only writes to inputs trigger a rebuild", func() {
			inputs := watchedFiles(opts)
			So(relevant(fsnotify.Event{Name: "/work/site.toml", Op: fsnotify.Write}, inputs), ShouldBeTrue)
			So(relevant(fsnotify.Event{Name: "/work/./site.toml", Op: fsnotify.Create}, inputs), ShouldBeTrue)
			So(relevant(fsnotify.Event{Name: "/work/site.toml", Op: fsnotify.Chmod}, inputs), ShouldBeFalse)
			So(relevant(fsnotify.Event{Name: filepath.Join("/work", "index.html"), Op: fsnotify.Write}, inputs), ShouldBeFalse)
		})
	})
}
