// Package build turns the configured inputs into the generated homepage.
package build

import (
	"context"
	"fmt"

	"github.com/scholarpage/scholarpage/bib"
	"github.com/scholarpage/scholarpage/filesystem"
	"github.com/scholarpage/scholarpage/key"
	"github.com/scholarpage/scholarpage/log"
	"github.com/scholarpage/scholarpage/page"
	"github.com/scholarpage/scholarpage/site"
	"github.com/scholarpage/scholarpage/video"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Options locate the inputs and output of a build.
type Options struct {
	SiteFile     string
	Publications string
	Talks        string
	Output       string
	ShowTalks    bool
	// BoldName overrides the highlighted author; the site owner by default.
	BoldName string
	Video    video.Options
}

// OptionsFromConfig reads the options from the global configuration.
func OptionsFromConfig() (Options, error) {
	opts := Options{
		SiteFile:     viper.GetString(key.SiteFile),
		Publications: viper.GetString(key.BibPublications),
		Talks:        viper.GetString(key.BibTalks),
		Output:       viper.GetString(key.BuildOutput),
		ShowTalks:    viper.GetBool(key.BuildTalks),
		BoldName:     viper.GetString(key.BuildBoldName),
		Video:        video.ThumbnailOptions(),
	}

	ratio, ok := video.ParseRatio(viper.GetString(key.MediaRatio))
	if !ok {
		return Options{}, fmt.Errorf("unknown media ratio %q", viper.GetString(key.MediaRatio))
	}
	opts.Video.Ratio = ratio

	opts.Video.MediaHeight = viper.GetInt(key.MediaHeight)
	if opts.Video.MediaHeight < 0 {
		return Options{}, fmt.Errorf("media height must not be negative, got %d", opts.Video.MediaHeight)
	}

	return opts, nil
}

// Inputs is everything read from disk for one build.
type Inputs struct {
	Site         *site.Site
	Publications []*bib.Entry
	Talks        []*bib.Entry
}

// Load reads the site file and bibliographies named by opts.
func Load(opts Options) (*Inputs, error) {
	s, err := site.Load(opts.SiteFile)
	if err != nil {
		return nil, err
	}

	pubs, err := bib.Load(opts.Publications)
	if err != nil {
		return nil, err
	}

	in := &Inputs{Site: s, Publications: pubs}
	if opts.ShowTalks {
		if in.Talks, err = bib.Load(opts.Talks); err != nil {
			return nil, err
		}
	}

	return in, nil
}

// Render produces the document for already loaded inputs.
func Render(opts Options, in *Inputs) (*page.Output, error) {
	boldName := opts.BoldName
	if boldName == "" {
		boldName = in.Site.Name.Full()
	}

	return page.Render(page.Input{
		Site:         in.Site,
		Publications: in.Publications,
		Talks:        in.Talks,
		ShowTalks:    opts.ShowTalks,
		Options: page.Options{
			BoldName: boldName,
			Links:    in.Site.AuthorLinks(),
			Video:    opts.Video,
		},
	})
}

// Result summarizes a finished build.
type Result struct {
	Output       string
	Bytes        int
	Publications int
	Talks        int
	Products     int
	Warnings     []page.Warning
}

// Run loads the inputs, renders the page and writes it to opts.Output.
func Run(ctx context.Context, opts Options) (*Result, error) {
	in, err := Load(opts)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := Render(opts, in)
	if err != nil {
		return nil, err
	}

	for _, w := range out.Warnings {
		log.WithField("entry", w.Entry).Warnf("field %s missing", w.Field)
	}

	if err := filesystem.WriteAtomic(opts.Output, out.HTML, 0644); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"output":       opts.Output,
		"bytes":        len(out.HTML),
		"publications": len(in.Publications),
		"talks":        len(in.Talks),
	}).Info("page written")

	return &Result{
		Output:       opts.Output,
		Bytes:        len(out.HTML),
		Publications: len(in.Publications),
		Talks:        len(in.Talks),
		Products:     len(in.Site.Products),
		Warnings:     out.Warnings,
	}, nil
}
