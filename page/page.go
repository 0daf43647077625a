// Package page assembles the homepage document from site data and bibliography entries.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/bib"
	"github.com/scholarpage/scholarpage/constant"
	"github.com/scholarpage/scholarpage/site"
	"github.com/scholarpage/scholarpage/video"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = lo.Must(template.New(constant.App).ParseFS(templateFS, "templates/*.gohtml"))

// Options shape how entries are rendered.
type Options struct {
	// BoldName is the author highlighted in author lists. Empty disables highlighting.
	BoldName string
	// Links maps co-author display names to their homepages.
	Links map[string]string
	// Video is the layout used for videos next to entry images.
	Video video.Options
}

// Input is everything the document is made of.
type Input struct {
	Site         *site.Site
	Publications []*bib.Entry
	// Talks is rendered only when ShowTalks is set.
	Talks     []*bib.Entry
	ShowTalks bool
	Options   Options
}

// Output is a rendered document.
type Output struct {
	HTML     []byte
	Warnings []Warning
}

// Warning is a recoverable problem with an entry, such as a missing link.
type Warning struct {
	Entry string
	Field string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] field %s missing", w.Entry, w.Field)
}

type section struct {
	Title  string
	Margin template.CSS
	Body   template.HTML
}

type document struct {
	Generator string
	Name      site.Name
	Favicon   string
	Profile   string
	Links     []site.Link
	Bio       template.HTML
	Footer    template.HTML
	Sections  []section
}

// Render produces the complete HTML document.
func Render(in Input) (*Output, error) {
	r := &renderer{opts: in.Options}

	bio, err := site.Markdown(in.Site.Bio)
	if err != nil {
		return nil, fmt.Errorf("render bio: %w", err)
	}
	footer, err := site.Markdown(in.Site.Footer)
	if err != nil {
		return nil, fmt.Errorf("render footer: %w", err)
	}

	doc := document{
		Generator: constant.App + " " + constant.Version,
		Name:      in.Site.Name,
		Favicon:   in.Site.Favicon,
		Profile:   in.Site.Profile,
		Links:     in.Site.Links,
		Bio:       bio,
		Footer:    footer,
	}

	pubs, err := r.join(in.Publications, r.publication)
	if err != nil {
		return nil, err
	}
	doc.Sections = append(doc.Sections, section{Title: "Publications", Margin: "1em", Body: pubs})

	if in.ShowTalks {
		talks, err := r.join(in.Talks, r.talk)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section{Title: "Talks", Margin: "3em", Body: talks})
	}

	if len(in.Site.Products) > 0 {
		var products template.HTML
		for _, p := range in.Site.Products {
			html, err := r.product(p)
			if err != nil {
				return nil, err
			}
			products += html
		}
		doc.Sections = append(doc.Sections, section{Title: "Products", Margin: "3em", Body: products})
	}

	if len(in.Site.Sponsors.List) > 0 {
		sponsors, err := r.sponsors(in.Site.Sponsors)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, section{Title: "Sponsors & Funding", Margin: "3em", Body: sponsors})
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index", doc); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}

	return &Output{HTML: buf.Bytes(), Warnings: r.warnings}, nil
}

type renderer struct {
	opts     Options
	warnings []Warning
}

func (r *renderer) warn(entry, field string) {
	r.warnings = append(r.warnings, Warning{Entry: entry, Field: field})
}

func (r *renderer) join(entries []*bib.Entry, render func(*bib.Entry) (template.HTML, error)) (template.HTML, error) {
	var out template.HTML
	for _, e := range entries {
		html, err := render(e)
		if err != nil {
			return "", err
		}
		out += html
	}
	return out, nil
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// media is the image plus optional video column shared by publications and products.
type media struct {
	Img   string
	Alt   string
	Video template.HTML
}

func (r *renderer) media(img, alt, videoURL string) media {
	m := media{Img: img, Alt: alt}
	if m.Img == "" {
		m.Img = constant.DefaultImage
	}
	if videoURL = strings.TrimSpace(videoURL); videoURL != "" {
		m.Video = template.HTML(video.Render(videoURL, r.opts.Video))
	}
	return m
}
