package page

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/scholarpage/scholarpage/bib"
	"github.com/scholarpage/scholarpage/constant"
)

type artefact struct {
	Field string
	Label string
	URL   string
}

var (
	publicationArtefacts = []artefact{
		{Field: "html", Label: "Project Page"},
		{Field: "pdf", Label: "Paper"},
		{Field: "supp", Label: "Supplemental"},
		{Field: "video", Label: "Video"},
		{Field: "poster", Label: "Poster"},
		{Field: "code", Label: "Code"},
	}

	talkArtefacts = []artefact{
		{Field: "slides", Label: "Slides"},
		{Field: "video", Label: "Recording"},
	}
)

// Venue returns the booktitle of e, or its journal for articles.
func Venue(e *bib.Entry) string {
	return e.Field("booktitle").OrElse(e.Get("journal"))
}

// requirePublication lists what a publication cannot be rendered without.
func requirePublication(e *bib.Entry) error {
	if err := e.Require("title", "html", "year"); err != nil {
		return err
	}
	if Venue(e) == "" {
		return e.Require("booktitle")
	}
	return nil
}

// artefacts collects the present links in order and warns about the rest.
func (r *renderer) artefacts(e *bib.Entry, all []artefact) []artefact {
	var present []artefact
	for _, a := range all {
		url, ok := e.Field(a.Field).Get()
		if !ok {
			r.warn(e.Key, a.Field)
			continue
		}
		a.URL = url
		present = append(present, a)
	}
	return present
}

type publicationView struct {
	Media      media
	URL        string
	Title      string
	Award      string
	Authors    template.HTML
	Venue      string
	Year       string
	Artefacts  []artefact
	CollapseID string
	Cite       string
}

func (r *renderer) publication(e *bib.Entry) (template.HTML, error) {
	if err := requirePublication(e); err != nil {
		return "", err
	}

	return execute("publication", publicationView{
		Media: r.media(e.Get("img"), "Project image", e.Get("video")),
		URL:   e.Get("html"),
		Title: e.Get("title"),
		Award: e.Get("award"),
		Authors: Authors(e.Authors, AuthorOptions{
			Sep:      ", ",
			BoldName: r.opts.BoldName,
			Links:    r.opts.Links,
		}),
		Venue:      Venue(e),
		Year:       e.Get("year"),
		Artefacts:  r.artefacts(e, publicationArtefacts),
		CollapseID: "collapse" + anchor(e.Key),
		Cite:       Cite(e),
	})
}

type talkView struct {
	Img       string
	Title     string
	Venue     string
	Year      string
	Artefacts []artefact
}

func (r *renderer) talk(e *bib.Entry) (template.HTML, error) {
	if err := e.Require("title", "year"); err != nil {
		return "", err
	}

	return execute("talk", talkView{
		Img:       e.Field("img").OrElse(constant.DefaultImage),
		Title:     e.Get("title"),
		Venue:     Venue(e),
		Year:      e.Get("year"),
		Artefacts: r.artefacts(e, talkArtefacts),
	})
}

var citeTypes = map[string]string{
	"inproceedings": "InProceedings",
	"article":       "Article",
	"book":          "Book",
	"incollection":  "InCollection",
	"misc":          "Misc",
	"phdthesis":     "PhdThesis",
	"techreport":    "TechReport",
	"unpublished":   "Unpublished",
}

// Cite is the BibTeX snippet offered for copying under a publication.
func Cite(e *bib.Entry) string {
	typ, ok := citeTypes[e.Type]
	if !ok {
		typ = "InProceedings"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s, \n", typ, e.Key)
	fmt.Fprintf(&b, "\tauthor = {%s}, \n", AuthorList(e.Authors, " and "))
	fmt.Fprintf(&b, "\ttitle = {%s}, \n", e.Get("title"))
	if e.Type == "article" && e.Has("journal") {
		fmt.Fprintf(&b, "\tjournal = {%s}, \n", e.Get("journal"))
	} else {
		fmt.Fprintf(&b, "\tbooktitle = {%s}, \n", Venue(e))
	}
	fmt.Fprintf(&b, "\tyear = {%s}, \n", e.Get("year"))
	b.WriteString("}")
	return b.String()
}

var unsafeID = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// anchor turns a citation key into something usable as an element id.
func anchor(key string) string {
	return unsafeID.ReplaceAllString(key, "-")
}
