package page

import (
	"html/template"
	"strings"

	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/bib"
)

// AuthorOptions control how an author list is rendered.
type AuthorOptions struct {
	Sep      string
	BoldName string
	Links    map[string]string
}

// Authors renders persons as HTML. Names found in Links become links;
// the remaining name equal to BoldName is set in bold.
func Authors(persons []bib.Person, opts AuthorOptions) template.HTML {
	parts := lo.Map(persons, func(p bib.Person, _ int) string {
		name := p.Name()
		escaped := template.HTMLEscapeString(name)

		if url, ok := opts.Links[name]; ok {
			return `<a href="` + template.HTMLEscapeString(url) + `" target="_blank">` + escaped + `</a>`
		}
		if opts.BoldName != "" && name == opts.BoldName {
			return `<span style="font-weight: bold;">` + escaped + `</span>`
		}
		return escaped
	})
	return template.HTML(strings.Join(parts, template.HTMLEscapeString(opts.Sep)))
}

// AuthorList is the plain-text author list, as used in citations.
func AuthorList(persons []bib.Person, sep string) string {
	return strings.Join(lo.Map(persons, func(p bib.Person, _ int) string {
		return p.Name()
	}), sep)
}
