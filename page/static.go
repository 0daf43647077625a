package page

import (
	"fmt"
	"html/template"

	"github.com/scholarpage/scholarpage/site"
)

type productView struct {
	Media   media
	Name    string
	Link    string
	Desc    template.HTML
	Contrib []template.HTML
}

func (r *renderer) product(p site.Product) (template.HTML, error) {
	desc, err := site.Inline(p.Desc)
	if err != nil {
		return "", fmt.Errorf("product %s: %w", p.Name, err)
	}

	view := productView{
		Media: r.media(p.Img, p.Name+" image", p.Video),
		Name:  p.Name,
		Link:  p.Link,
		Desc:  desc,
	}
	for _, c := range p.Contrib {
		item, err := site.Inline(c)
		if err != nil {
			return "", fmt.Errorf("product %s: %w", p.Name, err)
		}
		view.Contrib = append(view.Contrib, item)
	}

	return execute("product", view)
}

type sponsorsView struct {
	Intro template.HTML
	List  []site.Sponsor
}

func (r *renderer) sponsors(s site.Sponsors) (template.HTML, error) {
	intro, err := site.Inline(s.Intro)
	if err != nil {
		return "", fmt.Errorf("sponsors: %w", err)
	}
	return execute("sponsors", sponsorsView{Intro: intro, List: s.List})
}
