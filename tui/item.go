package tui

import (
	"strings"

	"github.com/scholarpage/scholarpage/bib"
	"github.com/scholarpage/scholarpage/icon"
	"github.com/scholarpage/scholarpage/page"
	"github.com/scholarpage/scholarpage/site"
	"github.com/scholarpage/scholarpage/style"
	"github.com/scholarpage/scholarpage/video"
)

// entry is a bibliography entry together with the section it is listed in.
type entry struct {
	*bib.Entry
	talk bool
}

// listItem implements list.Item for entries and products.
type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *entry:
		title := e.Field("title").OrElse(e.Key)
		if e.Has("award") {
			title += " " + style.Fg(style.WarningColor)(icon.Get(icon.Award))
		}
		return title
	case *site.Product:
		return e.Name
	default:
		return ""
	}
}

func (t *listItem) Description() string {
	var parts []string

	switch e := t.internal.(type) {
	case *entry:
		if e.talk {
			parts = append(parts, "Talk")
		}
		if venue := page.Venue(e.Entry); venue != "" {
			parts = append(parts, venue)
		}
		if year, ok := e.Field("year").Get(); ok {
			parts = append(parts, year)
		}
		if raw, ok := e.Field("video").Get(); ok {
			parts = append(parts, icon.Get(icon.Video)+" "+video.Classify(strings.TrimSpace(raw)).Kind().String())
		}
	case *site.Product:
		parts = append(parts, "Product")
		if raw := strings.TrimSpace(e.Video); raw != "" {
			parts = append(parts, icon.Get(icon.Video)+" "+video.Classify(raw).Kind().String())
		}
	}

	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *entry:
		return e.Get("title") + " " + page.AuthorList(e.Authors, " ") + " " + e.Key
	case *site.Product:
		return e.Name
	default:
		return ""
	}
}

// pageURL is the main link of the item.
func (t *listItem) pageURL() string {
	switch e := t.internal.(type) {
	case *entry:
		if e.talk {
			return e.Get("slides")
		}
		return e.Get("html")
	case *site.Product:
		return e.Link
	default:
		return ""
	}
}

// videoURL is the item's video link as written in its source.
func (t *listItem) videoURL() string {
	var raw string
	switch e := t.internal.(type) {
	case *entry:
		raw = strings.TrimSpace(e.Get("video"))
	case *site.Product:
		raw = strings.TrimSpace(e.Video)
	}
	return raw
}
