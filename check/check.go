// Package check lints the homepage inputs without writing anything.
package check

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/scholarpage/scholarpage/bib"
	"github.com/scholarpage/scholarpage/build"
	"github.com/scholarpage/scholarpage/filesystem"
	"github.com/scholarpage/scholarpage/page"
	"github.com/scholarpage/scholarpage/site"
	"github.com/scholarpage/scholarpage/video"
	"golang.org/x/net/html"
)

// Unlinked is a co-author that has no homepage in the site file.
type Unlinked struct {
	Entry string
	Name  string
	// Suggestion is a configured author the name probably refers to.
	Suggestion string
}

// Video is a video link that is shown as a plain link instead of a player.
type Video struct {
	Entry string
	URL   string
}

// Asset is a local file referenced by the page that does not exist.
type Asset struct {
	Entry string
	Path  string
}

// Report lists everything found by Check.
type Report struct {
	Entries  int
	Missing  []page.Warning
	Unlinked []Unlinked
	Videos   []Video
	Assets   []Asset
	Document []string
}

// Problems is the number of findings.
func (r *Report) Problems() int {
	return len(r.Missing) + len(r.Unlinked) + len(r.Videos) + len(r.Assets) + len(r.Document)
}

// Check loads and renders the inputs described by opts and reports what
// would degrade the generated page.
func Check(opts build.Options) (*Report, error) {
	in, err := build.Load(opts)
	if err != nil {
		return nil, err
	}

	if err := in.Site.Validate(); err != nil {
		return nil, err
	}

	out, err := build.Render(opts, in)
	if err != nil {
		return nil, err
	}

	entries := append(append([]*bib.Entry{}, in.Publications...), in.Talks...)

	owner := opts.BoldName
	if owner == "" {
		owner = in.Site.Name.Full()
	}

	report := &Report{
		Entries:  len(entries),
		Missing:  out.Warnings,
		Unlinked: unlinked(entries, in.Site.AuthorLinks(), owner),
		Videos:   videos(entries),
		Assets:   assets(entries, filepath.Dir(opts.Output)),
		Document: document(out.HTML),
	}

	report.Videos = append(report.Videos, productVideos(in.Site.Products)...)

	return report, nil
}

func productVideos(products []site.Product) []Video {
	var found []Video
	for _, p := range products {
		url := strings.TrimSpace(p.Video)
		if url != "" && video.Classify(url).Kind() == video.KindUnknown {
			found = append(found, Video{Entry: p.Name, URL: url})
		}
	}
	return found
}

func unlinked(entries []*bib.Entry, links map[string]string, owner string) []Unlinked {
	known := lo.Keys(links)
	sort.Strings(known)

	var found []Unlinked
	seen := make(map[string]bool)
	for _, e := range entries {
		for _, p := range e.Authors {
			name := p.Name()
			if name == owner || seen[name] {
				continue
			}
			if _, ok := links[name]; ok {
				continue
			}
			seen[name] = true
			found = append(found, Unlinked{
				Entry:      e.Key,
				Name:       name,
				Suggestion: suggest(name, known),
			})
		}
	}
	return found
}

// squeeze keeps only the letters of a name, so that initials and
// punctuation do not prevent a match.
func squeeze(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, name)
}

// suggest returns the known name closest to name, or an empty string.
func suggest(name string, known []string) string {
	if len(known) == 0 {
		return ""
	}

	source := squeeze(name)
	targets := lo.Map(known, func(k string, _ int) string { return squeeze(k) })

	ranks := fuzzy.RankFindNormalizedFold(source, targets)
	for i, t := range targets {
		if fuzzy.MatchNormalizedFold(t, source) {
			ranks = append(ranks, fuzzy.Rank{
				Source:        t,
				Target:        source,
				Distance:      fuzzy.LevenshteinDistance(t, source),
				OriginalIndex: i,
			})
		}
	}
	if len(ranks) == 0 {
		return ""
	}

	sort.Stable(ranks)
	return known[ranks[0].OriginalIndex]
}

func videos(entries []*bib.Entry) []Video {
	var found []Video
	for _, e := range entries {
		url, ok := e.Field("video").Get()
		if !ok {
			continue
		}
		url = strings.TrimSpace(url)
		if video.Classify(url).Kind() == video.KindUnknown {
			found = append(found, Video{Entry: e.Key, URL: url})
		}
	}
	return found
}

// assets reports image paths relative to the output directory that are missing.
func assets(entries []*bib.Entry, root string) []Asset {
	var found []Asset
	for _, e := range entries {
		img, ok := e.Field("img").Get()
		if !ok || strings.Contains(img, "://") || strings.HasPrefix(img, "//") {
			continue
		}
		path := filepath.Join(root, filepath.FromSlash(img))
		if exists, err := filesystem.API().Exists(path); err == nil && !exists {
			found = append(found, Asset{Entry: e.Key, Path: img})
		}
	}
	return found
}

// document validates the structure of the rendered page.
func document(data []byte) []string {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return []string{fmt.Sprintf("page does not parse: %s", err)}
	}

	var (
		problems []string
		titles   int
		walk     func(*html.Node)
	)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				titles++
			case "iframe", "source":
				if attr(n, "src") == "" {
					problems = append(problems, fmt.Sprintf("<%s> without src", n.Data))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if titles != 1 {
		problems = append(problems, fmt.Sprintf("page has %d <title> elements, want 1", titles))
	}
	return problems
}

func attr(n *html.Node, key string) string {
	a, _ := lo.Find(n.Attr, func(a html.Attribute) bool { return a.Key == key })
	return a.Val
}
