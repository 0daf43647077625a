package video

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// rule recognizes one provider. extract returns false when the URL belongs
// to the provider but no embeddable source can be built from it.
type rule struct {
	match   func(lower string) bool
	extract func(raw string) (Source, bool)
}

// rules are evaluated in order and the first match wins.
var rules = []rule{
	{
		match: func(lower string) bool {
			return strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be")
		},
		extract: youtubeSource,
	},
	{
		match: func(lower string) bool {
			return strings.Contains(lower, "vimeo.com")
		},
		extract: vimeoSource,
	},
	{
		match: func(lower string) bool {
			return lo.SomeBy(fileExtensions, func(ext string) bool {
				return strings.HasSuffix(lower, "."+ext)
			})
		},
		extract: fileSource,
	},
}

var fileExtensions = []string{"mp4", "webm", "ogg"}

// Classify maps raw to the Source it should be rendered as.
func Classify(raw string) Source {
	lower := strings.ToLower(raw)

	for _, r := range rules {
		if !r.match(lower) {
			continue
		}

		if src, ok := r.extract(raw); ok {
			return src
		}
		break
	}

	return Unknown{URL: raw}
}

func youtubeSource(raw string) (Source, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}

	var id string
	if strings.Contains(strings.ToLower(u.Host), "youtu.be") {
		id = strings.TrimLeft(rawPath(u), "/")
	} else {
		if rest, ok := strings.CutPrefix(rawPath(u), "/embed/"); ok {
			id, _, _ = strings.Cut(rest, "/")
		}
		if id == "" {
			id, _ = lo.Find(queryValues(u.RawQuery, "v"), func(v string) bool { return v != "" })
		}
	}

	if id == "" {
		return nil, false
	}
	return YouTube{ID: id}, true
}

// rawPath is the path as written in the URL, without percent-decoding.
func rawPath(u *url.URL) string {
	if u.RawPath != "" {
		return u.RawPath
	}
	return u.Path
}

// queryValues returns the values of key in a raw query string. Pairs are
// separated by '&' only, so a ';' stays part of its value. Values that are
// not valid escapes are kept as written.
func queryValues(query, key string) []string {
	var values []string
	for _, pair := range strings.Split(query, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if unescape(k) == key {
			values = append(values, unescape(v))
		}
	}
	return values
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

func vimeoSource(raw string) (Source, bool) {
	trimmed := strings.TrimRight(raw, "/")
	last := trimmed[strings.LastIndex(trimmed, "/")+1:]
	id, _, _ := strings.Cut(last, "?")
	return Vimeo{ID: id}, true
}

func fileSource(raw string) (Source, bool) {
	lower := strings.ToLower(raw)
	ext, ok := lo.Find(fileExtensions, func(ext string) bool {
		return strings.HasSuffix(lower, "."+ext)
	})
	if !ok {
		return nil, false
	}
	return File{URL: raw, Ext: ext}, true
}
