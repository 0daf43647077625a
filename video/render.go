package video

import (
	"html/template"
	"strings"

	"github.com/samber/lo"
)

// Ratio is a Bootstrap responsive-embed aspect ratio.
type Ratio string

const (
	Ratio21by9 Ratio = "21by9"
	Ratio16by9 Ratio = "16by9"
	Ratio4by3  Ratio = "4by3"
	Ratio1by1  Ratio = "1by1"
)

// Ratios lists every supported aspect ratio.
func Ratios() []Ratio {
	return []Ratio{Ratio21by9, Ratio16by9, Ratio4by3, Ratio1by1}
}

// ParseRatio returns the Ratio named s, or false if s names none.
func ParseRatio(s string) (Ratio, bool) {
	return lo.Find(Ratios(), func(r Ratio) bool { return string(r) == s })
}

// MediaHeight is the default height cap, in pixels, for native video players.
const MediaHeight = 180

// Options control the layout of rendered markup.
type Options struct {
	Ratio Ratio
	// Margin is the Bootstrap spacing class put on the outermost element.
	Margin string
	// MediaHeight caps the height of native video players. Zero means no cap.
	MediaHeight int
}

// DefaultOptions is the layout for a standalone, full-width video.
func DefaultOptions() Options {
	return Options{Ratio: Ratio16by9, Margin: "my-2"}
}

// ThumbnailOptions is the layout for a video placed next to an entry image.
func ThumbnailOptions() Options {
	return Options{Ratio: Ratio4by3, Margin: "my-0", MediaHeight: MediaHeight}
}

const youtubeParams = "?rel=0&modestbranding=1&autoplay=1&mute=1&playsinline=1&loop=1"

var (
	iframeTemplate = lo.Must(template.New("iframe").Parse(`
<div class="embed-responsive embed-responsive-{{ .Ratio }} {{ .Margin }}">
  <iframe class="embed-responsive-item"
          src="{{ .Src }}"
          allow="{{ .Allow }}"
          allowfullscreen loading="lazy"></iframe>
</div>`))

	fileTemplate = lo.Must(template.New("file").Parse(`
<video class="img-fluid {{ .Margin }}" controls preload="metadata"{{ if .MediaHeight }} style="max-height: {{ .MediaHeight }}px;"{{ end }}>
  <source src="{{ .Src }}" type="video/{{ .Ext }}">
  Your browser does not support the video tag.
</video>`))

	linkTemplate = lo.Must(template.New("link").Parse(`<a href="{{ . }}" target="_blank">Video</a>`))
)

type iframeData struct {
	Options
	Src   string
	Allow string
}

func execute(t *template.Template, data any) string {
	var b strings.Builder
	lo.Must0(t.Execute(&b, data))
	return b.String()
}

func (y YouTube) markup(opts Options) string {
	return execute(iframeTemplate, iframeData{
		Options: opts,
		Src:     y.Target(),
		Allow:   "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture",
	})
}

func (v Vimeo) markup(opts Options) string {
	return execute(iframeTemplate, iframeData{
		Options: opts,
		Src:     v.Target(),
		Allow:   "autoplay; fullscreen; picture-in-picture",
	})
}

func (f File) markup(opts Options) string {
	return execute(fileTemplate, struct {
		Options
		Src string
		Ext string
	}{opts, f.URL, f.Ext})
}

func (u Unknown) markup(Options) string {
	return execute(linkTemplate, u.URL)
}

// Render classifies raw and returns the HTML fragment for it.
// The result is never empty. URLs are escaped for their attribute context,
// so an unsafe scheme such as javascript: in a fallback link is replaced by
// "#ZgotmplZ" instead of being linked.
func Render(raw string, opts Options) string {
	return Classify(raw).markup(opts)
}
