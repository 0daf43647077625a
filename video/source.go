// Package video classifies video URLs by provider and renders the matching embed markup.
//
// Classification is total: every string maps to exactly one Source, with
// Unknown as the catch-all. Rendering never fails; an Unknown source becomes
// a plain link labeled "Video".
package video

// Kind names the provider shape of a Source.
type Kind int

const (
	KindUnknown Kind = iota
	KindYouTube
	KindVimeo
	KindFile
)

var kindNames = [...]string{"unknown", "youtube", "vimeo", "file"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Source is a classified video URL. The set of implementations is closed.
type Source interface {
	Kind() Kind
	// Target is the URL the rendered markup points at.
	Target() string
	markup(opts Options) string
}

// YouTube is a video hosted on youtube.com or youtu.be.
type YouTube struct {
	ID string
}

func (YouTube) Kind() Kind { return KindYouTube }

func (y YouTube) Target() string {
	return "https://www.youtube.com/embed/" + y.ID + youtubeParams
}

// Vimeo is a video hosted on vimeo.com.
type Vimeo struct {
	ID string
}

func (Vimeo) Kind() Kind { return KindVimeo }

func (v Vimeo) Target() string {
	return "https://player.vimeo.com/video/" + v.ID
}

// File is a video file the browser can play natively.
type File struct {
	URL string
	// Ext is one of mp4, webm or ogg, always lower case.
	Ext string
}

func (File) Kind() Kind { return KindFile }

func (f File) Target() string { return f.URL }

// Unknown is anything else, including URLs of a known provider without a usable video ID.
type Unknown struct {
	URL string
}

func (Unknown) Kind() Kind { return KindUnknown }

func (u Unknown) Target() string { return u.URL }
