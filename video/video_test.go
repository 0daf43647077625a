package video

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given YouTube URLs", t, func() {
		Convey("A short link takes the ID from the path", func() {
			So(Classify("https://youtu.be/abc123"), ShouldResemble, YouTube{ID: "abc123"})
		})

		Convey("A watch link takes the v parameter and ignores the rest", func() {
			So(Classify("https://www.youtube.com/watch?v=abc123&t=5"), ShouldResemble, YouTube{ID: "abc123"})
		})

		Convey("Repeated v parameters keep the first non-empty one", func() {
			So(Classify("https://www.youtube.com/watch?v=&v=first&v=second"), ShouldResemble, YouTube{ID: "first"})
		})

		Convey("An embed link takes the first segment after /embed/", func() {
			So(Classify("https://www.youtube.com/embed/abc123/"), ShouldResemble, YouTube{ID: "abc123"})
			So(Classify("https://www.youtube.com/embed/abc123/extra"), ShouldResemble, YouTube{ID: "abc123"})
		})

		Convey("An empty embed segment falls back to the v parameter", func() {
			So(Classify("https://www.youtube.com/embed/?v=xyz"), ShouldResemble, YouTube{ID: "xyz"})
		})

		Convey("Matching is case-insensitive", func() {
			So(Classify("https://WWW.YOUTUBE.COM/watch?v=Ab_9"), ShouldResemble, YouTube{ID: "Ab_9"})
			So(Classify("https://YOUTU.BE/Ab_9").Kind(), ShouldEqual, KindYouTube)
		})

		Convey("Paths are matched as written, without percent-decoding", func() {
			So(Classify("https://youtu.be/abc%2Fdef"), ShouldResemble, YouTube{ID: "abc%2Fdef"})
			So(Classify("https://www.youtube.com/embed%2Fabc123"), ShouldResemble, Unknown{URL: "https://www.youtube.com/embed%2Fabc123"})
		})

		Convey("Semicolons do not split query parameters", func() {
			So(Classify("https://www.youtube.com/watch?v=abc;t=5"), ShouldResemble, YouTube{ID: "abc;t=5"})
			So(Classify("https://www.youtube.com/watch?feature=share&v=a%2Bb"), ShouldResemble, YouTube{ID: "a+b"})
			So(Classify("https://www.youtube.com/watch?v=abc%zz"), ShouldResemble, YouTube{ID: "abc%zz"})
		})

		Convey("IDs are not validated", func() {
			So(Classify("https://www.youtube.com/embed/not a real id!"), ShouldResemble, YouTube{ID: "not a real id!"})
		})

		Convey("No extractable ID degrades to Unknown", func() {
			So(Classify("https://www.youtube.com/watch?x=1"), ShouldResemble, Unknown{URL: "https://www.youtube.com/watch?x=1"})
			So(Classify("https://youtu.be/"), ShouldResemble, Unknown{URL: "https://youtu.be/"})
		})

		Convey("Unparseable URLs degrade to Unknown", func() {
			raw := "https://www.youtube.com/watch?v=abc%zz\x7f"
			So(Classify(raw), ShouldResemble, Unknown{URL: raw})
		})

		Convey("A YouTube URL with a video extension stays on the YouTube rule", func() {
			So(Classify("https://youtube.com/watch?x=clip.mp4").Kind(), ShouldEqual, KindUnknown)
		})
	})

	Convey("Given Vimeo URLs", t, func() {
		Convey("The last path segment is the ID", func() {
			So(Classify("https://vimeo.com/76979871"), ShouldResemble, Vimeo{ID: "76979871"})
		})

		Convey("Trailing slashes are ignored", func() {
			So(Classify("https://vimeo.com/76979871/"), ShouldResemble, Vimeo{ID: "76979871"})
		})

		Convey("The query string is dropped", func() {
			So(Classify("https://vimeo.com/channels/staffpicks/76979871?autoplay=1"), ShouldResemble, Vimeo{ID: "76979871"})
		})
	})

	Convey("Given direct file URLs", t, func() {
		Convey("Each supported extension is recognized", func() {
			So(Classify("https://example.com/a.mp4"), ShouldResemble, File{URL: "https://example.com/a.mp4", Ext: "mp4"})
			So(Classify("https://example.com/a.webm"), ShouldResemble, File{URL: "https://example.com/a.webm", Ext: "webm"})
			So(Classify("https://example.com/a.ogg"), ShouldResemble, File{URL: "https://example.com/a.ogg", Ext: "ogg"})
		})

		Convey("Extension matching ignores case but keeps the URL", func() {
			So(Classify("https://example.com/clip.MP4"), ShouldResemble, File{URL: "https://example.com/clip.MP4", Ext: "mp4"})
		})

		Convey("Other extensions are unknown", func() {
			So(Classify("https://example.com/clip.mov").Kind(), ShouldEqual, KindUnknown)
			So(Classify("https://example.com/clip.mp4?dl=1").Kind(), ShouldEqual, KindUnknown)
		})
	})

	Convey("Kind names are stable", t, func() {
		So(KindUnknown.String(), ShouldEqual, "unknown")
		So(KindYouTube.String(), ShouldEqual, "youtube")
		So(KindVimeo.String(), ShouldEqual, "vimeo")
		So(KindFile.String(), ShouldEqual, "file")
		So(Kind(7).String(), ShouldEqual, "unknown")
		So(Kind(-1).String(), ShouldEqual, "unknown")
	})
}

func TestRender(t *testing.T) {
	Convey("Render is total", t, func() {
		for _, raw := range []string{
			"",
			" ",
			"youtube.com",
			"vimeo.com",
			".mp4",
			"::::",
			"https://www.youtube.com/watch?v=abc%zz\x7f",
			"\x00\xff",
		} {
			So(Render(raw, DefaultOptions()), ShouldNotBeEmpty)
		}
	})

	Convey("Given a YouTube URL", t, func() {
		out := Render("https://youtu.be/abc123", DefaultOptions())

		Convey("It embeds the player with fixed parameters", func() {
			So(out, ShouldContainSubstring, `<iframe class="embed-responsive-item"`)
			So(out, ShouldContainSubstring, `src="https://www.youtube.com/embed/abc123?rel=0&amp;modestbranding=1&amp;autoplay=1&amp;mute=1&amp;playsinline=1&amp;loop=1"`)
			So(out, ShouldContainSubstring, `allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"`)
			So(out, ShouldContainSubstring, `allowfullscreen loading="lazy"`)
		})

		Convey("It uses the layout from the options", func() {
			So(out, ShouldContainSubstring, `class="embed-responsive embed-responsive-16by9 my-2"`)

			thumb := Render("https://youtu.be/abc123", ThumbnailOptions())
			So(thumb, ShouldContainSubstring, `class="embed-responsive embed-responsive-4by3 my-0"`)
		})
	})

	Convey("Given a YouTube watch URL", t, func() {
		out := Render("https://www.youtube.com/watch?v=abc123&t=5", DefaultOptions())
		So(out, ShouldContainSubstring, `src="https://www.youtube.com/embed/abc123?`)
	})

	Convey("Given a YouTube embed URL", t, func() {
		out := Render("https://www.youtube.com/embed/abc123/", DefaultOptions())
		So(out, ShouldContainSubstring, `src="https://www.youtube.com/embed/abc123?`)
	})

	Convey("Given Vimeo URLs", t, func() {
		out := Render("https://vimeo.com/76979871", DefaultOptions())
		So(out, ShouldContainSubstring, `src="https://player.vimeo.com/video/76979871"`)
		So(out, ShouldContainSubstring, `allow="autoplay; fullscreen; picture-in-picture"`)
		So(Render("https://vimeo.com/76979871/", DefaultOptions()), ShouldEqual, out)
	})

	Convey("Given a direct file URL", t, func() {
		out := Render("https://example.com/clip.MP4", DefaultOptions())

		So(out, ShouldContainSubstring, `<video class="img-fluid my-2" controls preload="metadata">`)
		So(out, ShouldContainSubstring, `src="https://example.com/clip.MP4"`)
		So(out, ShouldContainSubstring, "Your browser does not support the video tag.")
		So(out, ShouldNotContainSubstring, "<iframe")

		Convey("A media height caps the player", func() {
			capped := Render("https://example.com/clip.webm", Options{Ratio: Ratio4by3, Margin: "my-0", MediaHeight: 180})
			So(capped, ShouldContainSubstring, `style="max-height: 180px;"`)
		})
	})

	Convey("Given an unrecognized URL", t, func() {
		out := Render("https://example.com/page", DefaultOptions())
		So(out, ShouldEqual, `<a href="https://example.com/page" target="_blank">Video</a>`)
	})

	Convey("Given a YouTube URL without an ID", t, func() {
		out := Render("https://www.youtube.com/watch?x=1", DefaultOptions())
		So(out, ShouldStartWith, `<a href="https://www.youtube.com/watch?x=1"`)
		So(strings.Contains(out, "<iframe"), ShouldBeFalse)
	})

	Convey("Unsafe URLs are neutralized in the fallback link", t, func() {
		out := Render("javascript:alert(1)", DefaultOptions())
		So(out, ShouldNotContainSubstring, "javascript:")
		So(out, ShouldContainSubstring, `href="#ZgotmplZ"`)
		So(out, ShouldContainSubstring, ">Video</a>")
	})
}

func TestParseRatio(t *testing.T) {
	Convey("ParseRatio", t, func() {
		r, ok := ParseRatio("4by3")
		So(ok, ShouldBeTrue)
		So(r, ShouldEqual, Ratio4by3)

		_, ok = ParseRatio("3by2")
		So(ok, ShouldBeFalse)
	})
}
