package site

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/scholarpage/scholarpage/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestDefault(t *testing.T) {
	Convey("Given the built-in site", t, func() {
		s, err := Default()
		So(err, ShouldBeNil)

		Convey("It names the owner", func() {
			So(s.Name.Full(), ShouldEqual, "Chi-Yao Huang")
		})

		Convey("It carries products, sponsors and co-authors", func() {
			So(len(s.Products), ShouldEqual, 3)
			So(s.Products[0].Contrib, ShouldHaveLength, 3)
			So(len(s.Sponsors.List), ShouldEqual, 2)
			So(s.AuthorLinks()["Zeel Bhatt"], ShouldEqual, "https://zeelbhatt.github.io/")
		})

		Convey("An empty path loads it too", func() {
			loaded, err := Load("")
			So(err, ShouldBeNil)
			So(loaded, ShouldResemble, s)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a yaml site file", t, func() {
		So(filesystem.API().WriteFile("/work/site.yaml", []byte(`
name:
  first: Ada
  last: Lovelace
authors:
  - name: Charles Babbage
    url: https://example.com/babbage
products:
  - name: Analytical Engine
    contrib: [Notes, "Note G"]
`), 0644), ShouldBeNil)

		s, err := Load("/work/site.yaml")
		So(err, ShouldBeNil)
		So(s.Name.Full(), ShouldEqual, "Ada Lovelace")
		So(s.AuthorLinks(), ShouldResemble, map[string]string{"Charles Babbage": "https://example.com/babbage"})
		So(s.Products[0].Contrib, ShouldResemble, []string{"Notes", "Note G"})
	})

	Convey("Given a site file without a name", t, func() {
		So(filesystem.API().WriteFile("/work/noname.toml", []byte("bio = \"hi\"\n"), 0644), ShouldBeNil)

		_, err := Load("/work/noname.toml")
		So(errors.Is(err, ErrNoName), ShouldBeTrue)
	})

	Convey("Given a sponsor without a logo", t, func() {
		So(filesystem.API().WriteFile("/work/sponsor.toml", []byte(`
[name]
first = "Ada"
[[sponsors.list]]
name = "Crown"
`), 0644), ShouldBeNil)

		_, err := Load("/work/sponsor.toml")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "Crown")
	})

	Convey("Given a missing site file", t, func() {
		_, err := Load("/work/missing.toml")
		So(err, ShouldNotBeNil)
	})
}

func TestMarkdown(t *testing.T) {
	Convey("Markdown renders paragraphs and keeps inline HTML", t, func() {
		out, err := Markdown("A **bold** move.\n\nSee <a href=\"https://example.com\">here</a>.")
		So(err, ShouldBeNil)
		So(string(out), ShouldContainSubstring, "<p>A <strong>bold</strong> move.</p>")
		So(string(out), ShouldContainSubstring, `<a href="https://example.com">here</a>`)
	})

	Convey("Inline drops the single enclosing paragraph", t, func() {
		out, err := Inline("Supported by **TRINA**.")
		So(err, ShouldBeNil)
		So(string(out), ShouldEqual, "Supported by <strong>TRINA</strong>.")
	})

	Convey("Inline keeps multiple paragraphs intact", t, func() {
		out, err := Inline("one\n\ntwo")
		So(err, ShouldBeNil)
		So(string(out), ShouldEqual, "<p>one</p>\n<p>two</p>")
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema describes the site file", t, func() {
		data, err := Schema()
		So(err, ShouldBeNil)

		var schema map[string]any
		So(json.Unmarshal(data, &schema), ShouldBeNil)
		So(schema["title"], ShouldEqual, "scholarpage site file")

		props, ok := schema["properties"].(map[string]any)
		So(ok, ShouldBeTrue)
		So(props, ShouldContainKey, "name")
		So(props, ShouldContainKey, "products")
		So(props, ShouldContainKey, "sponsors")
	})
}
