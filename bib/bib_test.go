package bib

import (
	"errors"
	"strings"
	"testing"

	"github.com/scholarpage/scholarpage/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

const publications = `
@InProceedings{huang2025latent,
  author    = {Chi-Yao Huang and Zeel Bhatt and Yezhou Yang},
  title     = {Latent {SLAM}: Towards Spatial Foundation Models},
  booktitle = {Conference on Computer Vision and Pattern Recognition},
  year      = {2025},
  html      = {https://example.com/latent},
  pdf       = {https://example.com/latent.pdf},
  video     = {https://youtu.be/abc123},
  img       = {assets/img/latent.jpg},
  award     = {Oral}
}

@Article{bhatt2024,
  Author  = {Bhatt, Zeel and Huang, Chi-Yao},
  Title   = {Second Paper},
  Journal = {Robotics Letters},
  Year    = {2024}
}
`

func TestParse(t *testing.T) {
	Convey("Given a bibliography with two entries", t, func() {
		entries, err := Parse(strings.NewReader(publications))
		So(err, ShouldBeNil)
		So(len(entries), ShouldEqual, 2)

		Convey("Entries keep their file order", func() {
			So(entries[0].Key, ShouldEqual, "huang2025latent")
			So(entries[1].Key, ShouldEqual, "bhatt2024")
		})

		Convey("Types and field names are lower-cased", func() {
			So(entries[0].Type, ShouldEqual, "inproceedings")
			So(entries[1].Type, ShouldEqual, "article")
			So(entries[1].Get("title"), ShouldEqual, "Second Paper")
			So(entries[1].Get("Journal"), ShouldEqual, "Robotics Letters")
		})

		Convey("Case-protecting braces are removed", func() {
			So(entries[0].Get("title"), ShouldEqual, "Latent SLAM: Towards Spatial Foundation Models")
		})

		Convey("Authors are parsed in order", func() {
			names := make([]string, 0, len(entries[0].Authors))
			for _, p := range entries[0].Authors {
				names = append(names, p.Name())
			}
			So(names, ShouldResemble, []string{"Chi-Yao Huang", "Zeel Bhatt", "Yezhou Yang"})
			So(entries[1].Authors[0].Name(), ShouldEqual, "Zeel Bhatt")
		})

		Convey("Optional fields are exposed as options", func() {
			So(entries[0].Field("award").MustGet(), ShouldEqual, "Oral")
			So(entries[1].Field("award").IsAbsent(), ShouldBeTrue)
			So(entries[1].Has("pdf"), ShouldBeFalse)
		})

		Convey("Require reports every missing field", func() {
			So(entries[0].Require("title", "booktitle", "year", "html"), ShouldBeNil)

			err := entries[1].Require("title", "booktitle", "html")
			So(errors.Is(err, ErrMissingField), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "booktitle, html")
			So(err.Error(), ShouldContainSubstring, "bhatt2024")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a bibliography on disk", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/site/publication_list.bib", []byte(publications), 0644), ShouldBeNil)

		Convey("Load reads it through the filesystem backend", func() {
			entries, err := Load("/site/publication_list.bib")
			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 2)
		})

		Convey("Load reports missing files with their path", func() {
			_, err := Load("/site/talk_list.bib")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "/site/talk_list.bib")
		})
	})
}

func TestParsePerson(t *testing.T) {
	Convey("First Last", t, func() {
		p := ParsePerson("Chi-Yao Huang")
		So(p.First, ShouldResemble, []string{"Chi-Yao"})
		So(p.Last, ShouldResemble, []string{"Huang"})
		So(p.Name(), ShouldEqual, "Chi-Yao Huang")
	})

	Convey("Middle names are kept out of the display name", t, func() {
		p := ParsePerson("John Ronald Reuel Tolkien")
		So(p.Middle, ShouldResemble, []string{"Ronald", "Reuel"})
		So(p.Name(), ShouldEqual, "John Tolkien")
		So(p.Full(), ShouldEqual, "John Ronald Reuel Tolkien")
	})

	Convey("von parts are recognized by case", t, func() {
		p := ParsePerson("Ludwig van Beethoven")
		So(p.Prelast, ShouldResemble, []string{"van"})
		So(p.Last, ShouldResemble, []string{"Beethoven"})

		p = ParsePerson("van Beethoven, Ludwig")
		So(p.Prelast, ShouldResemble, []string{"van"})
		So(p.First, ShouldResemble, []string{"Ludwig"})
	})

	Convey("Last, First", t, func() {
		p := ParsePerson("Huang, Chi-Yao")
		So(p.Name(), ShouldEqual, "Chi-Yao Huang")
	})

	Convey("Last, Jr, First", t, func() {
		p := ParsePerson("Ford, Jr., Henry")
		So(p.Lineage, ShouldResemble, []string{"Jr."})
		So(p.Full(), ShouldEqual, "Henry Ford Jr.")
	})

	Convey("A single word is a last name", t, func() {
		p := ParsePerson("Plato")
		So(p.Last, ShouldResemble, []string{"Plato"})
		So(p.Name(), ShouldEqual, "Plato")
	})

	Convey("Lists split on any-case and outside of braces", t, func() {
		persons := ParsePersons("Zeel Bhatt AND {Barnes and Noble} and Yezhou Yang")
		So(len(persons), ShouldEqual, 3)
		So(persons[0].Name(), ShouldEqual, "Zeel Bhatt")
		So(persons[2].Name(), ShouldEqual, "Yezhou Yang")
	})
}
