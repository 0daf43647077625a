package config

import (
	"errors"
	"testing"

	"github.com/scholarpage/scholarpage/key"
	. "github.com/smartystreets/goconvey/convey"
)

func parse(k string, values ...string) (any, error) {
	field := Default[k]
	return field.Parse(values)
}

func TestParse(t *testing.T) {
	Convey("Values are converted to the type of the default", t, func() {
		v, err := parse(key.MediaHeight, "240")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 240)

		v, err = parse(key.BuildTalks, "true")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parse(key.BuildOutput, "site/index.html")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "site/index.html")
	})

	Convey("Malformed values are rejected", t, func() {
		_, err := parse(key.MediaHeight, "tall")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.MediaHeight)

		_, err = parse(key.BuildTalks, "maybe")
		So(err, ShouldNotBeNil)

		_, err = parse(key.BuildOutput)
		So(err, ShouldNotBeNil)
	})

	Convey("Integer settings are bounded", t, func() {
		_, err := parse(key.MediaHeight, "-1")
		So(err, ShouldNotBeNil)

		_, err = parse(key.MediaHeight, "100000")
		So(err, ShouldNotBeNil)

		v, err := parse(key.MediaHeight, "0")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 0)

		_, err = parse(key.WatchDebounceMS, "-5")
		So(err, ShouldNotBeNil)
	})

	Convey("Enumerated settings only accept their options", t, func() {
		v, err := parse(key.MediaRatio, "16by9")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "16by9")

		_, err = parse(key.MediaRatio, "3by2")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "21by9")

		_, err = parse(key.IconsVariant, "sparkles")
		So(err, ShouldNotBeNil)

		_, err = parse(key.LogsLevel, "verbose")
		So(err, ShouldNotBeNil)

		v, err = parse(key.LogsLevel, "debug")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "debug")
	})

	Convey("Every default passes its own checks", t, func() {
		for _, field := range Default {
			for _, c := range field.checks {
				So(c(field.Value), ShouldBeNil)
			}
		}
	})
}

func TestLookup(t *testing.T) {
	Convey("Registered keys are found", t, func() {
		field, err := Lookup(key.MediaRatio)
		So(err, ShouldBeNil)
		So(field.Key, ShouldEqual, key.MediaRatio)
	})

	Convey("Unknown keys suggest the closest registered key", t, func() {
		_, err := Lookup("media.heigth")
		So(err, ShouldNotBeNil)

		var unknown *UnknownKeyError
		So(errors.As(err, &unknown), ShouldBeTrue)
		So(unknown.Key, ShouldEqual, "media.heigth")
		So(unknown.Closest, ShouldEqual, key.MediaHeight)
		So(err.Error(), ShouldContainSubstring, "did you mean media.height?")
	})
}
