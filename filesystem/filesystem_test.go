package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("WriteAtomic creates parent directories and the file", func() {
			So(WriteAtomic("/out/site/index.html", []byte("<html></html>"), 0644), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/out/site/index.html"))), ShouldEqual, "<html></html>")
		})

		Convey("WriteAtomic replaces existing content and leaves no staging files", func() {
			So(WriteAtomic("/out/index.html", []byte("old"), 0644), ShouldBeNil)
			So(WriteAtomic("/out/index.html", []byte("new"), 0644), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/out/index.html"))), ShouldEqual, "new")

			entries := lo.Must(API().ReadDir("/out"))
			So(len(entries), ShouldEqual, 1)
		})
	})
}
