package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio-cli/folio/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		cmp := func(a, b string) int {
			c, err := Compare(a, b)
			So(err, ShouldBeNil)
			return c
		}
		So(cmp("1.2.3", "1.2.3"), ShouldEqual, 0)
		So(cmp("v1.3.0", "1.2.9"), ShouldEqual, 1)
		So(cmp("0.3.1", "1.0.0"), ShouldEqual, -1)

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name":"v9.9.9"}`))
		}))
		defer srv.Close()
		ReleasesURL = srv.URL

		Convey("Latest should strip the prefix and cache the answer", func() {
			v, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "9.9.9")

			v, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "9.9.9")
			So(hits, ShouldEqual, 1)
		})
	})
}
