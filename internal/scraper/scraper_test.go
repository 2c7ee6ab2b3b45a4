package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio-cli/folio/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPreCompileAndLoad(t *testing.T) {
	Convey("Given a script on disk", t, func() {
		lo.Must0(filesystem.API().WriteFile("/sources/answer.lua", []byte(`answer = 42`), 0o644))
		defer Forget("/sources/answer.lua")

		Convey("It should run and be served from the cache afterwards", func() {
			L := lua.NewState()
			defer L.Close()
			So(PreCompileAndLoad(L, "/sources/answer.lua"), ShouldBeNil)
			So(L.GetGlobal("answer").String(), ShouldEqual, "42")

			lo.Must0(filesystem.API().Remove("/sources/answer.lua"))
			L2 := lua.NewState()
			defer L2.Close()
			So(PreCompileAndLoad(L2, "/sources/answer.lua"), ShouldBeNil)
			So(L2.GetGlobal("answer").String(), ShouldEqual, "42")
		})

		Convey("A syntax error should be reported", func() {
			lo.Must0(filesystem.API().WriteFile("/sources/broken.lua", []byte(`function (`), 0o644))
			L := lua.NewState()
			defer L.Close()
			So(PreCompileAndLoad(L, "/sources/broken.lua"), ShouldNotBeNil)
		})
	})
}

func TestInstall(t *testing.T) {
	Convey("Given a remote script", t, func() {
		body := "function FetchAll(kind) return {} end"
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		defer srv.Close()

		Convey("The first install should write and the second should be a no-op", func() {
			changed, err := Install(context.Background(), srv.URL, "/sources/remote.lua")
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(string(lo.Must(filesystem.API().ReadFile("/sources/remote.lua"))), ShouldEqual, body)

			changed, err = Install(context.Background(), srv.URL, "/sources/remote.lua")
			So(err, ShouldBeNil)
			So(changed, ShouldBeFalse)
		})
	})
}
