package network

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio-cli/folio/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the user agent", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.UserAgent()))
		}))
		defer srv.Close()

		Convey("Requests without one should carry the application user agent", func() {
			req, err := NewRequest(context.Background(), http.MethodGet, srv.URL, nil)
			So(err, ShouldBeNil)
			res, err := Client.Do(req)
			So(err, ShouldBeNil)
			defer res.Body.Close()
			body, _ := io.ReadAll(res.Body)
			So(string(body), ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit user agent should be kept", func() {
			req, _ := NewRequest(context.Background(), http.MethodGet, srv.URL, nil)
			req.Header.Set("User-Agent", "probe")
			res, err := Client.Do(req)
			So(err, ShouldBeNil)
			defer res.Body.Close()
			body, _ := io.ReadAll(res.Body)
			So(string(body), ShouldEqual, "probe")
		})
	})
}
