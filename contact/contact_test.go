package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/key"
	"github.com/samber/lo"
	"github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

var filled = Form{Name: "Ada", Email: "ada@example.com", Message: "Shoot next week?"}

func TestValidate(t *testing.T) {
	convey.Convey("Validate", t, func() {
		convey.So(filled.Validate(), convey.ShouldBeNil)
		convey.So(Form{Name: " Ada ", Email: " ada@example.com ", Message: "hi"}.Validate(), convey.ShouldBeNil)

		err := Form{Name: "  ", Email: "ada@example.com"}.Validate()
		convey.So(errors.Is(err, ErrInvalid), convey.ShouldBeTrue)
		convey.So(err.Error(), convey.ShouldContainSubstring, "name, message")

		convey.So(errors.Is(Form{Name: "Ada", Email: "not-an-address", Message: "hi"}.Validate(), ErrInvalid), convey.ShouldBeTrue)
		convey.So(errors.Is(Form{Name: "Ada", Email: "Ada <ada@example.com>", Message: "hi"}.Validate(), ErrInvalid), convey.ShouldBeTrue)
	})
}

func TestModel(t *testing.T) {
	convey.Convey("Given a model with every field filled", t, func() {
		m := &Model{ResetDelay: 5 * time.Second, Owner: "Josh", Fallback: "josh@example.com"}
		m.Form = filled

		attempt, err := m.Submit()
		convey.So(err, convey.ShouldBeNil)
		convey.So(m.Status, convey.ShouldEqual, Submitting)
		convey.So(attempt.Form, convey.ShouldResemble, filled)

		convey.Convey("A second submit while submitting should be rejected", func() {
			_, err := m.Submit()
			convey.So(err, convey.ShouldEqual, ErrBusy)
			convey.So(m.Status, convey.ShouldEqual, Submitting)
		})

		convey.Convey("Success should clear the fields and return to idle after the delay", func() {
			reset, ok := m.Complete(attempt.Seq, nil)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(reset.Delay, convey.ShouldEqual, 5*time.Second)
			convey.So(m.Status, convey.ShouldEqual, Success)
			convey.So(m.Form.IsZero(), convey.ShouldBeTrue)
			convey.So(m.Message(), convey.ShouldEqual, "Message sent successfully! Josh will get back to you soon.")

			convey.So(m.Reset(reset.Seq), convey.ShouldBeTrue)
			convey.So(m.Status, convey.ShouldEqual, Idle)
			convey.So(m.Message(), convey.ShouldBeEmpty)
		})

		convey.Convey("Failure should keep the input and name the fallback address", func() {
			_, ok := m.Complete(attempt.Seq, ErrSubmissionFailed)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(m.Status, convey.ShouldEqual, Error)
			convey.So(m.Form, convey.ShouldResemble, filled)
			convey.So(m.Message(), convey.ShouldContainSubstring, "josh@example.com")
		})

		convey.Convey("A reset from an older submission should be ignored", func() {
			first, _ := m.Complete(attempt.Seq, ErrSubmissionFailed)

			second, err := m.Submit()
			convey.So(err, convey.ShouldBeNil)
			convey.So(m.Reset(first.Seq), convey.ShouldBeFalse)
			convey.So(m.Status, convey.ShouldEqual, Submitting)

			_, ok := m.Complete(first.Seq, nil)
			convey.So(ok, convey.ShouldBeFalse)

			_, ok = m.Complete(second.Seq, nil)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(m.Reset(first.Seq), convey.ShouldBeFalse)
			convey.So(m.Status, convey.ShouldEqual, Success)
		})
	})

	convey.Convey("Given an incomplete form", t, func() {
		m := &Model{Form: Form{Name: "Ada"}}

		convey.Convey("Submit should fail validation and stay idle", func() {
			_, err := m.Submit()
			convey.So(errors.Is(err, ErrInvalid), convey.ShouldBeTrue)
			convey.So(m.Status, convey.ShouldEqual, Idle)
		})
	})

	convey.Convey("NewModel should read settings", t, func() {
		viper.Set(key.ServerSite, "Josh Gutie")
		viper.Set(key.ContactResetDelay, 5)
		m := NewModel()
		convey.So(m.Owner, convey.ShouldEqual, "Josh")
		convey.So(m.ResetDelay, convey.ShouldEqual, 5*time.Second)
	})
}

func TestWebhook(t *testing.T) {
	convey.Convey("Given a webhook endpoint", t, func() {
		var got Form
		status := http.StatusAccepted
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(status)
		}))
		defer srv.Close()
		w := &Webhook{URL: srv.URL, Client: srv.Client()}

		convey.Convey("A 2xx answer should succeed with the JSON body", func() {
			convey.So(w.Submit(context.Background(), filled), convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, filled)
		})

		convey.Convey("Any other answer should fail once without retry", func() {
			status = http.StatusBadGateway
			err := w.Submit(context.Background(), filled)
			convey.So(errors.Is(err, ErrSubmissionFailed), convey.ShouldBeTrue)
			convey.So(calls, convey.ShouldEqual, 1)
		})
	})
}

func TestInbox(t *testing.T) {
	convey.Convey("Given a file inbox", t, func() {
		inbox := &Inbox{Path: "/config/inbox.jsonl"}

		convey.Convey("Each submission should append one JSON line", func() {
			convey.So(inbox.Submit(context.Background(), filled), convey.ShouldBeNil)
			convey.So(inbox.Submit(context.Background(), filled), convey.ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(string(lo.Must(filesystem.API().ReadFile(inbox.Path)))), "\n")
			convey.So(lines, convey.ShouldHaveLength, 2)

			var msg Message
			convey.So(json.Unmarshal([]byte(lines[0]), &msg), convey.ShouldBeNil)
			convey.So(msg.ID, convey.ShouldNotBeEmpty)
			convey.So(msg.Form, convey.ShouldResemble, filled)
		})
	})

	convey.Convey("Default should pick the inbox without an endpoint", t, func() {
		viper.Set(key.ContactEndpoint, "")
		_, ok := Default().(*Inbox)
		convey.So(ok, convey.ShouldBeTrue)

		viper.Set(key.ContactEndpoint, "https://hooks.example.com/contact")
		defer viper.Set(key.ContactEndpoint, "")
		_, ok = Default().(*Webhook)
		convey.So(ok, convey.ShouldBeTrue)
	})
}
