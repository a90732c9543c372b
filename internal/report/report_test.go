package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/imeis/lastfm/pkg/lastfm"
)

type fakeSender struct {
	sent   *mail.SGMailV3
	status int
	err    error
}

func (f *fakeSender) Send(email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = email
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status}, nil
}

func testSnapshot() *lastfm.LibrarySnapshot {
	return &lastfm.LibrarySnapshot{
		Artists: []lastfm.ArtistSummary{{Name: "Low", Plays: 500}},
		Tags:    []lastfm.NameURL{{Name: "slowcore"}},
	}
}

func TestMailer_SendSnapshot(t *testing.T) {
	fake := &fakeSender{status: 202}
	mailer := &Mailer{from: "reports@example.com", client: fake}

	if err := mailer.SendSnapshot("alice@example.com", "alice", testSnapshot(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fake.sent == nil {
		t.Fatal("expected a message to be sent")
	}
	if got := fake.sent.Subject; !strings.Contains(got, "alice") {
		t.Errorf("expected subject to name the user, got %q", got)
	}
	if len(fake.sent.Content) == 0 || !strings.Contains(fake.sent.Content[0].Value, "Low") {
		t.Error("expected rendered snapshot in the body")
	}
}

func TestMailer_SendSnapshot_BadStatus(t *testing.T) {
	fake := &fakeSender{status: 401}
	mailer := &Mailer{from: "reports@example.com", client: fake}

	if err := mailer.SendSnapshot("alice@example.com", "alice", testSnapshot(), 10); err == nil {
		t.Fatal("expected error for non-2xx delivery status")
	}
}

func TestMailer_SendSnapshot_SendError(t *testing.T) {
	fake := &fakeSender{err: fmt.Errorf("network down")}
	mailer := &Mailer{from: "reports@example.com", client: fake}

	if err := mailer.SendSnapshot("alice@example.com", "alice", testSnapshot(), 10); err == nil {
		t.Fatal("expected error to propagate")
	}
}
