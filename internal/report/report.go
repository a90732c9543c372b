// Package report composes library reports and delivers them by email.
package report

import (
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/imeis/lastfm/internal/render"
	"github.com/imeis/lastfm/pkg/lastfm"
)

// sender is the slice of the SendGrid client the mailer needs.
type sender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// Mailer delivers library reports through SendGrid.
type Mailer struct {
	from   string
	client sender
}

// NewMailer creates a mailer sending from the given address.
func NewMailer(apiKey, from string) *Mailer {
	return &Mailer{
		from:   from,
		client: sendgrid.NewSendClient(apiKey),
	}
}

// SendSnapshot renders a library snapshot and emails it.
func (m *Mailer) SendSnapshot(to, user string, snapshot *lastfm.LibrarySnapshot, top int) error {
	subject := fmt.Sprintf("Last.fm library report for %s", user)
	body := render.Snapshot(snapshot, top)

	from := mail.NewEmail("lastfm", m.from)
	toAddr := mail.NewEmail(to, to)
	message := mail.NewSingleEmail(from, subject, toAddr, body, "<pre>"+body+"</pre>")

	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("sending report: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sending report: unexpected status %d", resp.StatusCode)
	}
	return nil
}
