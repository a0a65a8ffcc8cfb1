package smtp

import (
	"fmt"
	"net/smtp"
)

// Mailer sends emails.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// Options carries the SMTP connection settings. An empty Username means
// connect unauthenticated, which is what local dev catch-all servers
// (MailHog and friends) expect.
type Options struct {
	Host     string
	Port     string
	From     string
	Username string
	Password string
}

type mailer struct {
	opts Options
}

func NewMailer(opts Options) Mailer {
	return &mailer{opts: opts}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.opts.From, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.opts.Host, m.opts.Port)

	var auth smtp.Auth
	if m.opts.Username != "" {
		auth = smtp.PlainAuth("", m.opts.Username, m.opts.Password, m.opts.Host)
	}

	return smtp.SendMail(addr, auth, m.opts.From, []string{to}, []byte(msg))
}
