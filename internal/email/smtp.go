// Package email provides SMTP relay email provider.
package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

// SMTPProvider sends mail through a plain SMTP relay (e.g. Gmail with an app
// password on port 587).
type SMTPProvider struct {
	host string
	port int
	user string
	pass string
	from string

	// send is swappable for tests.
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPProvider(host string, port int, user, pass, from string) *SMTPProvider {
	if from == "" {
		from = user
	}
	return &SMTPProvider{
		host: host,
		port: port,
		user: user,
		pass: pass,
		from: from,
		send: smtp.SendMail,
	}
}

// SendEmail relays the email. The context is consulted before dialing;
// net/smtp itself does not support cancellation mid-send.
func (p *SMTPProvider) SendEmail(ctx context.Context, email *Email) error {
	if email == nil {
		return fmt.Errorf("email is required")
	}
	if p.host == "" {
		return fmt.Errorf("smtp host not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if p.user != "" {
		auth = smtp.PlainAuth("", p.user, p.pass, p.host)
	}

	addr := net.JoinHostPort(p.host, strconv.Itoa(p.port))
	msg := buildMessage(p.from, email)
	if err := p.send(addr, auth, p.from, []string{email.To}, msg); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}
	return nil
}

func buildMessage(from string, email *Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.Text)
	return []byte(b.String())
}
