// Package mailer sends the admin a notification email when a new
// contact message arrives. Sending is strictly best-effort: callers log
// failures and never propagate them to the visitor.
package mailer

import (
	"fmt"
	"html"
	"log"

	"Portfolio/pkg/config"

	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers new-message notifications to the admin address.
type Mailer interface {
	SendNewMessageNotification(name, email, body string) error
}

// New returns an SMTP-backed mailer, or a logging no-op when SMTP or
// the admin address is not configured.
func New() Mailer {
	if config.SMTPHost == "" || config.AdminEmail == "" {
		log.Printf("[mailer] disabled (SMTP_HOST or ADMIN_EMAIL not set)")
		return &disabledMailer{}
	}
	return &smtpMailer{
		host:     config.SMTPHost,
		port:     config.SMTPPort,
		user:     config.SMTPUser,
		password: config.SMTPPassword,
		from:     config.MailFrom,
		to:       config.AdminEmail,
	}
}

type smtpMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	to       string
}

func (m *smtpMailer) SendNewMessageNotification(name, email, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Nouveau message de %s", name))
	msg.SetBody("text/html", renderNotification(name, email, body))

	d := gomail.NewDialer(m.host, m.port, m.user, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

func renderNotification(name, email, body string) string {
	return fmt.Sprintf(`<html><body>
<h2>Nouveau message re&ccedil;u</h2>
<p><b>De :</b> %s</p>
<p><b>Email :</b> %s</p>
<p><b>Message :</b></p>
<pre style="white-space:pre-wrap;background:#f3f4f6;padding:12px;border-radius:6px">%s</pre>
</body></html>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(body))
}

type disabledMailer struct{}

func (d *disabledMailer) SendNewMessageNotification(name, email, body string) error {
	log.Printf("[mailer] skipped notification for message from %s <%s>", name, email)
	return nil
}
