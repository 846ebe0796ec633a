package mailer

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email. Registration treats delivery as
// best-effort: errors are logged by the caller, never surfaced to the user.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer delivers mail over SMTP
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a single HTML email
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.username == "" {
		return errors.New("smtp credentials not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

// VerificationEmail builds the subject and body for the sign-up email.
// The link embeds the one-time verification token.
func VerificationEmail(baseURL, token string) (subject, body string) {
	subject = "Verify Your Email - Void's Laboratory"
	body = fmt.Sprintf(`
		<h2>Welcome to Void's Laboratory!</h2>
		<p>Please verify your email by clicking the link below:</p>
		<a href="%s/verify?token=%s">Verify Email</a>
	`, baseURL, token)
	return subject, body
}
