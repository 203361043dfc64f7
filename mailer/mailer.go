package mailer

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer delivers contact-form notifications. Kept as an interface so
// deployments without SMTP credentials still accept messages.
type Mailer interface {
	Send(subject, body string) error
}

// SMTPMailer sends mail through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTP(host string, port int, user, pass, from, to string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		to:     to,
	}
}

func (m *SMTPMailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Natheme Contact")
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// LogMailer writes the notification to the server log instead of sending
// mail. Used when no SMTP host is configured.
type LogMailer struct{}

func (LogMailer) Send(subject, body string) error {
	log.Printf("[mail] %s :: %s", subject, body)
	return nil
}
