package services

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer abstracts outgoing mail so contact submissions never depend on SMTP
// availability in tests.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host, port, user, pass string) *SMTPMailer {
	if host == "" {
		return &SMTPMailer{}
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		p = 587
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, p, user, pass),
		from:   user,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		return fmt.Errorf("mailer is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
