// Package notify delivers broadcast notification email to targeted users.
package notify

import (
	"gopkg.in/gomail.v2"

	"alumnihub/internal/config"
)

// Notification is a single outgoing email.
type Notification struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers one notification synchronously.
type Sender interface {
	Send(n Notification) error
}

// Queue accepts notifications for asynchronous, best-effort delivery.
// Enqueue reports whether the notification was accepted; a full queue drops it.
type Queue interface {
	Enqueue(n Notification) bool
}

// SMTPSender delivers notifications over SMTP using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender from SMTP configuration.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

var _ Sender = (*SMTPSender)(nil)

// Send dials the SMTP server and delivers the message.
func (s *SMTPSender) Send(n Notification) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/plain", n.Body)
	return s.dialer.DialAndSend(m)
}
