package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"travelbackend/internal/config"
)

// Message is one outbound HTML email. An empty From falls back to the
// sender's configured address.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender dispatches emails through the configured relay. Implementations
// must be safe for concurrent use; tests swap in a fake.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers through a plain SMTP relay (Gmail in production).
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(env config.Env) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(env.SMTPHost, env.SMTPPort, env.SMTPUser, env.SMTPPass),
		from:   env.SMTPFrom,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.dialer.Username == "" || s.dialer.Password == "" {
		return fmt.Errorf("smtp credentials are not configured")
	}

	from := msg.From
	if from == "" {
		from = s.from
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
