// Package mail sends email over SMTP through gomail.
//
// Usage:
//
//	m := mail.New(mail.SMTP{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", From: "shop@example.com"})
//	err := m.Send(mail.To("owner@example.com").
//	    Subject("New contact message").
//	    Text("Hello"))
//
// A Mailer without credentials is disabled: Send returns ErrDisabled and
// nothing is dialled.
package mail

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrDisabled is returned by Send when SMTP credentials are not configured.
var ErrDisabled = errors.New("mail: sending disabled (MAIL_USERNAME not configured)")

// SMTP holds connection credentials.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender is implemented by Mailer and by test doubles.
type Sender interface {
	Send(msg *Message) error
}

// Mailer delivers messages through a gomail dialer.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New builds a Mailer. Without a username the mailer is disabled.
func New(cfg SMTP) *Mailer {
	m := &Mailer{from: cfg.From}
	if cfg.Username == "" {
		return m
	}
	if m.from == "" {
		m.from = cfg.Username
	}
	m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return m
}

// Enabled reports whether Send will actually dial.
func (m *Mailer) Enabled() bool { return m.dialer != nil }

// Send delivers msg.
func (m *Mailer) Send(msg *Message) error {
	if m.dialer == nil {
		return ErrDisabled
	}
	if err := m.dialer.DialAndSend(msg.build(m.from)); err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	return nil
}

// Message is a fluent builder for an email.
type Message struct {
	to      []string
	replyTo string
	subject string
	body    string
	isHTML  bool
}

// To starts a message to the given recipients.
func To(addresses ...string) *Message {
	return &Message{to: addresses}
}

func (m *Message) Subject(s string) *Message {
	m.subject = s
	return m
}

// ReplyTo sets the Reply-To header.
func (m *Message) ReplyTo(addr string) *Message {
	m.replyTo = addr
	return m
}

// Body sets an HTML body.
func (m *Message) Body(html string) *Message {
	m.body = html
	m.isHTML = true
	return m
}

// Text sets a plain-text body.
func (m *Message) Text(text string) *Message {
	m.body = text
	m.isHTML = false
	return m
}

// Recipients returns the To addresses.
func (m *Message) Recipients() []string { return m.to }

func (m *Message) SubjectLine() string { return m.subject }

func (m *Message) Content() string { return m.body }

func (m *Message) build(from string) *gomail.Message {
	g := gomail.NewMessage()
	g.SetHeader("From", from)
	g.SetHeader("To", m.Recipients()...)
	if m.replyTo != "" {
		g.SetHeader("Reply-To", m.replyTo)
	}
	g.SetHeader("Subject", m.SubjectLine())

	contentType := "text/plain"
	if m.isHTML {
		contentType = "text/html"
	}
	g.SetBody(contentType, m.Content())
	return g
}
