// Package notification dispatches notifications in the background.
//
// Define a Notification:
//
//	type OrderShipped struct{ Order models.Order }
//	func (n *OrderShipped) Via() []string { return []string{notification.ChannelMail} }
//	func (n *OrderShipped) ToMail() notification.MailData {
//	    return notification.MailData{Subject: "Your order shipped", Text: "..."}
//	}
//
// Send it:
//
//	dispatcher.Send(ctx, &OrderShipped{Order: o})
//
// Delivery happens on a worker pool. Failures are logged, never returned to
// the caller, so a broken mail server cannot fail the request that caused
// the notification.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/bedjos/storefront/pkg/logger"
	"github.com/bedjos/storefront/pkg/mail"
	"github.com/bedjos/storefront/pkg/workerpool"
)

// ChannelMail is the only channel currently supported.
const ChannelMail = "mail"

// MailData carries the data needed to send an email notification.
type MailData struct {
	To      string // overrides the dispatcher's default recipient if set
	Subject string
	ReplyTo string
	Text    string
}

// Notification is the interface every notification must satisfy.
type Notification interface {
	// Via returns the channel names to deliver on.
	Via() []string
}

// Mailable can be implemented to support the mail channel.
type Mailable interface {
	ToMail() MailData
}

// Dispatcher delivers notifications through a worker pool.
type Dispatcher struct {
	pool      *workerpool.Pool
	mailer    mail.Sender
	defaultTo string
}

// NewDispatcher builds a dispatcher. defaultTo receives mail notifications
// that do not name a recipient.
func NewDispatcher(pool *workerpool.Pool, mailer mail.Sender, defaultTo string) *Dispatcher {
	return &Dispatcher{pool: pool, mailer: mailer, defaultTo: defaultTo}
}

// Send queues n for delivery on every channel it names. It only reports
// queueing failures (pool full or closed).
func (d *Dispatcher) Send(ctx context.Context, n Notification) error {
	log := logger.WithCtx(ctx)

	return d.pool.Submit(func() {
		for _, channel := range n.Via() {
			err := d.dispatch(channel, n)
			switch {
			case err == nil:
				log.Info("notification: delivered", "channel", channel)
			case errors.Is(err, mail.ErrDisabled):
				log.Info("notification: mail disabled, skipped", "channel", channel)
			default:
				log.Error("notification: channel failed", "channel", channel, "error", err)
			}
		}
	})
}

func (d *Dispatcher) dispatch(channel string, n Notification) error {
	switch channel {
	case ChannelMail:
		m, ok := n.(Mailable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Mailable", n)
		}
		data := m.ToMail()

		to := data.To
		if to == "" {
			to = d.defaultTo
		}
		if to == "" {
			return fmt.Errorf("notification: no mail recipient configured")
		}

		msg := mail.To(to).Subject(data.Subject).Text(data.Text)
		if data.ReplyTo != "" {
			msg.ReplyTo(data.ReplyTo)
		}
		return d.mailer.Send(msg)
	default:
		return fmt.Errorf("notification: unknown channel %q", channel)
	}
}
