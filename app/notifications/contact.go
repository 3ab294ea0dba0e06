package notifications

import (
	"context"
	"fmt"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/pkg/logger"
	"github.com/bedjos/storefront/pkg/notification"
)

// ContactReceived tells the shop owner about a new contact message.
type ContactReceived struct {
	Message models.ContactMessage
}

func (n *ContactReceived) Via() []string { return []string{notification.ChannelMail} }

func (n *ContactReceived) ToMail() notification.MailData {
	m := n.Message
	phone := m.Phone
	if phone == "" {
		phone = "Not provided"
	}

	return notification.MailData{
		Subject: fmt.Sprintf("New Contact Message from %s", m.Name),
		ReplyTo: m.Email,
		Text: fmt.Sprintf(`New contact message received:

Name: %s
Email: %s
Phone: %s

Message:
%s

Sent at: %s
`, m.Name, m.Email, phone, m.Message, m.CreatedAt.Format("2006-01-02 15:04:05")),
	}
}

// ContactNotifier sends ContactReceived through a dispatcher.
type ContactNotifier struct {
	dispatcher *notification.Dispatcher
}

func NewContactNotifier(d *notification.Dispatcher) *ContactNotifier {
	return &ContactNotifier{dispatcher: d}
}

// ContactReceived queues the notification. A full queue drops it.
func (c *ContactNotifier) ContactReceived(ctx context.Context, msg models.ContactMessage) {
	if err := c.dispatcher.Send(ctx, &ContactReceived{Message: msg}); err != nil {
		logger.WithCtx(ctx).Warn("contact notification dropped", "contact_id", msg.ID, "error", err)
	}
}
