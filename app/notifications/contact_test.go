package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/pkg/notification"
	"github.com/bedjos/storefront/pkg/testkit"
	"github.com/bedjos/storefront/pkg/workerpool"
)

func TestContactReceivedMail(t *testing.T) {
	n := &ContactReceived{Message: models.ContactMessage{
		Name:      "Jane",
		Email:     "jane@example.com",
		Message:   "Do you print banners?",
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}}

	data := n.ToMail()
	assert.Equal(t, "New Contact Message from Jane", data.Subject)
	assert.Equal(t, "jane@example.com", data.ReplyTo)
	assert.Contains(t, data.Text, "Phone: Not provided")
	assert.Contains(t, data.Text, "Do you print banners?")
	assert.Contains(t, data.Text, "Sent at: 2025-03-01 10:00:00")
}

func TestContactNotifierSends(t *testing.T) {
	pool := workerpool.New("notify", 1)
	defer pool.Shutdown()
	mailer := testkit.NewMockMailer()

	notifier := NewContactNotifier(notification.NewDispatcher(pool, mailer, "admin@bedjos.co.ke"))
	notifier.ContactReceived(context.Background(), models.ContactMessage{ID: 1, Name: "Jane", Email: "jane@example.com", Message: "hi"})

	select {
	case <-mailer.Sent():
	case <-time.After(2 * time.Second):
		t.Fatal("notification not sent")
	}
	msgs := mailer.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"admin@bedjos.co.ke"}, msgs[0].Recipients())
}

func TestContactNotifierClosedPoolDoesNotPanic(t *testing.T) {
	pool := workerpool.New("notify", 1)
	pool.Shutdown()

	notifier := NewContactNotifier(notification.NewDispatcher(pool, testkit.NewMockMailer(), "admin@bedjos.co.ke"))
	assert.NotPanics(t, func() {
		notifier.ContactReceived(context.Background(), models.ContactMessage{ID: 2})
	})
}
