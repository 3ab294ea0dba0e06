package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bedjos/storefront/app/models"
)

type recordingNotifier struct {
	got []models.ContactMessage
}

func (r *recordingNotifier) ContactReceived(_ context.Context, msg models.ContactMessage) {
	r.got = append(r.got, msg)
}

func TestContactSubmit(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewContactService(newTestDB(t), notifier)

	msg, err := svc.Submit(ctx, ContactInput{Name: "Jane", Email: "jane@example.com", Message: "Hello"})
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)

	require.Len(t, notifier.got, 1)
	assert.Equal(t, msg.ID, notifier.got[0].ID)

	_, err = svc.Submit(ctx, ContactInput{Name: "Tom", Email: "tom@example.com", Message: "Second"})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Tom", all[0].Name)
}

func TestContactSubmitWithoutNotifier(t *testing.T) {
	_, err := NewContactService(newTestDB(t), nil).Submit(context.Background(), ContactInput{Name: "Jane", Email: "jane@example.com", Message: "Hi"})
	assert.NoError(t, err)
}
