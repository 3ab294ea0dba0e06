package mail

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledWithoutUsername(t *testing.T) {
	m := New(SMTP{Host: "smtp.example.com", Port: 587})
	assert.False(t, m.Enabled())
	assert.ErrorIs(t, m.Send(To("owner@example.com").Text("hi")), ErrDisabled)
}

func TestFromFallsBackToUsername(t *testing.T) {
	m := New(SMTP{Host: "smtp.example.com", Port: 587, Username: "shop@example.com", Password: "x"})
	assert.True(t, m.Enabled())
	assert.Equal(t, "shop@example.com", m.from)
}

func TestBuildHeaders(t *testing.T) {
	msg := To("owner@example.com").
		Subject("New contact message from Jane").
		ReplyTo("jane@example.com").
		Text("Do you print banners?")

	var buf bytes.Buffer
	_, err := msg.build("shop@example.com").WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "From: shop@example.com")
	assert.Contains(t, raw, "To: owner@example.com")
	assert.Contains(t, raw, "Reply-To: jane@example.com")
	assert.Contains(t, raw, "Subject: New contact message from Jane")
	assert.Contains(t, raw, "Content-Type: text/plain")
	assert.Contains(t, raw, "Do you print banners?")
}

func TestHTMLBody(t *testing.T) {
	var buf bytes.Buffer
	_, err := To("a@example.com").Body("<p>hi</p>").build("b@example.com").WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Content-Type: text/html")
}
