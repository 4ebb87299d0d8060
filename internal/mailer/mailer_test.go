package mailer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/rishimulani16/QR-Code/internal/models"
)

type fakeSender struct {
	sendErr  error
	messages []*gomail.Message
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.messages = append(f.messages, m...)
	return nil
}

func TestSend(t *testing.T) {
	sender := &fakeSender{}
	m := NewWithSender(sender, "service@example.com", zap.NewNop())

	qr := &models.QRCode{
		ID:       "qr-1",
		Text:     "https://example.com",
		ImageURL: "data:image/png;base64,AAAA",
	}

	require.NoError(t, m.Send(qr, "friend@example.com"))
	require.Len(t, sender.messages, 1)

	msg := sender.messages[0]
	assert.Equal(t, []string{"service@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"friend@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Shared QR Code"}, msg.GetHeader("Subject"))

	var body bytes.Buffer
	_, err := msg.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "QR Code Shared with You")
}

func TestSendEscapesContent(t *testing.T) {
	sender := &fakeSender{}
	m := NewWithSender(sender, "service@example.com", zap.NewNop())

	qr := &models.QRCode{
		ID:       "qr-2",
		Text:     "<script>alert(1)</script>",
		ImageURL: "data:image/png;base64,AAAA",
	}

	require.NoError(t, m.Send(qr, "friend@example.com"))
	require.Len(t, sender.messages, 1)

	var body bytes.Buffer
	_, err := sender.messages[0].WriteTo(&body)
	require.NoError(t, err)
	assert.NotContains(t, body.String(), "<script>")
}

func TestSendTransportFailure(t *testing.T) {
	sender := &fakeSender{sendErr: errors.New("connection refused")}
	m := NewWithSender(sender, "service@example.com", zap.NewNop())

	err := m.Send(&models.QRCode{ID: "qr-3", Text: "x", ImageURL: "y"}, "friend@example.com")
	assert.Error(t, err)
}
