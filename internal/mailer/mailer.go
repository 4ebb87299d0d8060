// Package mailer delivers shared QR codes over SMTP.
package mailer

import (
	"fmt"
	"html"

	"github.com/rishimulani16/QR-Code/internal/models"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender is the transport seam; gomail's Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender Sender
	from   string
	logger *zap.Logger
}

func New(host string, port int, username, password, from string, logger *zap.Logger) *Mailer {
	return &Mailer{
		sender: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

// NewWithSender is used by tests to swap out the SMTP transport.
func NewWithSender(sender Sender, from string, logger *zap.Logger) *Mailer {
	return &Mailer{
		sender: sender,
		from:   from,
		logger: logger,
	}
}

// Send emails the record's image and text to recipientEmail. Delivery is
// at-most-once: a transport failure is returned to the caller, not retried.
func (m *Mailer) Send(qr *models.QRCode, recipientEmail string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipientEmail)
	msg.SetHeader("Subject", "Shared QR Code")
	msg.SetBody("text/html", fmt.Sprintf(
		`<h1>QR Code Shared with You</h1>
<p>Here is the QR Code that was shared with you:</p>
<img src="%s" alt="QR Code" />
<p>Content: %s</p>`,
		qr.ImageURL, html.EscapeString(qr.Text)))

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("QR code shared via email",
		zap.String("qrCodeID", qr.ID),
		zap.String("recipient", recipientEmail))

	return nil
}
