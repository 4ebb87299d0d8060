package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rishimulani16/QR-Code/internal/middleware"
	"github.com/rishimulani16/QR-Code/internal/models"
	"github.com/rishimulani16/QR-Code/internal/qrcode"
	"github.com/rishimulani16/QR-Code/internal/repository"
	"github.com/rishimulani16/QR-Code/internal/service"
)

const testPageSize = 6

type fakeMailer struct {
	sendErr error
	sent    []string
}

func (f *fakeMailer) Send(qr *models.QRCode, recipientEmail string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, recipientEmail)
	return nil
}

type testEnv struct {
	router *chi.Mux
	auth   *middleware.AuthMiddleware
	mailer *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	repo := repository.NewMemoryRepository("", logger)
	mail := &fakeMailer{}
	svc := service.NewQRService(repo, qrcode.NewCodec(), mail, testPageSize, logger)
	auth := middleware.NewAuthMiddleware("test-secret-key", logger)
	h := NewHandler(svc, logger, auth)

	return &testEnv{
		router: h.SetupRouter(),
		auth:   auth,
		mailer: mail,
	}
}

func (e *testEnv) authCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()

	token, err := e.auth.GenerateToken(userID)
	require.NoError(t, err)

	return &http.Cookie{Name: "auth_token", Value: token}
}

var errSMTPDown = errors.New("smtp down")
