package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rishimulani16/QR-Code/internal/middleware"
	"github.com/rishimulani16/QR-Code/internal/models"
	"github.com/rishimulani16/QR-Code/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	service *service.QRService
	logger  *zap.Logger
	auth    *middleware.AuthMiddleware
}

func NewHandler(service *service.QRService, logger *zap.Logger, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		auth:    auth,
	}
}

func writeJSON(rw http.ResponseWriter, statusCode int, body any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(statusCode)
	json.NewEncoder(rw).Encode(body)
}

// writeError emits the {message, error?} envelope. Wrapped internals are
// never exposed to the caller; only the detail passed explicitly is.
func writeError(rw http.ResponseWriter, statusCode int, message, detail string) {
	writeJSON(rw, statusCode, models.ErrorResponse{
		Message: message,
		Error:   detail,
	})
}
