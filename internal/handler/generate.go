package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rishimulani16/QR-Code/internal/middleware"
	"github.com/rishimulani16/QR-Code/internal/models"
	"github.com/rishimulani16/QR-Code/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) GenerateHandler(rw http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(rw, http.StatusBadRequest, "Content-Type must be application/json", "")
		return
	}

	ctx := r.Context()
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok || userID == "" {
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.GenerateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		writeError(rw, http.StatusBadRequest, "Invalid JSON", "")
		return
	}

	qr, err := h.service.Generate(ctx, req.Text, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyText):
			writeError(rw, http.StatusBadRequest, "Text cannot be empty", "")
		default:
			h.logger.Error("Failed to generate QR code", zap.Error(err))
			writeError(rw, http.StatusInternalServerError, "Error generating QR Code", "")
		}
		return
	}

	writeJSON(rw, http.StatusCreated, models.GenerateResponse{
		Message: "QR Code generated successfully",
		QRCode:  *qr,
	})
}
