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

func (h *Handler) ShareHandler(rw http.ResponseWriter, r *http.Request) {
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

	var req models.ShareRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		writeError(rw, http.StatusBadRequest, "Invalid JSON", "")
		return
	}

	if req.QRCodeID == "" {
		writeError(rw, http.StatusBadRequest, "QR Code id is required", "")
		return
	}

	if err := h.service.Share(ctx, req.QRCodeID, userID, req.RecipientEmail); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(rw, http.StatusBadRequest, "Invalid recipient email", "")
		case errors.Is(err, service.ErrNotFound):
			writeError(rw, http.StatusNotFound, "QR Code not found", "")
		default:
			h.logger.Error("Failed to share QR code",
				zap.String("id", req.QRCodeID),
				zap.Error(err))
			writeError(rw, http.StatusInternalServerError, "Error sharing QR Code", "")
		}
		return
	}

	writeJSON(rw, http.StatusOK, models.MessageResponse{
		Message: "QR Code shared successfully",
	})
}
