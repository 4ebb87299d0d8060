package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishimulani16/QR-Code/internal/middleware"
	"github.com/rishimulani16/QR-Code/internal/models"
	"github.com/rishimulani16/QR-Code/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) DeleteHandler(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok || userID == "" {
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(rw, http.StatusBadRequest, "QR Code id is required", "")
		return
	}

	if err := h.service.Delete(ctx, id, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			// Missing and not-owned records answer identically.
			writeError(rw, http.StatusNotFound, "QR Code not found", "")
		default:
			h.logger.Error("Failed to delete QR code",
				zap.String("id", id),
				zap.Error(err))
			writeError(rw, http.StatusInternalServerError, "Error deleting QR Code", "")
		}
		return
	}

	writeJSON(rw, http.StatusOK, models.MessageResponse{
		Message: "QR Code deleted successfully",
	})
}
