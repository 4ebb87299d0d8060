package handler

import (
	"io"
	"net/http"

	"github.com/rishimulani16/QR-Code/internal/models"
	"go.uber.org/zap"
)

// 8 MB is plenty for a single camera frame.
const maxFrameSize = 8 << 20

// DecodeHandler reads one PNG or JPEG frame from the request body and looks
// for a QR code in it. A frame with no code is a normal 200 with found=false,
// since live camera frames mostly contain nothing to decode.
func (h *Handler) DecodeHandler(rw http.ResponseWriter, r *http.Request) {
	frame, err := io.ReadAll(io.LimitReader(r.Body, maxFrameSize))
	if err != nil || len(frame) == 0 {
		writeError(rw, http.StatusBadRequest, "Image frame is required", "")
		return
	}
	defer r.Body.Close()

	text, found, err := h.service.Decode(frame)
	if err != nil {
		h.logger.Warn("Failed to decode frame", zap.Error(err))
		writeError(rw, http.StatusBadRequest, "Unreadable image frame", "")
		return
	}

	writeJSON(rw, http.StatusOK, models.DecodeResponse{
		Text:  text,
		Found: found,
	})
}
