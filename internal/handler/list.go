package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rishimulani16/QR-Code/internal/middleware"
	"github.com/rishimulani16/QR-Code/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) ListHandler(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok || userID == "" {
		http.Error(rw, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()

	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "Invalid page parameter", "")
			return
		}
		page = parsed
	}

	pageSize := h.service.DefaultPageSize()
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "Invalid limit parameter", "")
			return
		}
		pageSize = parsed
	}

	resp, err := h.service.List(ctx, userID, page, pageSize, query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPage):
			writeError(rw, http.StatusBadRequest, "Page and limit must be positive", "")
		case errors.Is(err, service.ErrInvalidDateRange):
			writeError(rw, http.StatusBadRequest, "Invalid date range", "")
		default:
			h.logger.Error("Failed to list QR codes", zap.Error(err))
			writeError(rw, http.StatusInternalServerError, "Error fetching QR Codes", "")
		}
		return
	}

	writeJSON(rw, http.StatusOK, resp)
}
