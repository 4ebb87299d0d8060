package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishimulani16/QR-Code/internal/middleware"
)

func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(h.auth.Handler)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.GzipMiddleware)

	r.Route("/api/qrcodes", func(r chi.Router) {
		r.Post("/", h.GenerateHandler)
		r.Get("/", h.ListHandler)
		r.Post("/share", h.ShareHandler)
		r.Post("/decode", h.DecodeHandler)
		r.Delete("/{id}", h.DeleteHandler)
	})

	r.Get("/ping", h.PingHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	return r
}
