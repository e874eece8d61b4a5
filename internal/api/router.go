package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/moysklad-autolink/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/auto-link", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/toggle", h.Toggle)
			r.Post("/settings", h.Settings)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Get("/webhooks/status", h.Status)
		})

		// MoySklad does not sign deliveries, the endpoint address is the secret.
		r.Post("/moysklad/webhook", h.Webhook)
	})

	return mux
}
