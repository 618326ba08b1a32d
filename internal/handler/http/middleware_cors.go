package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS answers preflight requests and decorates responses for the
// configured browser origins.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   h.cfg.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Total-Count", "X-Page-Count"},
	})

	return c.Handler(next)
}
