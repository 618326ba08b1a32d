package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	router := newTestDeps().router()

	t.Run("preflight from allowed origin", func(t *testing.T) {
		rec := do(t, router, http.MethodOptions, "/todos", "",
			"Origin", "http://localhost:3000",
			"Access-Control-Request-Method", http.MethodPost,
		)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("exposes pagination headers", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/health", "", "Origin", "http://localhost:3000")

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Total-Count")
	})

	t.Run("foreign origin gets no grant", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/health", "", "Origin", "http://evil.example")

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
