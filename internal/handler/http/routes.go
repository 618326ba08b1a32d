package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-finance-advisor/internal/service"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/info", h.info)
		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", h.metricsHandler())

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/token", h.issueToken)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", h.me)
			r.Put("/change-password", h.changePassword)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Post("/", h.createTodo)
			r.Get("/", h.listTodos)
			r.Get("/{todoID}", h.getTodo)
			r.Put("/{todoID}", h.updateTodo)
			r.Put("/{todoID}/complete", h.completeTodo)
			r.Delete("/{todoID}", h.deleteTodo)
		})

		r.Route("/api/v1/openai", func(r chi.Router) {
			r.Post("/chat/completions", h.chatCompletion)
			r.Post("/embeddings", h.embeddings)
			r.Post("/images/generations", h.generateImage)
			r.Post("/moderations", h.moderate)
			r.Get("/models", h.listModels)
			r.Get("/models/{modelID}", h.getModel)
			r.Get("/health", h.llmHealth)
		})
	})

	// finance advisor is public and throttled per client IP
	router.Route("/api/v1/finance-advisor", func(r chi.Router) {
		r.With(h.withRateLimit(service.AdviceRateLimit)).Post("/advice", h.financeAdvice)
		r.With(h.withRateLimit(service.RiskAssessmentRateLimit)).Post("/risk-assessment", h.riskAssessment)
		r.With(h.withRateLimit(service.ConceptRateLimit)).Post("/explain-concept", h.explainConcept)
		r.Get("/health", h.advisorHealth)
		r.Get("/capabilities", h.advisorCapabilities)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
