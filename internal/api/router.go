package api

import "github.com/go-chi/chi/v5"

// NewRouter wires all handlers behind the request-ID and logging
// middleware.
func NewRouter(s *Server) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/healthz", s.Health)
	r.Route("/banks/{blz}", func(r chi.Router) {
		r.Get("/", s.GetBank)
		r.Get("/method", s.GetBankMethod)
	})
	r.Post("/validate", s.ValidateAccount)

	return r
}
