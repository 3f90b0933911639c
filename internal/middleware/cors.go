package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps next with the configured cross-origin policy.
func (m Middleware) CORS(next http.Handler) http.Handler {
	origins := m.origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", HeaderRequestID},
		ExposedHeaders:   []string{HeaderRequestID},
		AllowCredentials: len(m.origins) > 0,
	}).Handler(next)
}
