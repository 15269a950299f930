package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows any origin to call the API with the standard methods.
func CORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(next)
}
