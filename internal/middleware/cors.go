package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

const (
	HeaderOrigin         = "Origin"
	HeaderVary           = "Vary"
	HeaderRequestMethod  = "Access-Control-Request-Method"
	HeaderRequestHeaders = "Access-Control-Request-Headers"
	HeaderAllowOrigin    = "Access-Control-Allow-Origin"
	HeaderAllowMethods   = "Access-Control-Allow-Methods"
	HeaderAllowHeaders   = "Access-Control-Allow-Headers"
	HeaderAllowCreds     = "Access-Control-Allow-Credentials"
)

var (
	AllowedMethods = []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	AllowedHeaders = []string{"Content-Type", "Authorization"}
)

// CORS allows credentialed cross-origin requests from allowedOrigin only.
// Preflight requests are answered with 204 without reaching the next handler.
func CORS(allowedOrigin string) func(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   AllowedMethods,
		AllowedHeaders:   AllowedHeaders,
		AllowCredentials: true,
	}).Handler
}
