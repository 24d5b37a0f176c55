package middleware

import (
	"slices"
	"time"

	"github.com/billforge/billforge-api/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Defaults cover local development against the React dev server.
var (
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://127.0.0.1:3000",
	}
	defaultMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultHeaders = []string{
		"Accept",
		"Authorization",
		"Content-Type",
		"X-CSRF-Token",
		"X-Request-ID",
		"Origin",
		"Idempotency-Key",
	}
)

// CORSMiddleware builds the CORS policy from configuration, falling back to
// development defaults for anything left unset.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultOrigins
	}

	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = defaultMethods
	}

	headers := cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = defaultHeaders
	} else if !slices.Contains(headers, "Idempotency-Key") {
		// Clients must always be able to send retry keys.
		headers = append(headers, "Idempotency-Key")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     methods,
		AllowHeaders:     headers,
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
