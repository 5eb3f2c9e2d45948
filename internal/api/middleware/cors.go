package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/m04kA/SMC-CallDashboard/internal/config"
)

// CORS оборачивает обработчик заголовками CORS для админки дашборда
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
	})
	return c.Handler
}
