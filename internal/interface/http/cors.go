package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMiddleware applies the fixed cross-origin policy browsers see on every path, preflight included.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowHeaders:     []string{"X-Custom-Header", "Upgrade-Insecure-Requests", "Content-Type"},
		AllowMethods:     []string{"POST", "GET", "OPTIONS", "PUT"},
		ExposeHeaders:    []string{"Content-Length", "X-Kuma-Revision"},
		MaxAge:           600 * time.Second,
		AllowCredentials: true,
	})
}
