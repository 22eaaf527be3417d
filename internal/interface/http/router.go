package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/docbridge/internal/infra/config"
)

// NewEngine builds the gin engine shared by the HTTP server and the Lambda adapter.
func NewEngine(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(),
		errorHandlingMiddleware(handler.logger),
	)

	engine.GET("/", handler.Health)
	engine.POST("/translateDocument", handler.TranslateDocument)
	engine.POST("/chatToDocument", handler.ChatToDocument)

	return engine
}

// NewRouter wraps the engine in a configured server.
func NewRouter(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
