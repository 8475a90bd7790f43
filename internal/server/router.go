package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/tokensmith/internal/logger"
)

// RouterConfig wires the router's collaborators.
type RouterConfig struct {
	Handler      *Handler
	Logger       *logger.Logger
	AllowOrigins []string
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(cfg.Logger), gin.Recovery())

	if len(cfg.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", RequestIDHeader},
		}))
	}

	router.GET("/healthz", HealthCheck)

	v1 := router.Group("/v1")
	{
		v1.GET("/tokens/default", cfg.Handler.DefaultTokens)
		v1.POST("/contrast", cfg.Handler.Contrast)
		v1.POST("/audit", cfg.Handler.Audit)
		v1.POST("/dark-counterpart", cfg.Handler.DarkCounterpart)
		v1.POST("/type-scale", cfg.Handler.TypeScale)
		v1.POST("/resolve", cfg.Handler.Resolve)
		v1.POST("/export/:format", cfg.Handler.Export)
	}

	return router
}
