package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mediaguard/internal/handler"
	"mediaguard/internal/middleware"
)

// Setup creates the gin engine for the local replay server.
func Setup(eventH *handler.EventHandler, healthH *handler.HealthHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/v1")
	v1.POST("/events/s3", eventH.HandleS3Event)
	v1.POST("/classify", eventH.Classify)

	return r
}
