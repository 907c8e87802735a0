package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Order matters: ErrorHandler renders what Recovery and handlers raise,
	// and Logger sees the final status.
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(c.Config.IsDevelopment()),
		middleware.Recovery(),
		middleware.CORS(),
	)

	router.NoRoute(middleware.NotFoundHandler())

	router.GET("/health", healthCheckHandler(c.DB, c.Config.App.Version))

	c.AuthorHandler.RegisterRoutes(router)
	c.PostHandler.RegisterRoutes(router)

	return router
}

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

func healthCheckHandler(db healthChecker, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"database": dbStatus,
		}

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
