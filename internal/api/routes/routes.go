package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobsearch-agent/internal/api/handlers"
	"jobsearch-agent/internal/api/middleware"
	"jobsearch-agent/internal/archive"
	"jobsearch-agent/internal/config"
	"jobsearch-agent/internal/llm"
	"jobsearch-agent/internal/search"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager, searchSvc *search.Service, store *archive.Store) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())

	// Generous limit on LLM endpoints: a resume search chains two remote
	// completion calls
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*cfg.LLM.Timeout)...)

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/jobs/search", handlers.JobSearchHandler(searchSvc))
		v1.POST("/technologies", handlers.TechExtractionHandler(searchSvc))
		v1.GET("/uploads", handlers.UploadListHandler(store))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Job Search Assistant",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
