package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengwei/trip-report/internal/config"
	"github.com/jengwei/trip-report/internal/database"
	"github.com/jengwei/trip-report/internal/handler"
	"github.com/jengwei/trip-report/internal/metrics"
	"github.com/jengwei/trip-report/internal/middleware"
	"github.com/jengwei/trip-report/internal/pipeline"
	"github.com/jengwei/trip-report/internal/report"
	"github.com/jengwei/trip-report/internal/repository"
	"github.com/jengwei/trip-report/internal/segment"
	"github.com/jengwei/trip-report/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin engine
func SetupRouter(cfg *config.Config, collector *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Wiring
	segmenter := &segment.Segmenter{
		MaxTimeGapSeconds: cfg.MaxTimeGapSeconds,
		MaxDistanceKm:     cfg.MaxDistanceKm,
	}
	assembler := report.NewAssembler()
	if len(cfg.Palette) > 0 {
		assembler.Palette = cfg.Palette
	}

	datasetRepo := repository.NewDatasetRepository(database.GetDB())
	datasetSvc := service.NewDatasetService(datasetRepo)
	reportSvc := service.NewReportService(datasetRepo, pipeline.New(segmenter, assembler), collector)

	datasetHandler := handler.NewDatasetHandler(datasetSvc, reportSvc)
	authHandler := handler.NewAuthHandler(cfg.APIKey, cfg.JWTSecret)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trip Report API is running",
		})
	})

	if collector != nil {
		r.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		api.POST("/auth/token", authHandler.IssueToken)

		datasets := api.Group("/datasets")
		{
			datasets.GET("", datasetHandler.List)
			datasets.GET("/:id/report", datasetHandler.Report)

			authed := datasets.Group("", middleware.Auth(cfg.JWTSecret))
			{
				authed.POST("", datasetHandler.Upload)
				authed.DELETE("/:id", datasetHandler.Delete)
			}
		}
	}

	return r
}
