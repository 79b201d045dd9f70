package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/minamhq/minam-backend/internal/http/handlers"
	httpMW "github.com/minamhq/minam-backend/internal/http/middleware"
	"github.com/minamhq/minam-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log          *logger.Logger
	AllowOrigins []string

	ProviderHandler     *httpH.ProviderHandler
	ModelProfileHandler *httpH.ModelProfileHandler
	DatasetHandler      *httpH.DatasetHandler
	PipelineHandler     *httpH.PipelineHandler
	ProductHandler      *httpH.ProductHandler
	AnalysisHandler     *httpH.AnalysisHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.CORS(cfg.AllowOrigins))
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Providers
		if cfg.ProviderHandler != nil {
			api.POST("/providers", cfg.ProviderHandler.Create)
			api.GET("/providers", cfg.ProviderHandler.List)
		}

		// Model profiles
		if cfg.ModelProfileHandler != nil {
			api.POST("/models", cfg.ModelProfileHandler.Create)
			api.GET("/models", cfg.ModelProfileHandler.List)
		}

		// Datasets
		if cfg.DatasetHandler != nil {
			api.POST("/datasets", cfg.DatasetHandler.Create)
			api.GET("/datasets", cfg.DatasetHandler.List)
			api.GET("/datasets/:id/preview", cfg.DatasetHandler.Preview)
		}

		// Pipeline runs
		if cfg.PipelineHandler != nil {
			api.POST("/pipelines", cfg.PipelineHandler.Run)
		}

		// Published products
		if cfg.ProductHandler != nil {
			api.POST("/apis", cfg.ProductHandler.Publish)
			api.GET("/apis", cfg.ProductHandler.List)
		}

		// Upload and LLM analysis
		if cfg.AnalysisHandler != nil {
			api.POST("/upload", cfg.AnalysisHandler.Upload)
			api.POST("/analyze", cfg.AnalysisHandler.Analyze)
			api.POST("/generate-spec", cfg.AnalysisHandler.GenerateSpec)
		}
	}

	// Consumer data plane
	if cfg.ProductHandler != nil {
		r.POST("/v1/data/:id/query", cfg.ProductHandler.Query)
	}

	return r
}
