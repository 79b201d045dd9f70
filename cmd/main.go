package main

import (
	"fmt"
	"os"

	"github.com/minamhq/minam-backend/internal/config"
	minamhttp "github.com/minamhq/minam-backend/internal/http"
	"github.com/minamhq/minam-backend/internal/http/handlers"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/platform/openai"
	"github.com/minamhq/minam-backend/internal/services"
	"github.com/minamhq/minam-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Record store
	st := store.New()

	// LLM analyst (optional)
	var analyst services.Analyst
	if cfg.OpenAIEnabled {
		client, err := openai.NewClient(cfg.OpenAIModel, log)
		if err != nil {
			log.Warn("OpenAI client unavailable, analysis runs without LLM enrichment", "error", err)
		} else {
			analyst = client
		}
	}

	// Services
	log.Info("Wiring services...")
	catalogService := services.NewCatalogService(st, log)
	pipelineService := services.NewPipelineService(st, log)
	publishService := services.NewPublishService(st, log)
	queryService := services.NewQueryService(st, log)
	analysisService := services.NewAnalysisService(analyst, cfg.OpenAIModel, log)

	// Handlers
	providerHandler := handlers.NewProviderHandler(log, catalogService)
	modelProfileHandler := handlers.NewModelProfileHandler(log, catalogService)
	datasetHandler := handlers.NewDatasetHandler(log, catalogService)
	pipelineHandler := handlers.NewPipelineHandler(log, pipelineService)
	productHandler := handlers.NewProductHandler(log, publishService, queryService)
	analysisHandler := handlers.NewAnalysisHandler(log, analysisService, cfg.MaxUploadBytes)
	healthHandler := handlers.NewHealthHandler()

	server := minamhttp.NewServer(minamhttp.RouterConfig{
		Log:          log,
		AllowOrigins: cfg.AllowOrigins,

		ProviderHandler:     providerHandler,
		ModelProfileHandler: modelProfileHandler,
		DatasetHandler:      datasetHandler,
		PipelineHandler:     pipelineHandler,
		ProductHandler:      productHandler,
		AnalysisHandler:     analysisHandler,
		HealthHandler:       healthHandler,
	})

	log.Info("Minam API listening", "address", cfg.Address)
	if err := server.Run(cfg.Address); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
