package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopsense/backend/config"
	httpDelivery "github.com/shopsense/backend/internal/delivery/http"
	"github.com/shopsense/backend/internal/infrastructure/catalog"
	"github.com/shopsense/backend/internal/infrastructure/llm"
	"github.com/shopsense/backend/internal/usecase"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ShopSense Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the static catalog; falls back to the built-in dataset on failure
	productCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Printf("WARNING: %v - serving fallback catalog", err)
	}
	log.Printf("Catalog: %d products, categories: %v",
		len(productCatalog.Products()), productCatalog.Categories())

	// Completion client for AI search
	if cfg.LLM.APIKey != "" {
		log.Printf("Completion service configured: %s model=%s", cfg.LLM.BaseURL, cfg.LLM.Model)
	} else {
		log.Printf("WARNING: Completion service API key not set - AI search will return unfiltered results")
	}

	llmClient := llm.NewClient(llm.ClientConfig{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		MaxTokens:      cfg.LLM.MaxTokens,
		Timeout:        cfg.LLM.Timeout,
		RequestsPerMin: cfg.RateLimit.LLMPerMinute,
	})

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		productCatalog,
		llmClient,
		usecase.SearchServiceConfig{
			EnableDebugLogging: cfg.Server.Environment == "development",
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productCatalog, searchService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
