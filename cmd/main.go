package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/FDead21/afc-web/internal/handler"
	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/internal/router"
	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/envconfig"
	"github.com/FDead21/afc-web/pkg/flags"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
	"github.com/FDead21/afc-web/pkg/shutdownsetup"
	"github.com/FDead21/afc-web/pkg/storage"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()

	// Validate flag configuration
	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting AFC Web storefront",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level)

	dbConfig := envconfig.LoadDatabaseConfig()

	// Establish database connection
	db, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to establish database connection", "error", err)
	} else {
		appLogger.Info("Database connection established successfully")

		if err := db.HealthCheck(); err != nil {
			appLogger.Error("Database health check failed", "error", err)
		} else {
			appLogger.Info("Database health check passed")
		}

		defer func() {
			if err := db.Close(); err != nil {
				appLogger.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	siteConfig := envconfig.LoadSiteConfig()

	// Object storage for image uploads; the site runs without it, with
	// uploads disabled.
	var store storage.Store
	if gcsStore, err := storage.NewGCSStore(context.Background(), envconfig.LoadStorageConfig(), appLogger); err != nil {
		appLogger.Error("Failed to initialize object storage, uploads disabled", "error", err)
	} else {
		store = gcsStore
	}

	// Page invalidation registry shared by all mutating services
	pages := revalidate.NewRegistry()

	// Initialize repositories with logger and database connection
	productRepo := repositories.NewProductRepository(appLogger, db)
	categoryRepo := repositories.NewCategoryRepository(appLogger, db)
	ingredientRepo := repositories.NewIngredientRepository(appLogger, db)
	reviewRepo := repositories.NewReviewRepository(appLogger, db)
	postRepo := repositories.NewPostRepository(appLogger, db)
	messageRepo := repositories.NewMessageRepository(appLogger, db)
	quizRepo := repositories.NewQuizRepository(appLogger, db)
	contentRepo := repositories.NewContentRepository(appLogger, db)
	heroRepo := repositories.NewHeroRepository(appLogger, db)
	sessionRepo := repositories.NewSessionRepository(appLogger, db)

	// Initialize services with logger
	authService := service.NewAuthService(sessionRepo, siteConfig.SessionCookie, appLogger)
	productService := service.NewProductService(productRepo, pages, appLogger)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, ingredientRepo, reviewRepo, pages, appLogger)
	reviewService := service.NewReviewService(reviewRepo, pages, appLogger)
	blogService := service.NewBlogService(postRepo, pages, appLogger)
	messageService := service.NewMessageService(messageRepo, pages, appLogger)
	quizService := service.NewQuizService(quizRepo, productRepo, pages, appLogger)
	contentService := service.NewContentService(contentRepo, productRepo, heroRepo, quizRepo, pages, appLogger)
	heroService := service.NewHeroService(heroRepo, pages, appLogger)
	uploadService := service.NewUploadService(store, productRepo, contentRepo, pages, appLogger)
	searchService := service.NewSearchService(productRepo, postRepo, appLogger)

	// Initialize handlers with logger
	handlers := router.Handlers{
		Product: handler.NewProductHandler(productService, catalogService, authService, appLogger),
		Catalog: handler.NewCatalogHandler(catalogService, authService, appLogger),
		Blog:    handler.NewBlogHandler(blogService, authService, appLogger),
		Review:  handler.NewReviewHandler(reviewService, authService, appLogger),
		Message: handler.NewMessageHandler(messageService, authService, appLogger),
		Quiz:    handler.NewQuizHandler(quizService, authService, appLogger),
		Content: handler.NewContentHandler(contentService, authService, appLogger),
		Hero:    handler.NewHeroHandler(heroService, authService, appLogger),
		Search:  handler.NewSearchHandler(searchService, appLogger),
		Upload:  handler.NewUploadHandler(uploadService, authService, appLogger),
		Auth:    handler.NewAuthHandler(authService, appLogger),
	}

	mux := router.New(handlers, authService, appLogger).Setup()

	rootHandler := appLogger.HTTPMiddleware(mux)

	initialPort := flagConfig.Port
	if initialPort == "" {
		initialPort = envconfig.GetEnv("PORT", "8080")
	}
	host := envconfig.GetEnv("HOST", "localhost")

	port := initialPort

	server := &http.Server{
		Handler:      rootHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger)
	}
}
