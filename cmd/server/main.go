package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/rhofkens/AI-presenter/internal/catalog"
	"github.com/rhofkens/AI-presenter/internal/config"
	"github.com/rhofkens/AI-presenter/internal/creation"
	"github.com/rhofkens/AI-presenter/internal/database"
	"github.com/rhofkens/AI-presenter/internal/health"
	"github.com/rhofkens/AI-presenter/internal/httputil"
	"github.com/rhofkens/AI-presenter/internal/middleware"
	"github.com/rhofkens/AI-presenter/internal/project"
	"github.com/rhofkens/AI-presenter/internal/slides"
	"github.com/rhofkens/AI-presenter/internal/uploads"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slog.Info("configuration loaded successfully",
		"db_driver", cfg.Database.Driver,
		"db_host", cfg.Database.Host,
		"db_name", cfg.Database.Name,
		"storage_type", cfg.Storage.Type,
	)

	slog.Info("CORS configuration",
		"allowed_origins", cfg.CORS.AllowedOrigins,
		"allowed_methods", cfg.CORS.AllowedMethods,
		"allow_credentials", cfg.CORS.AllowCredentials,
	)

	slog.Info("creation flow configuration",
		"processing_delay", cfg.Upload.ProcessingDelay,
		"processing_timeout", cfg.Upload.ProcessingTimeout,
		"submit_timeout", cfg.Upload.SubmitTimeout,
		"preview_slides", cfg.Upload.PreviewSlideCount,
	)

	// Initialize database connection
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	if err := database.HealthCheck(db); err != nil {
		log.Fatalf("database health check failed: %v", err)
	}

	projectStore := project.NewStore(db)
	if err := projectStore.Migrate(); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	storage, err := uploads.NewStorageFromConfig(startupCtx, cfg.Storage)
	cancelStartup()
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	uploadService := uploads.NewUploadService(storage)
	projectService := project.NewService(projectStore, uploadService)

	extractor := slides.NewPlaceholderExtractor(
		cfg.Upload.ProcessingDelay,
		cfg.Upload.PreviewSlideCount,
		cfg.Upload.PreviewImageURL,
	)
	sessions := creation.NewManager(uploadService, extractor, projectService.CreateFromSubmission, creation.Options{
		ProcessingTimeout: cfg.Upload.ProcessingTimeout,
		SubmitTimeout:     cfg.Upload.SubmitTimeout,
	})

	mux := newRouter(cfg, db, uploadService, projectService, sessions)

	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)

	handler := middleware.CORS(&cfg.CORS)(middleware.Logging(mux))

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	} else {
		slog.Info("server gracefully stopped")
	}

	slog.Info("closing creation sessions...")
	sessions.Close()

	slog.Info("server stopped")
}

func newRouter(
	cfg *config.Config,
	db *gorm.DB,
	uploadService *uploads.UploadService,
	projectService *project.Service,
	sessions *creation.Manager,
) *http.ServeMux {
	healthHandler := health.NewHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})
	uploadHandler := uploads.NewHTTPHandler(uploadService)
	sessionRouter := creation.NewRouter(sessions)
	projectRouter := project.NewRouter(projectService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.HandleHealth)
	mux.HandleFunc("GET /health", healthHandler.HandleHealth)
	mux.HandleFunc("GET /api/catalog", catalog.HandleGetCatalog)

	mux.HandleFunc("POST /api/sessions", sessionRouter.HandleCreateSession)
	mux.HandleFunc("GET /api/sessions/{sessionID}", sessionRouter.HandleGetSession)
	mux.HandleFunc("DELETE /api/sessions/{sessionID}", sessionRouter.HandleDeleteSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/upload", sessionRouter.HandleUpload)
	mux.HandleFunc("POST /api/sessions/{sessionID}/metadata", sessionRouter.HandleSubmit)
	mux.HandleFunc("DELETE /api/sessions/{sessionID}/slides/{slideID}", sessionRouter.HandleDeleteSlide)

	mux.HandleFunc("GET /api/projects", projectRouter.HandleList)
	mux.HandleFunc("GET /api/projects/{projectID}", projectRouter.HandleGet)
	mux.HandleFunc("DELETE /api/projects/{projectID}", projectRouter.HandleDelete)
	mux.HandleFunc("GET /api/projects/{projectID}/download", projectRouter.HandleDownload)
	mux.HandleFunc("POST /api/projects/{projectID}/translate", projectRouter.HandleAction(project.ActionTranslate))
	mux.HandleFunc("POST /api/projects/{projectID}/play", projectRouter.HandleAction(project.ActionPlay))

	mux.HandleFunc("GET /api/uploads/{key}", uploadHandler.Download)

	// Everything else: JSON 404 under /api/, the frontend otherwise
	mux.Handle("/", httputil.NewSPAHandler(cfg.Server.StaticDir))

	return mux
}
