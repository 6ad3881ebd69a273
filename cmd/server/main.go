package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqpresets/internal/api"
	"github.com/RMahshie/eqpresets/internal/api/handlers"
	"github.com/RMahshie/eqpresets/internal/config"
	"github.com/RMahshie/eqpresets/internal/equalizer"
	"github.com/RMahshie/eqpresets/internal/repository"
	"github.com/RMahshie/eqpresets/internal/repository/memory"
	"github.com/RMahshie/eqpresets/internal/repository/plist"
	"github.com/RMahshie/eqpresets/internal/repository/postgres"
	"github.com/RMahshie/eqpresets/internal/storage"
	"github.com/RMahshie/eqpresets/pkg/models"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Server.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.Server.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	settings, closeSettings := openSettingsStore(ctx, cfg.Database)
	defer closeSettings()

	var s3Service storage.S3Service
	if cfg.AWS.S3Enabled() {
		s3Service, err = storage.NewS3Service(storage.S3Config{
			Bucket:    cfg.AWS.S3Bucket,
			Endpoint:  cfg.AWS.S3Endpoint,
			Region:    cfg.AWS.Region,
			AccessKey: cfg.AWS.AccessKeyID,
			SecretKey: cfg.AWS.SecretAccessKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 service")
		}
	}

	format, err := plist.ParseFormat(cfg.Presets.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid preset file format")
	}

	var bundle repository.BundleSource = plist.FileBundle{Path: cfg.Presets.BundledPath}
	if s3Service != nil && cfg.Presets.SeedS3Key != "" {
		bundle = storage.S3Bundle{Service: s3Service, Key: cfg.Presets.SeedS3Key}
	}

	presetRepo, err := plist.NewPresetRepository(plist.Config{
		Path:   cfg.Presets.Path,
		Format: format,
		Bundle: bundle,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create preset repository")
	}

	eqService, err := equalizer.NewEqualizerService(ctx, presetRepo, settings)
	if err != nil {
		log.Fatal().Err(err).Str("path", presetRepo.Path()).Msg("Failed to initialize equalizer")
	}

	var backup *storage.PresetBackup
	if s3Service != nil {
		backup = storage.NewPresetBackup(s3Service, cfg.Presets.BackupS3Prefix)
	}

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Create Huma API
	version := config.GetStringOrDefault("APP_VERSION", "1.0.0")
	humaConfig := huma.DefaultConfig("Equalizer Presets API", version)
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	// Register health endpoint
	huma.Register(humaAPI, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	api.RegisterRoutes(humaAPI, handlers.NewPresetHandler(presetRepo, eqService, backup), handlers.NewEqualizerHandler(eqService))

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("addr", srv.Addr).Str("presets", presetRepo.Path()).Msg("Starting equalizer presets server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openSettingsStore connects to PostgreSQL when a database URL is configured
// and falls back to an in-memory store otherwise
func openSettingsStore(ctx context.Context, cfg config.DatabaseConfig) (repository.SettingsStore, func()) {
	if cfg.URL == "" {
		log.Info().Msg("No DATABASE_URL set, keeping equalizer settings in memory")
		return memory.NewSettingsStore(), func() {}
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	store := postgres.NewPostgresSettingsStore(db)
	if err := store.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate settings table")
	}
	log.Info().Msg("Equalizer settings stored in PostgreSQL")
	return store, func() { db.Close() }
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("remote_ip", r.RemoteAddr).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
