package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pixelforge/studio-api/internal/config"
	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/handler"
	"github.com/pixelforge/studio-api/internal/logger"
	"github.com/pixelforge/studio-api/internal/middleware"
	"github.com/pixelforge/studio-api/internal/repository"
	"github.com/pixelforge/studio-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize structured logging
	log, err := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	log.Info("connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	featuredRepo := repository.NewFeaturedRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, teamRepo, db)
	teamService := service.NewTeamService(teamRepo, userRepo, db)
	projectService := service.NewProjectService(projectRepo, userRepo)
	blogService := service.NewBlogService(blogRepo, userRepo)
	featuredService := service.NewFeaturedService(featuredRepo, blogRepo, projectRepo, userRepo)
	mediaService := service.NewMediaService(mediaRepo,
		cfg.Media.CloudName, cfg.Media.APIKey, cfg.Media.APISecret, cfg.Media.Folder)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	userHandler := handler.NewUserHandler(userService, log)
	teamHandler := handler.NewTeamHandler(teamService, log)
	projectHandler := handler.NewProjectHandler(projectService, log)
	blogHandler := handler.NewBlogHandler(blogService, log)
	featuredHandler := handler.NewFeaturedHandler(featuredService, log)
	mediaHandler := handler.NewMediaHandler(mediaService, log)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// User endpoints
	mux.HandleFunc("GET /v1/users", userHandler.Get)
	mux.HandleFunc("PATCH /v1/users", userHandler.Update)
	mux.HandleFunc("PATCH /v1/users/team", userHandler.UpdateTeam)
	mux.HandleFunc("PATCH /v1/users/assignment", userHandler.UpdateAssignment)
	mux.HandleFunc("DELETE /v1/users", userHandler.Remove)

	// Team endpoints
	mux.HandleFunc("GET /v1/teams", teamHandler.Get)
	mux.HandleFunc("POST /v1/teams", teamHandler.Create)
	mux.HandleFunc("PATCH /v1/teams", teamHandler.Update)
	mux.HandleFunc("PATCH /v1/teams/members", teamHandler.EditMembers)
	mux.HandleFunc("DELETE /v1/teams", teamHandler.Remove)

	// Project endpoints
	mux.HandleFunc("GET /v1/projects", projectHandler.Get)
	mux.HandleFunc("POST /v1/projects", projectHandler.Create)
	mux.HandleFunc("PATCH /v1/projects", projectHandler.Update)
	mux.HandleFunc("DELETE /v1/projects", projectHandler.Remove)

	// Blog endpoints
	mux.HandleFunc("GET /v1/blogs", blogHandler.Get)
	mux.HandleFunc("POST /v1/blogs", blogHandler.Create)
	mux.HandleFunc("PATCH /v1/blogs", blogHandler.Update)
	mux.HandleFunc("DELETE /v1/blogs", blogHandler.Remove)

	// Featured endpoints
	mux.HandleFunc("GET /v1/featured", featuredHandler.Get)
	mux.HandleFunc("POST /v1/featured", featuredHandler.Create)
	mux.HandleFunc("PATCH /v1/featured", featuredHandler.Update)
	mux.HandleFunc("DELETE /v1/featured", featuredHandler.Remove)

	// Media endpoints
	mux.HandleFunc("GET /v1/media", mediaHandler.Get)
	mux.HandleFunc("POST /v1/media", mediaHandler.Create)
	mux.HandleFunc("POST /v1/media/sign", mediaHandler.Sign)
	mux.HandleFunc("DELETE /v1/media", mediaHandler.Remove)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Session(cfg.Auth.TokenSecret, cfg.Auth.Issuer),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
