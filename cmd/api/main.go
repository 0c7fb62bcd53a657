// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/mohamedevweb/services-co/internal/ai"
	"github.com/mohamedevweb/services-co/internal/auth"
	"github.com/mohamedevweb/services-co/internal/config"
	"github.com/mohamedevweb/services-co/internal/handler"
	"github.com/mohamedevweb/services-co/internal/middleware"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/repository"
	"github.com/mohamedevweb/services-co/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	translationRepo := repository.NewTranslationRepository(db)

	// Initialize auth primitives
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize AI components
	aiClient := ai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	extractor := ai.NewExtractor(aiClient, logger)
	translator := ai.NewTranslator(aiClient, logger)

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordHasher, tokenManager)
	providerService := service.NewProviderService(providerRepo, tokenManager)
	orgService := service.NewOrganizationService(orgRepo, tokenManager)
	projectService := service.NewProjectService(projectRepo, providerRepo, extractor, logger)
	messageService := service.NewMessageService(messageRepo)
	translateService := service.NewTranslateService(translationRepo, translator)
	extractionService := service.NewExtractionService(extractor)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	providerHandler := handler.NewProviderHandler(providerService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	projectHandler := handler.NewProjectHandler(projectService)
	messageHandler := handler.NewMessageHandler(messageService)
	translateHandler := handler.NewTranslateHandler(translateService)
	extractHandler := handler.NewExtractHandler(extractionService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Public routes
	r.Route("/auth", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/verify", authHandler.Verify)
	})

	r.Post("/ai/presta", extractHandler.ExtractProfile)

	r.Route("/translate", func(r chi.Router) {
		r.Post("/", translateHandler.Create)
		r.Get("/organization/{id}", translateHandler.ListByOrganization)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Guard(tokenManager))

		r.Route("/organization", func(r chi.Router) {
			r.Post("/", orgHandler.Create)
			r.Get("/{id}", orgHandler.GetByID)
			r.Get("/me/organization", orgHandler.GetMine)
			r.Patch("/{id}", orgHandler.Update)
		})

		r.Route("/prestataire", func(r chi.Router) {
			r.Post("/", providerHandler.Create)
			r.Get("/me", providerHandler.GetMine)
			r.Get("/{id}", providerHandler.GetByID)
			r.Patch("/{id}", providerHandler.Update)
		})

		r.Route("/project", func(r chi.Router) {
			r.Get("/{id}", projectHandler.GetByID)
			r.Get("/organization/{id}", projectHandler.ListByOrganization)
			r.Get("/prestataire/{id}", projectHandler.ListByProvider)
			r.Patch("/path/{id}/choose", projectHandler.ChoosePath)
			r.Patch("/path/{id}/choose/exclusive", projectHandler.ChoosePathExclusive)
			r.Patch("/path/{id}/prestataire/{pid}/approve", projectHandler.ApproveTask)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(model.RoleOrg, model.RoleAdmin))
			r.Post("/project-ai/create", projectHandler.Create)
			r.Post("/contract", projectHandler.CreateContract)
		})

		r.Get("/contract/prestataire/{id}", projectHandler.ContractsByProvider)

		r.Route("/message", func(r chi.Router) {
			r.Post("/", messageHandler.Send)
			r.Get("/conversation", messageHandler.Conversation)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
