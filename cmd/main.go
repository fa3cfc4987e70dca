package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/vkamarthi/heritage-collect/internal/handlers"
	"github.com/vkamarthi/heritage-collect/internal/imagestore"
	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/middlewares"
	"github.com/vkamarthi/heritage-collect/internal/repositories"
	"github.com/vkamarthi/heritage-collect/internal/services"
	"github.com/vkamarthi/heritage-collect/internal/sessions"

	_ "github.com/vkamarthi/heritage-collect/docs"
	_ "modernc.org/sqlite"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title heritage-collect API
// @version 1.0.0
// @description Service for collecting cultural heritage images with descriptions from registered users
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		dbPath, imageDir,
		adminEmails,
		sessionSecretKey, sessionMaxAgeSecond,
		uploadRateLimit, uploadRateWindowSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dbPath, imageDir,
		adminEmails,
		sessionSecretKey, sessionMaxAgeSecond,
		uploadRateLimit, uploadRateWindowSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, storage, session, and rate limit configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dbPath, imageDir string,
	adminEmails []string,
	sessionSecretKey string, sessionMaxAgeSecond int,
	uploadRateLimit, uploadRateWindowSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	dbPath = getEnv("DB_PATH", "app_data.db")
	imageDir = getEnv("IMAGE_DIR", "uploaded_images")

	// Admin allow-list
	for _, e := range strings.Split(getEnv("ADMIN_EMAILS", ""), ",") {
		if e = strings.TrimSpace(e); e != "" {
			adminEmails = append(adminEmails, e)
		}
	}

	// Session config
	sessionSecretKey = getEnv("SESSION_SECRET_KEY", "my_super_secret_key")
	if sessionMaxAgeSecond, err = strconv.Atoi(getEnv("SESSION_MAX_AGE_SECOND", "86400")); err != nil {
		return
	}

	// Upload rate limit config
	if uploadRateLimit, err = strconv.Atoi(getEnv("UPLOAD_RATE_LIMIT", "20")); err != nil {
		return
	}
	if uploadRateWindowSecond, err = strconv.Atoi(getEnv("UPLOAD_RATE_WINDOW_SECOND", "60")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, image store, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dbPath, imageDir string,
	adminEmails []string,
	sessionSecretKey string, sessionMaxAgeSecond int,
	uploadRateLimit, uploadRateWindowSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Open SQLite database
	logger.Log.Infof("Opening SQLite database: %s", dbPath)
	db, err := sqlx.ConnectContext(ctx, "sqlite", dbPath)
	if err != nil {
		logger.Log.Fatal("SQLite connection error:", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("SQLite ping failed:", err)
	}
	if err := repositories.InitSchema(ctx, db); err != nil {
		logger.Log.Fatal("schema initialization failed:", err)
	}

	// Initialize image store
	images, err := imagestore.New(imageDir)
	if err != nil {
		logger.Log.Fatal("image store initialization failed:", err)
	}

	// Initialize session manager
	sessionManager := sessions.NewManager(sessionSecretKey, sessionMaxAgeSecond)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	subReadRepo := repositories.NewSubmissionReadRepository(db)
	subWriteRepo := repositories.NewSubmissionWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, adminEmails)
	submissionService := services.NewSubmissionService(subWriteRepo, images)
	reportService := services.NewReportService(subReadRepo, images)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, sessionManager)
	adminLoginHandler := handlers.NewAdminLoginHandler(authService, sessionManager)
	logoutHandler := handlers.NewLogoutHandler(sessionManager)
	meHandler := handlers.NewMeHandler()
	openFormHandler := handlers.NewOpenFormHandler(sessionManager)
	cancelFormHandler := handlers.NewCancelFormHandler(sessionManager)
	createSubmissionHandler := handlers.NewCreateSubmissionHandler(submissionService, sessionManager)
	dashboardHandler := handlers.NewDashboardHandler(reportService)
	feedImageHandler := handlers.NewFeedImageHandler(reportService)
	exportHandler := handlers.NewExportHandler(reportService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(sessionManager)
	adminMiddleware := middlewares.AdminMiddleware()

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.Post("/admin/login", adminLoginHandler)

		// Routes requiring a logged-in session
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", logoutHandler)
			r.Get("/me", meHandler)
			r.Post("/form/open", openFormHandler)
			r.Post("/form/cancel", cancelFormHandler)
			r.With(httprate.LimitByIP(
				uploadRateLimit,
				time.Duration(uploadRateWindowSecond)*time.Second,
			)).Post("/submissions", createSubmissionHandler)
		})

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(adminMiddleware)
			r.Get("/admin/dashboard", dashboardHandler)
			r.Get("/admin/images/{id}", feedImageHandler)
			r.Get("/admin/export", exportHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
