package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	mongoRepo "marketing-cms/internal/infra/adapter/persistence/mongodb"
	"marketing-cms/internal/infra/db"
	"marketing-cms/pkg/config"

	blogUC "marketing-cms/internal/usecase/blog"
	contactUC "marketing-cms/internal/usecase/contact"
	sitemapUC "marketing-cms/internal/usecase/sitemap"

	hhttp "marketing-cms/internal/handler/http"
	hauth "marketing-cms/internal/handler/http/auth"
	hblog "marketing-cms/internal/handler/http/blog"
	hcontact "marketing-cms/internal/handler/http/contact"
	"marketing-cms/internal/handler/http/requestid"
	hsitemap "marketing-cms/internal/handler/http/sitemap"
	"marketing-cms/internal/observability/logging"
	"marketing-cms/internal/observability/tracing"
)

func main() {
	logger := initLogger()
	validateStartupSecrets(logger)

	client, database := db.Open()
	defer db.Close(client)

	ensureIndexes(logger, database)

	version := getVersion()
	handler := setupServer(logger, client, database, version)

	runServer(logger, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateStartupSecrets refuses to start with missing or weak credentials.
func validateStartupSecrets(logger *slog.Logger) {
	if err := hauth.ValidateAdminCredentials(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := hauth.ValidateJWTSecret(); err != nil {
		logger.Error("jwt secret validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func ensureIndexes(logger *slog.Logger, database *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongoRepo.EnsureArticleIndexes(ctx, database); err != nil {
		logger.Error("failed to create indexes", slog.Any("error", err))
		os.Exit(1)
	}
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires services, routes and the middleware chain.
func setupServer(logger *slog.Logger, client *mongo.Client, database *mongo.Database, version string) http.Handler {
	siteCfg := config.LoadSiteConfig()

	articleRepo := mongoRepo.NewArticleRepo(database)
	contactRepo := mongoRepo.NewContactRepo(database)

	blogSvc := &blogUC.Service{Repo: articleRepo, ExcerptMax: siteCfg.ExcerptMax}
	contactSvc := &contactUC.Service{Repo: contactRepo}
	sitemapSvc := &sitemapUC.Service{Repo: articleRepo, BaseURL: siteCfg.BaseURL}

	mux := setupRoutes(client, version, blogSvc, contactSvc, sitemapSvc)
	return applyMiddleware(logger, mux)
}

// setupRoutes registers all HTTP routes (public and protected).
func setupRoutes(
	client *mongo.Client,
	version string,
	blogSvc *blogUC.Service,
	contactSvc *contactUC.Service,
	sitemapSvc *sitemapUC.Service,
) *http.ServeMux {
	mux := http.NewServeMux()

	// auth endpoint: 5 requests per minute per IP
	authRateLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)
	mux.Handle("POST   /auth/token", authRateLimiter.Limit(hauth.TokenHandler(&hauth.BasicAuthProvider{})))

	mux.Handle("GET    /health", &hhttp.HealthHandler{Client: client, Version: version})
	mux.Handle("GET    /ready", &hhttp.ReadyHandler{Client: client})
	mux.Handle("GET    /live", &hhttp.LiveHandler{})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	mux.Handle("GET    /sitemap.xml", hsitemap.Handler{Svc: sitemapSvc})

	hblog.Register(mux, blogSvc)
	hcontact.Register(mux, contactSvc)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain, innermost first.
// Order: Request ID → Tracing → Recovery → Logging → Body Limit → Metrics → routes
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownTimeout := config.GetEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
