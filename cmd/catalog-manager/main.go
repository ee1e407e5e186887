package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/catalog-manager/internal/api/handlers"
	"github.com/aaravmahajanofficial/catalog-manager/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-manager/internal/config"
	"github.com/aaravmahajanofficial/catalog-manager/internal/health"
	"github.com/aaravmahajanofficial/catalog-manager/internal/metrics"
	repository "github.com/aaravmahajanofficial/catalog-manager/internal/repositories"
	redisRepo "github.com/aaravmahajanofficial/catalog-manager/internal/repositories/redis"
	service "github.com/aaravmahajanofficial/catalog-manager/internal/services"
	"github.com/aaravmahajanofficial/catalog-manager/internal/web"
	"github.com/joho/godotenv"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Local development convenience, ignored when the file is absent
	_ = godotenv.Load()

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelMigrate()

	if err := repos.Migrate(migrateCtx); err != nil {
		slog.Error("❌ Error migrating the database schema", "error", err.Error())
		os.Exit(1)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		slog.Error("❌ Error parsing the view templates", "error", err.Error())
		os.Exit(1)
	}

	categoryRepo := repository.NewCategoryRepo(repos.DB)
	itemRepo := repository.NewItemRepo(repos.DB)
	categoryService := service.NewCategoryService(categoryRepo, itemRepo)
	itemService := service.NewItemService(itemRepo)
	catalogService := service.NewCatalogService(categoryRepo, itemRepo)
	homeHandler := handlers.NewHomeHandler(catalogService, renderer)
	categoryHandler := handlers.NewCategoryHandler(categoryService, renderer)
	itemHandler := handlers.NewItemHandler(itemService, categoryService, renderer)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /catalog", homeHandler.Index())
	routerMux.HandleFunc("GET /catalog/categories", categoryHandler.List())
	routerMux.HandleFunc("GET /catalog/category/create", categoryHandler.CreateForm())
	routerMux.HandleFunc("POST /catalog/category/create", categoryHandler.Create())
	routerMux.HandleFunc("GET /catalog/category/{id}", categoryHandler.Detail())
	routerMux.HandleFunc("GET /catalog/category/{id}/update", categoryHandler.UpdateForm())
	routerMux.HandleFunc("POST /catalog/category/{id}/update", categoryHandler.Update())
	routerMux.HandleFunc("GET /catalog/category/{id}/delete", categoryHandler.DeleteForm())
	routerMux.HandleFunc("POST /catalog/category/{id}/delete", categoryHandler.Delete())
	routerMux.HandleFunc("GET /catalog/item_list", itemHandler.List())
	routerMux.HandleFunc("GET /catalog/item/create", itemHandler.CreateForm())
	routerMux.HandleFunc("POST /catalog/item/create", itemHandler.Create())
	routerMux.HandleFunc("GET /catalog/item/{id}", itemHandler.Detail())
	routerMux.HandleFunc("GET /catalog/item/{id}/update", itemHandler.UpdateForm())
	routerMux.HandleFunc("POST /catalog/item/{id}/update", itemHandler.Update())
	routerMux.HandleFunc("GET /catalog/item/{id}/delete", itemHandler.DeleteForm())
	routerMux.HandleFunc("POST /catalog/item/{id}/delete", itemHandler.Delete())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/catalog", http.StatusSeeOther)
	})

	// Middleware chaining
	var handler http.Handler = routerMux

	if cfg.RateConfig.Enabled {
		limiter, err := redisRepo.NewRateLimiter(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		handler = middleware.RateLimit(limiter, handler)
	}

	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
