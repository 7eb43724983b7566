package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/parisboutique/storefront/internal/api/handlers"
	"github.com/parisboutique/storefront/internal/api/middleware"
	"github.com/parisboutique/storefront/internal/auth"
	"github.com/parisboutique/storefront/internal/bus"
	"github.com/parisboutique/storefront/internal/config"
	"github.com/parisboutique/storefront/internal/health"
	"github.com/parisboutique/storefront/internal/metrics"
	service "github.com/parisboutique/storefront/internal/services"
	"github.com/parisboutique/storefront/internal/store"
	"github.com/parisboutique/storefront/internal/sync"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Optional .env for local development
	_ = godotenv.Load()

	// Load config
	cfg := config.MustLoad()

	// Embedded store setup
	st, err := store.NewBoltStore(cfg.Store.Path)
	if err != nil {
		slog.Error("Error opening the catalog store", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("Error closing the catalog store", slog.String("error", err.Error()))
		} else {
			slog.Info("Catalog store closed")
		}
	}()

	// Sync engine + event bus
	eventBus := bus.New()
	engine := sync.New(st, eventBus)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Seed the catalog before serving traffic
	products := engine.InitializeProducts(ctx)
	slog.Info("Catalog initialized", slog.Int("products", len(products)), slog.String("env", cfg.Env))

	// Cross-process watcher + integrity job
	watcher := sync.NewWatcher(engine, st, cfg.Sync.PollInterval)
	watcher.Start(ctx)
	defer watcher.Stop()

	// Catalog metrics follow bus notifications
	collector := metrics.NewCatalogCollector(engine, eventBus)
	if err := collector.Start(ctx); err != nil {
		slog.Error("Error starting catalog metrics collector", "error", err.Error())
		os.Exit(1)
	}

	authManager := auth.NewManager(st, &cfg.Security)
	inquiryService := service.NewInquiryService(st, cfg.Contact.WhatsAppNumber)

	productHandler := handlers.NewProductHandler(engine)
	authHandler := handlers.NewAuthHandler(authManager)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	authMiddleware := middleware.NewAuthMiddleware(authManager)

	healthHandler, err := health.NewHealthHandler(st)
	if err != nil {
		slog.Error("Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("POST /api/v1/products/restore", authMiddleware.Authenticate(productHandler.RestoreDefaults()))
	routerMux.HandleFunc("GET /api/v1/products/stats", authMiddleware.Authenticate(productHandler.SyncStats()))
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())
	routerMux.HandleFunc("GET /api/v1/auth/session", authMiddleware.Authenticate(authHandler.Session()))
	routerMux.HandleFunc("POST /api/v1/auth/logout", authMiddleware.Authenticate(authHandler.Logout()))
	routerMux.HandleFunc("POST /api/v1/inquiries", inquiryHandler.CreateInquiry())
	routerMux.HandleFunc("GET /api/v1/inquiries", authMiddleware.Authenticate(inquiryHandler.ListInquiries()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}
