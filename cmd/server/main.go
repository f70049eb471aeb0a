package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/matromatro/casa-pao-backend-frontend/internal/checkout"
	"github.com/matromatro/casa-pao-backend-frontend/internal/config"
	h "github.com/matromatro/casa-pao-backend-frontend/internal/http"
	"github.com/matromatro/casa-pao-backend-frontend/internal/repository"
	"github.com/matromatro/casa-pao-backend-frontend/internal/service"
	"github.com/matromatro/casa-pao-backend-frontend/pkg/logger"
	"github.com/matromatro/casa-pao-backend-frontend/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	repo, err := repository.NewRepository(cfg.DB.Path)
	if err != nil {
		log.Fatal("failed to open database", logger.Error(err))
	}
	defer repo.Close()

	if err := repo.RunMigrations(); err != nil {
		log.Fatal("failed to run migrations", logger.Error(err))
	}

	seeded, err := repo.SeedProducts(context.Background(), repository.DefaultCatalog)
	if err != nil {
		log.Fatal("failed to seed catalog", logger.Error(err))
	}
	if seeded > 0 {
		log.Info("seeded default catalog", logger.Int("products", seeded))
	}

	var provider checkout.Provider
	if cfg.Checkout.Enabled {
		provider = checkout.NewStripeProvider(
			cfg.Checkout.Secret,
			cfg.Checkout.SuccessURL,
			cfg.Checkout.CancelURL,
			cfg.Checkout.Currency,
		)
		log.Info("hosted checkout enabled")
	}

	orderService := service.NewOrderService(repo, provider)
	productHandler := h.NewProductHandler(orderService)
	ordersHandler := h.NewOrdersHandler(orderService)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(h.RequestLogger(log))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		// Open for local testing, same as the original deployment.
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"ok":      true,
			"service": "Casa do pão francês — Pedidos API",
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/products", productHandler.List)
	r.Post("/orders", ordersHandler.Create)
	r.Get("/orders/{order_id}", ordersHandler.Get)

	r.Handle("/app/*", http.StripPrefix("/app/", http.FileServer(http.FS(web.FS))))

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      otelhttp.NewHandler(http.MaxBytesHandler(r, cfg.Server.MaxRequestBodySize), "pedidos-api"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", logger.String("addr", cfg.Server.Address()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", logger.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", logger.Error(err))
	}

	log.Info("server exited")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
