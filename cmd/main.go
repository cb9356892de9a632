package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	deschandler "github.com/Jamolkhon5/museum/internal/ai/description/handler"
	"github.com/Jamolkhon5/museum/internal/ai/description/service"
	"github.com/Jamolkhon5/museum/internal/auth"
	"github.com/Jamolkhon5/museum/internal/config"
	"github.com/Jamolkhon5/museum/internal/handler"
	"github.com/Jamolkhon5/museum/internal/logger"
	"github.com/Jamolkhon5/museum/internal/metrics"
	"github.com/Jamolkhon5/museum/internal/repository"
)

func main() {
	// Загрузка конфигурации. Без MISTRAL_API_KEY сервис не стартует.
	cfg, err := config.NewConfig(".env")
	if err != nil {
		log.Fatal(err)
	}

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(appLogger)

	// Подключение к базе данных
	db, err := sqlx.Connect("postgres", cfg.PostgresDSN())
	if err != nil {
		appLogger.Error("failed to connect to postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(db.DB); err != nil {
		appLogger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Подключение к сервису auth
	authConfig, err := auth.NewConfig(".auth.env")
	if err != nil {
		appLogger.Error("failed to load auth config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var authClient *auth.Client
	if authConfig.Enabled() {
		conn, err := grpc.NewClient(authConfig.AuthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			appLogger.Error("failed to connect to auth service", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer conn.Close()
		authClient = auth.NewClient(conn, authConfig.AuthTimeout)
	} else {
		appLogger.Warn("AUTH_ADDR is empty, token verification disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Инициализация генератора описаний, репозитория и хендлеров
	mistral := service.NewMistralClient(service.MistralOptions{
		BaseURL:     cfg.MistralURL,
		ApiKey:      cfg.MistralApiKey,
		Model:       cfg.ModelName,
		Temperature: cfg.Temperature,
		Timeout:     cfg.MistralTimeout,
	}, logger.Component(appLogger, "mistral"))
	assistant := service.NewDescriptionAssistant(mistral, logger.Component(appLogger, "assistant"))
	descriptionHandler := deschandler.NewDescriptionHandler(assistant, m, logger.Component(appLogger, "description"))

	repo := repository.NewRepository(db)
	collectionHandler := handler.NewHandler(repo, logger.Component(appLogger, "collections"))

	// Настройка роутера
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.MistralTimeout + 30*time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", metrics.Handler(registry))

	r.Group(func(r chi.Router) {
		if authClient != nil {
			r.Use(authClient.Middleware(logger.Component(appLogger, "auth")))
		}
		descriptionHandler.RegisterRoutes(r)
		collectionHandler.RegisterRoutes(r)
	})

	// Настройка и запуск сервера
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		appLogger.Info("server started", slog.String("addr", cfg.HTTPAddr), slog.String("model", cfg.ModelName))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("listen failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutdown server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	appLogger.Info("server exiting")
}
