package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"spotnere-backend/internal/config"
	"spotnere-backend/internal/middleware"
	"spotnere-backend/internal/observability"
	"spotnere-backend/internal/router"
	"spotnere-backend/internal/service"
	"spotnere-backend/internal/supabase"
	"spotnere-backend/pkg/logger"
)

func main() {
	// .env is optional, environment variables win either way.
	_ = godotenv.Load()

	cfgPath := os.Getenv("SPOTNERE_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/app.yaml"
	}
	cfg := config.MustLoad(cfgPath)
	serviceName := cfg.Observability.ServiceName
	if serviceName == "" {
		serviceName = "spotnere-backend"
	}
	environment := cfg.Observability.Environment
	if environment == "" {
		environment = "local"
	}
	log, err := logger.New(cfg.Logging.Level, environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log = log.With(
		zap.String("service", serviceName),
		zap.String("env", environment),
	)
	log.Info("loaded config", zap.String("path", cfgPath))

	tracingCfg := observability.TracingConfig{
		Enabled:          cfg.Observability.Tracing.Enabled,
		OTLPGrpcEndpoint: cfg.Observability.Tracing.OTLPGrpcEndpoint,
		Insecure:         cfg.Observability.Tracing.Insecure,
		SampleRate:       cfg.Observability.Tracing.SampleRate,
	}
	resourceCfg := observability.ResourceConfig{
		ServiceName: serviceName,
		Environment: environment,
	}
	tracingShutdown, err := observability.SetupTracing(context.Background(), tracingCfg, resourceCfg)
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracingShutdown(shutdownCtx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	sb, err := supabase.New(supabase.Config{
		ProjectURL: cfg.Supabase.URL,
		APIKey:     cfg.Supabase.Key(),
	})
	if err != nil {
		log.Fatal("supabase client init failed", zap.Error(err))
	}
	log.Info("configured supabase client", zap.String("url", cfg.Supabase.URL))

	services := service.NewRegistry(sb, cfg.Supabase.StorageBucket, log)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.ErrorHandler(log))
	engine.Use(middleware.RequestIDMiddleware(cfg.Observability.RequestIDHeader))
	if cfg.Observability.Tracing.Enabled {
		engine.Use(otelgin.Middleware(serviceName))
	}
	if cfg.Observability.Metrics.Enabled {
		metrics := observability.NewHTTPMetrics(observability.NewMetricsRegistry(), serviceName)
		engine.Use(metrics.Middleware())
		metricsPath := cfg.Observability.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		engine.GET(metricsPath, gin.WrapH(metrics.Handler()))
	}
	engine.Use(middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	engine.Use(cors.New(corsCfg))

	router.RegisterRoutes(engine, services, sb, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}
	go func() {
		log.Info("starting http server", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server run failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}
	log.Info("server exited")
}
