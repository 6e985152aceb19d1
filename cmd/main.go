package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/THE-GOOD-NEWS/tgnDashboard/docs"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/app"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/config"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/db"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
)

// @title The Good News Dashboard API
// @version 1.0
// @description Articles, categories, newsletters and form submissions for the dashboard and public site.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}

	warnings, err := cfg.Validate()
	for _, warn := range warnings {
		logger.Log.Warn(warn)
	}
	if err != nil {
		logger.Log.Fatal("invalid config", zap.Error(err))
	}
	logger.Log.Info("connecting to store", zap.String("dsn", cfg.GetDSNSafe()))

	if err := db.RunMigrations(cfg); err != nil {
		logger.Log.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application, err := app.InitApp(ctx, cfg)
	cancel()
	if err != nil {
		logger.Log.Fatal("failed to init application", zap.Error(err))
	}
	defer application.Close()

	application.Router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsMiddleware.Handler(application.Router),
	}

	go func() {
		logger.Log.Info("server started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("shutdown error", zap.Error(err))
	}
}
