package app

import (
	"context"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/config"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/db"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/handlers"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/metrics"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/repository"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/routes"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/services"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/validator"
)

// App bundles what main needs for serving and shutdown.
type App struct {
	Router *mux.Router
	Pool   *pgxpool.Pool

	poolStats *metrics.PoolStatsCollector
}

func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Repositories
	articleRepo := repository.NewArticleRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)
	submissionRepo := repository.NewSubmissionRepo(pool)
	subscriberRepo := repository.NewSubscriberRepo(pool)
	userRepo := repository.NewUserRepo(pool)

	v := validator.NewValidator()

	// Services
	articleService := services.NewArticleService(articleRepo, categoryRepo, v)
	categoryService := services.NewCategoryService(categoryRepo, v)
	submissionService := services.NewSubmissionService(submissionRepo, v)
	subscriberService := services.NewSubscriberService(subscriberRepo, v)
	authService := services.NewAuthService(userRepo)
	mediaService := services.NewMediaService()

	if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Log.Warn("admin seed failed", zap.Error(err))
	}

	// Handlers
	articleHandler := handlers.NewArticleHandler(articleService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	healthHandler := handlers.NewHealthHandler(pool)

	poolStats := metrics.NewPoolStatsCollector(pool)
	poolStats.Start(15 * time.Second)

	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret,
		articleHandler, categoryHandler, submissionHandler,
		subscriberHandler, authHandler, mediaHandler, healthHandler)

	return &App{Router: router, Pool: pool, poolStats: poolStats}, nil
}

// Close releases everything InitApp started.
func (a *App) Close() {
	a.poolStats.Stop()
	a.Pool.Close()
}
