// AngelaMos | 2026
// serve.go

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/carterperez-dev/templates/insights-api/internal/admin"
	"github.com/carterperez-dev/templates/insights-api/internal/auth"
	"github.com/carterperez-dev/templates/insights-api/internal/company"
	"github.com/carterperez-dev/templates/insights-api/internal/config"
	"github.com/carterperez-dev/templates/insights-api/internal/core"
	"github.com/carterperez-dev/templates/insights-api/internal/evaluation"
	"github.com/carterperez-dev/templates/insights-api/internal/health"
	"github.com/carterperez-dev/templates/insights-api/internal/insight"
	"github.com/carterperez-dev/templates/insights-api/internal/middleware"
	"github.com/carterperez-dev/templates/insights-api/internal/product"
	"github.com/carterperez-dev/templates/insights-api/internal/revenue"
	"github.com/carterperez-dev/templates/insights-api/internal/sale"
	"github.com/carterperez-dev/templates/insights-api/internal/server"
	"github.com/carterperez-dev/templates/insights-api/internal/user"
)

const bannerMessage = "insights API is running"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	return run(cmd.Context(), cfg)
}

//nolint:funlen // bootstrap code is inherently verbose
func run(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}
	defer func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := migrateUp(cfg.Database.URL); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}()
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	var redis *core.Redis
	if cfg.Redis.URL != "" {
		redis, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("redis close error", "error", err)
			}
		}()
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis not configured, rate limiting in process")
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", jwtManager.Algorithm(),
		"key_id", jwtManager.GetKeyID(),
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)

	authSvc := auth.NewService(jwtManager, userSvc)
	authHandler := auth.NewHandler(authSvc)

	companySvc := company.NewService(company.NewRepository(db.DB))
	revenueSvc := revenue.NewService(revenue.NewRepository(db.DB), companySvc)
	saleSvc := sale.NewService(sale.NewRepository(db.DB), revenueSvc)
	productSvc := product.NewService(product.NewRepository(db.DB), companySvc)
	evaluationSvc := evaluation.NewService(evaluation.NewRepository(db.DB), companySvc)

	companyHandler := company.NewHandler(companySvc)
	revenueHandler := revenue.NewHandler(revenueSvc)
	saleHandler := sale.NewHandler(saleSvc)
	productHandler := product.NewHandler(productSvc)
	evaluationHandler := evaluation.NewHandler(evaluationSvc)
	insightHandler := insight.NewHandler(insight.NewRepository(db.DB))

	// A nil *core.Redis must reach the probes as a nil interface.
	var (
		redisChecker health.Checker
		redisProbe   admin.RedisProbe
	)
	if redis != nil {
		redisChecker = redis
		redisProbe = redis
	}
	healthHandler := health.NewHandler(db, redisChecker)
	adminHandler := admin.NewHandler(db, redisProbe, admin.NewRepository(db.DB))

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
		ServiceName:   cfg.Otel.ServiceName,
		Tracing:       telemetry != nil,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))

	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled {
		metrics = middleware.NewMetrics()
		router.Use(metrics.Handler)
	}

	authLimit := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimit.Enabled {
		var rdb *goredis.Client
		if redis != nil {
			rdb = redis.Client
		}

		globalCfg := middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}
		authCfg := middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.AuthRequests,
				cfg.RateLimit.AuthBurst,
				cfg.RateLimit.Window,
			),
			KeyFunc:  middleware.KeyByScopedIP("auth"),
			FailOpen: true,
		}
		if metrics != nil {
			globalCfg.OnLimited = metrics.RateLimited("global")
			authCfg.OnLimited = metrics.RateLimited("auth")
		}

		router.Use(middleware.NewRateLimiter(rdb, globalCfg).Handler)
		authLimit = middleware.NewRateLimiter(rdb, authCfg).Handler
	}

	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		core.OK(w, map[string]string{"message": bannerMessage})
	})

	healthHandler.RegisterRoutes(router)

	if metrics != nil {
		router.Method(http.MethodGet, cfg.Metrics.Path, metrics.Exposition())
	}

	if jwks, ok := jwtManager.JWKSHandler(); ok {
		router.Get("/.well-known/jwks.json", jwks)
	}

	mountRoutes(router, apiRoutes{
		auth:          authHandler,
		admin:         adminHandler,
		authenticator: middleware.Authenticator(authSvc),
		authLimit:     authLimit,
		resources: []routeRegistrar{
			companyHandler,
			revenueHandler,
			saleHandler,
			productHandler,
			evaluationHandler,
			insightHandler,
		},
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+cfg.Server.DrainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, cfg.Server.DrainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func migrateUp(databaseURL string) error {
	m, err := core.NewMigrator(databaseURL)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	defer m.Close() //nolint:errcheck // best-effort close after migrating

	if err := m.Up(); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
