// @title         jobboard-service API
// @version       1.0
// @description   Доска вакансий: поиск с фасетами, сортировкой и слайдером зарплаты.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/Withvansh/college-fest-sub003/api/http"
	"github.com/Withvansh/college-fest-sub003/api/http/handlers"
	_ "github.com/Withvansh/college-fest-sub003/docs"
	"github.com/Withvansh/college-fest-sub003/pkg/auth"
	"github.com/Withvansh/college-fest-sub003/pkg/config"
	"github.com/Withvansh/college-fest-sub003/pkg/health"
	"github.com/Withvansh/college-fest-sub003/pkg/health/checkers"
	"github.com/Withvansh/college-fest-sub003/pkg/jobs"
	pgrepo "github.com/Withvansh/college-fest-sub003/pkg/repository/postgres"
	redisrepo "github.com/Withvansh/college-fest-sub003/pkg/repository/redis"
	"github.com/Withvansh/college-fest-sub003/pkg/scheduler"
	"github.com/Withvansh/college-fest-sub003/pkg/security/jwt"
	"github.com/Withvansh/college-fest-sub003/pkg/storage/postgres"
	"github.com/Withvansh/college-fest-sub003/pkg/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	checks := []health.Checker{checkers.NewPostgresChecker(pool)}

	// Redis необязателен: без него снимок живёт только в памяти процесса.
	var cache jobs.SnapshotCache
	if cfg.RedisURL != "" {
		rdb, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		cache = redisrepo.NewSnapshotCache(rdb, redisrepo.DefaultSnapshotKey, cfg.SnapshotTTL())
		checks = append(checks, checkers.NewRedisChecker(rdb))
	} else {
		slog.Warn("REDIS_URL is empty, snapshot cache disabled")
	}

	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	authUC := auth.NewAuthService(pgrepo.NewUserRepository(pool), jwtGen)
	jobsUC := jobs.NewService(pgrepo.NewJobRepository(pool), cache, cfg.SnapshotTTL())

	refresher := scheduler.New(jobsUC, cfg.RefreshSpec)
	if err := refresher.Start(ctx); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer refresher.Stop()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	http.Register(app,
		handlers.NewAuthHandler(authUC),
		handlers.NewHealthHandler(health.NewService(checks...)),
		handlers.NewJobsHandler(jobsUC),
		jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("shutdown", slog.Any("error", err))
		}
	}()

	slog.Info("HTTP server listening", slog.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
