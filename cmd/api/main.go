package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/usecases"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/auth"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/config"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/blacklist"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/queue"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/source"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/infrastructure/supabase"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/interfaces/http/routes"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}

	ctx := context.Background()
	location := utils.GetLocation(cfg.Timezone)
	clock := utils.NewSystemClock(location)

	stores, err := source.Open(ctx, cfg, location)
	if err != nil {
		log.Fatalf("❌ Error setting up record source: %v", err)
	}

	// Redis é opcional: sem ele não há fila nem blacklist de tokens
	var redisClient *redis.Client
	var enqueuer *queue.Enqueuer
	if cfg.QueueEnabled() {
		redisClient, err = blacklist.Connect(ctx, cfg.Redis.URI)
		if err != nil {
			log.Fatalf("❌ Error connecting to Redis: %v", err)
		}
		enqueuer = queue.NewEnqueuer(cfg.Redis.URI, cfg.Redis.QueueMaxRetry)
	} else {
		log.Println("⚠️ REDIS_URI não definida: fila de reprocessamento e blacklist desativadas")
	}

	var authenticator usecases.Authenticator
	switch cfg.Auth.Provider {
	case config.AuthSupabase:
		authenticator = supabase.NewAuthenticator(stores.Supabase.Auth)
	default:
		authenticator = auth.NewLocalAuthenticator(stores.Admins)
	}

	membership := cache.New[entities.AdminUser](time.Minute)
	defer membership.Close()

	var surveyQueue usecases.SubmitEnqueuer
	if enqueuer != nil {
		surveyQueue = enqueuer
	}
	surveyUseCase := usecases.NewSurveyUseCase(stores.Surveys, surveyQueue, clock, location)
	authUseCase := usecases.NewAuthUseCase(
		authenticator,
		stores.Admins,
		auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry),
		blacklist.NewRedisStore(redisClient),
		membership,
		cfg.Auth.AdminCacheTTL,
		clock,
	)

	stop := make(chan struct{})
	submitLimiter := middleware.NewRateLimiter(cfg.Server.SubmitRatePerMinute)
	submitLimiter.StartCleanup(10*time.Minute, stop)
	loginLimiter := middleware.NewRateLimiter(cfg.Server.LoginRatePerMinute)
	loginLimiter.StartCleanup(10*time.Minute, stop)

	if cfg.Server.ProxyHeader == "" {
		log.Println("ℹ️ PROXY_HEADER não definido: o limite por IP usa o endereço da conexão")
	}
	app := fiber.New(middleware.AppConfig(cfg.Server.ProxyHeader))

	middleware.SetupMiddlewares(app, cfg.Server.AllowedOrigins)

	routes.SetupRoutes(app, routes.Dependencies{
		Handlers: handlers.NewHandlers(
			surveyUseCase,
			authUseCase,
			handlers.NewPerformanceHandler(stores.Surveys, cfg.Source.Kind, location),
			location,
		),
		Authorizer:    authUseCase,
		SubmitLimiter: submitLimiter,
		LoginLimiter:  loginLimiter,
	})

	go func() {
		log.Printf("🚀 Server is running on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Encerrando servidor...")
	close(stop)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("⚠️ Erro ao encerrar servidor: %v", err)
	}
	if enqueuer != nil {
		_ = enqueuer.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := stores.Close(shutdownCtx); err != nil {
		log.Printf("⚠️ Erro ao fechar fonte de registros: %v", err)
	}
}
