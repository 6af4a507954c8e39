package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/foodyy-service/internal/api/http"
	"github.com/spec-kit/foodyy-service/internal/api/http/handlers"
	"github.com/spec-kit/foodyy-service/internal/auth"
	"github.com/spec-kit/foodyy-service/internal/config"
	"github.com/spec-kit/foodyy-service/internal/events"
	"github.com/spec-kit/foodyy-service/internal/notify"
	"github.com/spec-kit/foodyy-service/internal/observability"
	"github.com/spec-kit/foodyy-service/internal/persistence"
	"github.com/spec-kit/foodyy-service/internal/repository"
	"github.com/spec-kit/foodyy-service/internal/service"
	"github.com/spec-kit/foodyy-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	foodRepo := repository.NewFoodRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	wishlistRepo := repository.NewWishlistRepository(pool)
	addressRepo := repository.NewAddressRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	if err != nil {
		logger.Fatal("failed to init token manager", zap.Error(err))
	}

	var blacklist auth.Blacklist
	if cfg.Auth.BlacklistBackedByRedis {
		blacklist = auth.NewRedisBlacklist(redis.Client, tokens.ExpiryOf, cfg.Auth.AccessTokenTTL(), logger)
	} else {
		memBlacklist := auth.NewMemoryBlacklist(tokens.ExpiryOf, cfg.Auth.AccessTokenTTL())
		go memBlacklist.Run(ctx, cfg.Auth.BlacklistSweepInterval())
		blacklist = memBlacklist
	}

	metrics := observability.NewMetrics()
	principals := repository.NewPrincipalStore(adminRepo, customerRepo)

	mailer := notify.NewLogMailer(cfg.Mail.From, logger)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(principals, tokens, blacklist, metrics, logger)
	customerService := service.NewCustomerService(customerRepo, cartRepo, dispatcher, cfg.Auth.BcryptCost)
	foodService := service.NewFoodService(foodRepo)
	cartService := service.NewCartService(cartRepo, customerRepo, foodRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, foodRepo, cartService)
	addressService := service.NewAddressService(addressRepo)
	orderService := service.NewOrderService(orderRepo, customerRepo, cartRepo, dispatcher)
	resetService := service.NewForgotPasswordService(resetRepo, customerRepo, mailer, cfg.Auth.OTPTTL(), cfg.Auth.BcryptCost)
	notificationService := service.NewNotificationService(dispatcher, mailer, logger)
	worker.StartNotificationWorker(notificationService)

	policy := auth.NewPolicy(auth.DefaultRules())
	gate := auth.NewGate(tokens, blacklist, principals, policy, logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, cfg, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Admins:         handlers.NewAdminHandler(authService),
		Customers:      handlers.NewCustomerHandler(authService, customerService),
		Foods:          handlers.NewFoodHandler(foodService),
		Carts:          handlers.NewCartHandler(cartService),
		Orders:         handlers.NewOrderHandler(orderService),
		Wishlists:      handlers.NewWishlistHandler(wishlistService),
		Addresses:      handlers.NewAddressHandler(addressService),
		ForgotPassword: handlers.NewForgotPasswordHandler(resetService),
		Gate:           gate,
		Policy:         policy,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
