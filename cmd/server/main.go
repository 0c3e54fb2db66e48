package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/winkel/app/controllers"
	"github.com/shashiranjanraj/winkel/app/repositories"
	"github.com/shashiranjanraj/winkel/app/routes"
	"github.com/shashiranjanraj/winkel/app/services"
	"github.com/shashiranjanraj/winkel/config"
	_ "github.com/shashiranjanraj/winkel/database/migrations"
	"github.com/shashiranjanraj/winkel/database/seeders"
	"github.com/shashiranjanraj/winkel/pkg/auth"
	"github.com/shashiranjanraj/winkel/pkg/database"
	"github.com/shashiranjanraj/winkel/pkg/logger"
	"github.com/shashiranjanraj/winkel/pkg/metrics"
	"github.com/shashiranjanraj/winkel/pkg/middleware"
	"github.com/shashiranjanraj/winkel/pkg/migration"
	"github.com/shashiranjanraj/winkel/pkg/reqid"
	"github.com/shashiranjanraj/winkel/pkg/router"
)

func main() {
	if err := run(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg.AppEnv)

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}

	if err := migration.New(db).Run(); err != nil {
		return err
	}
	if cfg.SeedOnBoot {
		if err := seeders.RunAll(db); err != nil {
			return err
		}
	}

	// Repositories and services get their dependencies here, once.
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	guard := middleware.NewAuth(tokens, userRepo)

	ctrls := routes.Controllers{
		Health: controllers.NewHealthController(db),
		Auth:   controllers.NewAuthController(services.NewAuthService(userRepo, tokens)),
		Users:  controllers.NewUserController(services.NewUserService(userRepo)),
		Items:  controllers.NewItemController(services.NewCatalogService(itemRepo)),
		Orders: controllers.NewOrderController(services.NewOrderService(orderRepo, itemRepo, cfg.OrderPriceCheck)),
		Admin:  controllers.NewAdminController(services.NewAdminService(userRepo, cfg.AdminSecret)),
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(cfg.AllowedOrigins),
	)
	r.Get("/metrics", "metrics", metrics.Handler())
	routes.RegisterAPI(r, ctrls, guard)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
