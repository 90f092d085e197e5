package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tenant-storefront/internal/client"
	"tenant-storefront/internal/component"
	"tenant-storefront/internal/config"
	"tenant-storefront/internal/logging"
	"tenant-storefront/internal/repository"
	"tenant-storefront/internal/server"
	"tenant-storefront/internal/service"
	"tenant-storefront/internal/view"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log)
	if cfg.Session.Secret == "" {
		logger.Warn("SESSION_SECRET is empty; every visitor is treated as anonymous")
	}

	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}

	businessRepo := repository.NewBusinessRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)

	if cfg.Database.Seed {
		if err := businessRepo.Seed(context.Background()); err != nil {
			logger.Error("failed to seed demo shop", "error", err)
			os.Exit(1)
		}
	}

	partials, err := component.NewPartials()
	if err != nil {
		logger.Error("failed to load component partials", "error", err)
		os.Exit(1)
	}
	componentRenderer := component.NewRenderer(partials)

	pageRenderer, err := view.New(view.Options{BaseURL: cfg.BaseURL, LoginURL: cfg.Session.LoginURL})
	if err != nil {
		logger.Error("failed to load page templates", "error", err)
		os.Exit(1)
	}

	shopService := service.NewShopService(
		businessRepo,
		productRepo,
		categoryRepo,
		reviewRepo,
		userRepo,
		componentRenderer,
		logger,
		cfg.Tenant.VisibleStatuses,
	)
	orderService := service.NewOrderService(
		businessRepo,
		productRepo,
		orderRepo,
		reviewRepo,
		userRepo,
		componentRenderer,
		logger,
	)
	profileService := service.NewProfileService(
		businessRepo,
		productRepo,
		orderRepo,
		wishlistRepo,
		userRepo,
		logger,
	)
	contactService := service.NewContactService(businessRepo, contactRepo, userRepo, logger)
	wishlistService := service.NewWishlistService(productRepo, wishlistRepo, logger)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		cfg,
		logger,
		pageRenderer,
		shopService,
		orderService,
		profileService,
		contactService,
		wishlistService,
	)

	logger.Info("starting HTTP server", "addr", serverAddr, "environment", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
