package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"storefront/cart"
	"storefront/checkout"
	"storefront/config"
	"storefront/database"
	"storefront/loader"
	"storefront/logger"
	"storefront/orders"
	"storefront/session"
	"storefront/settings"
)

func main() {
	configPath := flag.String("config", "", "path to storefront.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	lg, err := logger.Init(cfg.Logger)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer lg.Sync()

	dbConn, err := database.Open(cfg.Database)
	if err != nil {
		zap.L().Fatal("db open error", zap.Error(err))
	}
	defer dbConn.Close()

	if cfg.Database.ApplySchema {
		if err := loader.InitDatabase(dbConn, cfg.Database.SeedDir); err != nil {
			zap.L().Fatal("database initialization failed", zap.Error(err))
		}
		zap.L().Info("database initialization complete")
	}

	cartBackend, err := cart.OpenBolt(cfg.Cart.DataFile)
	if err != nil {
		zap.L().Fatal("cart storage open failed", zap.Error(err))
	}
	defer cartBackend.Close()

	store := database.NewStore(dbConn, cfg.Store.Source)

	workers := cfg.Inventory.Workers
	if !cfg.Inventory.Async {
		workers = 0
	}
	adjuster := checkout.NewInventoryAdjuster(store, workers, cfg.Inventory.Timeout)
	defer adjuster.Release()

	svc := Services{
		Store:     store,
		Carts:     cart.NewManager(cartBackend),
		Sessions:  session.NewManager([]byte(cfg.Server.SessionSecret), cfg.Cart.CookieName, cfg.Server.SecureCookie),
		Submitter: checkout.NewSubmitter(store, store, adjuster, store.Source()),
		Orders:    orders.NewService(store),
		Settings:  settings.NewService(store),
	}

	mux := http.NewServeMux()
	SetupRoutes(mux, svc)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zap.L().Info("starting server", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server start error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Warn("server shutdown error", zap.Error(err))
	}
	zap.L().Info("inventory adjustments", zap.Any("stats", adjuster.Stats()))
}
