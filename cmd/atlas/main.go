package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/atlas-erp/atlas-erp/internal/app"
	"github.com/atlas-erp/atlas-erp/internal/auth"
	"github.com/atlas-erp/atlas-erp/internal/backup"
	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/ledger"
	"github.com/atlas-erp/atlas-erp/internal/ledger/export"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/settings"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	store, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open store", slog.Any("error", err))
		os.Exit(1)
	}
	defer cleanup()

	customerRepo := customers.NewRepository(store, logger)
	customerService := customers.NewService(customerRepo, logger)
	customerHandler := customers.NewHandler(logger, customerService)

	productRepo := inventory.NewRepository(store, logger)
	productService := inventory.NewService(productRepo, logger)
	productHandler := inventory.NewHandler(logger, productService)

	saleRepo := sales.NewRepository(store, logger)
	saleService := sales.NewService(saleRepo, productService, customerService, logger)
	saleHandler := sales.NewHandler(logger, saleService)

	purchaseRepo := purchases.NewRepository(store, logger)
	purchaseService := purchases.NewService(purchaseRepo, productService, logger)
	purchaseHandler := purchases.NewHandler(logger, purchaseService)

	settingsService := settings.NewService(store, logger)
	settingsHandler := settings.NewHandler(logger, settingsService)

	ledgerService := ledger.NewService(saleService, purchaseService, productService, customerService, logger)
	csvRenderer := export.NewRenderer(settingsService)
	ledgerHandler := ledger.NewHandler(logger, ledgerService, csvRenderer)

	gate := auth.NewGate(store, logger)
	authHandler := auth.NewHandler(logger, gate)

	backupService := backup.NewService(store, customerService, productService, saleService, purchaseService, settingsService, logger)
	backupHandler := backup.NewHandler(logger, backupService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		AuthHandler:      authHandler,
		CustomersHandler: customerHandler,
		ProductsHandler:  productHandler,
		SalesHandler:     saleHandler,
		PurchasesHandler: purchaseHandler,
		SettingsHandler:  settingsHandler,
		LedgerHandler:    ledgerHandler,
		BackupHandler:    backupHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

// openStore builds the record store for the configured driver. The returned
// cleanup closes any underlying connections and is safe to call once.
func openStore(ctx context.Context, cfg *app.Config, logger *slog.Logger) (storage.Store, func(), error) {
	switch cfg.StorageDriver {
	case app.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, err
		}
		pg := storage.NewPostgresStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pg, pool.Close, nil
	case app.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping", slog.Any("error", err))
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}
		return storage.NewRedisStore(client), cleanup, nil
	default:
		return storage.NewMemoryStore(), func() {}, nil
	}
}
