package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/atlas-erp/atlas-erp/internal/app"
	"github.com/atlas-erp/atlas-erp/internal/backup"
	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/ledger"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/settings"
	"github.com/atlas-erp/atlas-erp/internal/storage"
	"github.com/atlas-erp/atlas-erp/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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
	productRepo := inventory.NewRepository(store, logger)
	productService := inventory.NewService(productRepo, logger)
	saleRepo := sales.NewRepository(store, logger)
	saleService := sales.NewService(saleRepo, productService, customerService, logger)
	purchaseRepo := purchases.NewRepository(store, logger)
	purchaseService := purchases.NewService(purchaseRepo, productService, logger)
	settingsService := settings.NewService(store, logger)
	ledgerService := ledger.NewService(saleService, purchaseService, productService, customerService, logger)
	backupService := backup.NewService(store, customerService, productService, saleService, purchaseService, settingsService, logger)

	snapshotJob := jobs.NewBackupSnapshotJob(backupService, store, logger)
	lowStockJob := jobs.NewLowStockScanJob(ledgerService, logger)

	snapshotTask, err := jobs.NewBackupSnapshotTask(jobs.BackupSnapshotPayload{Keep: 7})
	if err != nil {
		logger.Error("build snapshot task", slog.Any("error", err))
		os.Exit(1)
	}
	lowStockTask, err := jobs.NewLowStockScanTask()
	if err != nil {
		logger.Error("build low stock task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskBackupSnapshot, Handler: snapshotJob.Handle},
			{Type: jobs.TaskLowStockScan, Handler: lowStockJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.SnapshotSchedule, Task: snapshotTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: cfg.LowStockSchedule, Task: lowStockTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}

// openStore mirrors the server binary so scheduled jobs read the same data.
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
