package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/atlas-erp/atlas-erp/internal/ledger"
)

// LowStockScanJob sweeps the product collection and logs every reorder
// alert, giving operators a periodic signal without polling the dashboard.
type LowStockScanJob struct {
	ledger *ledger.Service
	logger *slog.Logger
}

// NewLowStockScanJob constructs the job.
func NewLowStockScanJob(ledgerSvc *ledger.Service, logger *slog.Logger) *LowStockScanJob {
	return &LowStockScanJob{ledger: ledgerSvc, logger: logger}
}

// Handle processes TaskLowStockScan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, _ *asynq.Task) error {
	alerts := j.ledger.LowStock(ctx)
	for _, alert := range alerts {
		j.logger.Warn("low stock",
			slog.String("productId", alert.ProductID),
			slog.String("product", alert.ProductName),
			slog.Int("quantity", alert.CurrentQuantity),
			slog.Int("minQuantity", alert.MinQuantity),
			slog.String("status", string(alert.Status)))
	}
	j.logger.Info("low stock scan complete", slog.Int("alerts", len(alerts)))
	return nil
}
