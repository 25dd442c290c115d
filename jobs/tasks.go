// Package jobs holds the scheduled maintenance tasks. The ledger core stays
// synchronous; the worker only invokes the same services on a timer.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskBackupSnapshot is the task type for periodic backup snapshots.
	TaskBackupSnapshot = "backup:snapshot"
	// TaskLowStockScan is the task type for the low-stock sweep.
	TaskLowStockScan = "inventory:lowstock_scan"
)

// BackupSnapshotPayload configures a snapshot run.
type BackupSnapshotPayload struct {
	// Keep bounds how many timestamped snapshots are retained.
	Keep int `json:"keep"`
}

// NewBackupSnapshotTask constructs an Asynq task.
func NewBackupSnapshotTask(payload BackupSnapshotPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBackupSnapshot, data), nil
}

// NewLowStockScanTask constructs an Asynq task.
func NewLowStockScanTask() (*asynq.Task, error) {
	return asynq.NewTask(TaskLowStockScan, nil), nil
}
