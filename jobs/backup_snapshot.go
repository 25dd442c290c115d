package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/atlas-erp/atlas-erp/internal/backup"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

const (
	snapshotKeyPrefix = "atlas_snapshot_"
	snapshotIndexKey  = "atlas_snapshots"
)

// BackupSnapshotJob writes a timestamped export document to its own storage
// key, outside the keys the application clears. An index blob tracks the
// snapshot keys so old ones can be pruned.
type BackupSnapshotJob struct {
	backup *backup.Service
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewBackupSnapshotJob constructs the job.
func NewBackupSnapshotJob(backupSvc *backup.Service, store storage.Store, logger *slog.Logger) *BackupSnapshotJob {
	return &BackupSnapshotJob{backup: backupSvc, store: store, logger: logger, now: time.Now}
}

// Handle processes TaskBackupSnapshot tasks.
func (j *BackupSnapshotJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload BackupSnapshotPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}

	data, err := j.backup.ExportJSON(ctx)
	if err != nil {
		return err
	}
	key := snapshotKeyPrefix + j.now().Format("2006-01-02")
	if err := j.store.Set(ctx, key, json.RawMessage(data)); err != nil {
		return err
	}
	j.logger.Info("backup snapshot written",
		slog.String("key", key), slog.Int("bytes", len(data)))

	if err := j.prune(ctx, key, payload.Keep); err != nil {
		j.logger.Warn("snapshot prune failed", slog.Any("error", err))
	}
	return nil
}

// prune records the new key in the index and removes the oldest snapshots
// beyond keep. A keep of zero disables retention.
func (j *BackupSnapshotJob) prune(ctx context.Context, newKey string, keep int) error {
	var index []string
	if _, err := j.store.Get(ctx, snapshotIndexKey, &index); err != nil {
		return err
	}

	present := false
	for _, key := range index {
		if key == newKey {
			present = true
			break
		}
	}
	if !present {
		index = append(index, newKey)
	}

	// Daily keys sort chronologically, oldest first.
	for keep > 0 && len(index) > keep {
		oldest := index[0]
		if err := j.store.Remove(ctx, oldest); err != nil {
			return err
		}
		j.logger.Info("backup snapshot pruned", slog.String("key", oldest))
		index = index[1:]
	}

	return j.store.Set(ctx, snapshotIndexKey, index)
}
