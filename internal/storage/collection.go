package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Collection is a typed CRUD view over one gateway key. Every mutation
// rewrites the whole blob under a per-collection lock, so concurrent
// read-modify-write cycles cannot interleave. Storage failures degrade:
// reads fall back to an empty collection, writes become logged no-ops.
type Collection[T any, PT interface {
	Record
	*T
}] struct {
	store  Store
	key    string
	prefix string
	logger *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewCollection binds a collection to a gateway key. prefix namespaces the
// generated ids (e.g. "customer" yields customer_<millis>_<entropy>).
func NewCollection[T any, PT interface {
	Record
	*T
}](store Store, key, prefix string, logger *slog.Logger) *Collection[T, PT] {
	return &Collection[T, PT]{
		store:  store,
		key:    key,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (c *Collection[T, PT]) WithClock(now func() time.Time) *Collection[T, PT] {
	c.now = now
	return c
}

// GetAll returns the full collection in insertion order. Never fails: an
// uninitialized or unreadable blob yields an empty slice.
func (c *Collection[T, PT]) GetAll(ctx context.Context) []T {
	return c.load(ctx)
}

// Add stamps identity and timestamps on the record, appends it and persists
// the whole collection. Validation is the caller's responsibility.
func (c *Collection[T, PT]) Add(ctx context.Context, record T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	m := PT(&record).meta()
	m.ID = c.newID(now)
	m.CreatedAt = now
	m.UpdatedAt = now

	items := c.load(ctx)
	items = append(items, record)
	c.persist(ctx, items)
	return record
}

// Update applies mutate to the record with the given id and refreshes its
// updatedAt stamp. Returns false when no record matches.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, mutate func(*T)) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	for i := range items {
		if PT(&items[i]).meta().ID != id {
			continue
		}
		mutate(&items[i])
		PT(&items[i]).meta().UpdatedAt = c.now()
		c.persist(ctx, items)
		updated := items[i]
		return &updated, true
	}
	return nil, false
}

// Delete removes the record with the given id and reports whether anything
// was removed. No cascading.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	kept := items[:0:0]
	for _, item := range items {
		if PT(&item).meta().ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false
	}
	c.persist(ctx, kept)
	return true
}

// FindByID returns a copy of the matching record.
func (c *Collection[T, PT]) FindByID(ctx context.Context, id string) (*T, bool) {
	for _, item := range c.load(ctx) {
		if PT(&item).meta().ID == id {
			found := item
			return &found, true
		}
	}
	return nil, false
}

func (c *Collection[T, PT]) load(ctx context.Context) []T {
	var items []T
	if _, err := c.store.Get(ctx, c.key, &items); err != nil {
		c.logger.Error("storage read failed, serving empty collection",
			slog.String("key", c.key), slog.Any("error", err))
		return nil
	}
	return items
}

func (c *Collection[T, PT]) persist(ctx context.Context, items []T) {
	if err := c.store.Set(ctx, c.key, items); err != nil {
		c.logger.Error("storage write failed, change not durable",
			slog.String("key", c.key), slog.Any("error", err))
	}
}

// newID combines the creation instant with a high-entropy suffix so ids
// cannot collide under same-millisecond calls.
func (c *Collection[T, PT]) newID(now time.Time) string {
	entropy := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%d_%s", c.prefix, now.UnixMilli(), entropy)
}
