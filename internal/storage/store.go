package storage

import "context"

// Storage keys, one blob per collection.
const (
	KeyCustomers = "atlas_customers"
	KeyProducts  = "atlas_products"
	KeySales     = "atlas_sales"
	KeyPurchases = "atlas_purchases"
	KeySettings  = "atlas_settings"
	KeyPassword  = "atlas_password"
	KeySession   = "atlas_auth"
)

// Keys lists every key owned by the application, used by Clear.
func Keys() []string {
	return []string{
		KeyCustomers, KeyProducts, KeySales, KeyPurchases,
		KeySettings, KeyPassword, KeySession,
	}
}

// Store is the persistence gateway: a key/value capability over JSON blobs.
// Writes are atomic per key. Implementations return errors; the degrade
// policy (default on read failure, no-op on write failure) lives in the
// collection layer, not here.
type Store interface {
	// Get unmarshals the blob at key into dest and reports whether the key
	// existed.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
