// Package auth implements the single shared credential gate. The secret is
// stored as a bcrypt hash and verified with a constant-time comparison, a
// deliberate hardening over the reversible obfuscation this design replaced.
package auth

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/atlas-erp/atlas-erp/internal/shared"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Gate stores one obligation-free credential and a session flag. The ledger
// and repositories never consult it; it only guards the HTTP entry points.
type Gate struct {
	store  storage.Store
	logger *slog.Logger
}

// NewGate constructs a Gate over the persistence gateway.
func NewGate(store storage.Store, logger *slog.Logger) *Gate {
	return &Gate{store: store, logger: logger}
}

// HasCredential reports whether a secret has been configured.
func (g *Gate) HasCredential(ctx context.Context) bool {
	var hash string
	found, err := g.store.Get(ctx, storage.KeyPassword, &hash)
	if err != nil {
		g.logger.Error("credential read failed", slog.Any("error", err))
		return false
	}
	return found && hash != ""
}

// SetCredential hashes and stores the secret. Replacing an existing secret
// requires verifying the old one first; the handler enforces that.
func (g *Gate) SetCredential(ctx context.Context, secret string) error {
	if len(secret) < 4 {
		return shared.Validationf("password must be at least 4 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return g.store.Set(ctx, storage.KeyPassword, string(hash))
}

// Verify checks the secret against the stored hash in constant time.
func (g *Gate) Verify(ctx context.Context, secret string) bool {
	var hash string
	found, err := g.store.Get(ctx, storage.KeyPassword, &hash)
	if err != nil || !found || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// Login verifies the secret and, on success, starts a session.
func (g *Gate) Login(ctx context.Context, secret string) bool {
	if !g.Verify(ctx, secret) {
		return false
	}
	g.StartSession(ctx)
	return true
}

// StartSession raises the session flag.
func (g *Gate) StartSession(ctx context.Context) {
	if err := g.store.Set(ctx, storage.KeySession, true); err != nil {
		g.logger.Error("session write failed", slog.Any("error", err))
	}
}

// EndSession clears the session flag.
func (g *Gate) EndSession(ctx context.Context) {
	if err := g.store.Remove(ctx, storage.KeySession); err != nil {
		g.logger.Error("session clear failed", slog.Any("error", err))
	}
}

// IsSessionActive reports whether a session is in progress.
func (g *Gate) IsSessionActive(ctx context.Context) bool {
	var active bool
	found, err := g.store.Get(ctx, storage.KeySession, &active)
	if err != nil {
		g.logger.Error("session read failed", slog.Any("error", err))
		return false
	}
	return found && active
}
