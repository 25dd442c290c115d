package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atlas-erp/atlas-erp/internal/auth"
	"github.com/atlas-erp/atlas-erp/internal/backup"
	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/ledger"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/settings"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	AuthHandler      *auth.Handler
	CustomersHandler *customers.Handler
	ProductsHandler  *inventory.Handler
	SalesHandler     *sales.Handler
	PurchasesHandler *purchases.Handler
	SettingsHandler  *settings.Handler
	LedgerHandler    *ledger.Handler
	BackupHandler    *backup.Handler
}

// NewRouter constructs the chi.Router with Atlas defaults. Everything except
// the credential gate itself sits behind an active session.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)

	r.Group(func(r chi.Router) {
		r.Use(params.AuthHandler.RequireSession)
		r.Route("/customers", params.CustomersHandler.MountRoutes)
		r.Route("/products", params.ProductsHandler.MountRoutes)
		r.Route("/sales", params.SalesHandler.MountRoutes)
		r.Route("/purchases", params.PurchasesHandler.MountRoutes)
		r.Route("/settings", params.SettingsHandler.MountRoutes)
		r.Route("/ledger", params.LedgerHandler.MountRoutes)
		r.Route("/backup", params.BackupHandler.MountRoutes)
	})

	return r
}
