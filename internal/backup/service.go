// Package backup serializes every collection into one transportable
// document and restores them atomically.
package backup

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/settings"
	"github.com/atlas-erp/atlas-erp/internal/shared"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Document is the export/import schema. On import, pointer fields
// distinguish "absent key, leave collection untouched" from "present but
// empty, overwrite with nothing". Unrecognized keys are ignored.
type Document struct {
	Customers  *[]customers.Customer  `json:"customers,omitempty"`
	Products   *[]inventory.Product   `json:"products,omitempty"`
	Sales      *[]sales.Sale          `json:"sales,omitempty"`
	Purchases  *[]purchases.Purchase  `json:"purchases,omitempty"`
	Settings   *settings.Settings     `json:"settings,omitempty"`
	ExportDate time.Time              `json:"exportDate"`
}

// Service snapshots and restores the collections. Restore writes through
// the gateway directly, bypassing repository id and timestamp stamping so
// imported records keep their original identities.
type Service struct {
	store     storage.Store
	customers *customers.Service
	products  *inventory.Service
	sales     *sales.Service
	purchases *purchases.Service
	settings  *settings.Service
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a new Service.
func NewService(
	store storage.Store,
	custs *customers.Service,
	products *inventory.Service,
	salesSvc *sales.Service,
	purchasesSvc *purchases.Service,
	settingsSvc *settings.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:     store,
		customers: custs,
		products:  products,
		sales:     salesSvc,
		purchases: purchasesSvc,
		settings:  settingsSvc,
		logger:    logger,
		now:       time.Now,
	}
}

// Export snapshots every collection plus settings into one document.
func (s *Service) Export(ctx context.Context) Document {
	customerList := s.customers.List(ctx)
	productList := s.products.List(ctx)
	saleList := s.sales.List(ctx)
	purchaseList := s.purchases.List(ctx)
	currentSettings := s.settings.Get(ctx)
	return Document{
		Customers:  &customerList,
		Products:   &productList,
		Sales:      &saleList,
		Purchases:  &purchaseList,
		Settings:   &currentSettings,
		ExportDate: s.now(),
	}
}

// ExportJSON renders the export document as indented JSON.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	return json.MarshalIndent(s.Export(ctx), "", "  ")
}

// Import parses the document fully before any write, then overwrites each
// collection present in it wholesale. Malformed input fails with no partial
// state change; missing keys leave their collections untouched.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return shared.Validationf("malformed backup document: %v", err)
	}

	if doc.Customers != nil {
		s.restore(ctx, storage.KeyCustomers, *doc.Customers)
	}
	if doc.Products != nil {
		s.restore(ctx, storage.KeyProducts, *doc.Products)
	}
	if doc.Sales != nil {
		s.restore(ctx, storage.KeySales, *doc.Sales)
	}
	if doc.Purchases != nil {
		s.restore(ctx, storage.KeyPurchases, *doc.Purchases)
	}
	if doc.Settings != nil {
		s.restore(ctx, storage.KeySettings, *doc.Settings)
	}
	return nil
}

func (s *Service) restore(ctx context.Context, key string, value any) {
	if err := s.store.Set(ctx, key, value); err != nil {
		s.logger.Error("restore write failed", slog.String("key", key), slog.Any("error", err))
	}
}
