package purchases

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/shared"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Repository is the purchase collection contract.
type Repository = storage.Collection[Purchase, *Purchase]

// NewRepository binds the purchases collection to the gateway.
func NewRepository(store storage.Store, logger *slog.Logger) *Repository {
	return storage.NewCollection[Purchase](store, storage.KeyPurchases, "purchase", logger)
}

// Service captures purchase invoices and drives the side effects of
// purchase completion: stock increment and moving-cost update.
type Service struct {
	repo     *Repository
	products *inventory.Service
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService constructs a new Service.
func NewService(repo *Repository, products *inventory.Service, logger *slog.Logger) *Service {
	return &Service{repo: repo, products: products, validate: validator.New(), logger: logger}
}

// List returns every purchase in insertion order.
func (s *Service) List(ctx context.Context) []Purchase {
	return s.repo.GetAll(ctx)
}

// Get returns one purchase by id.
func (s *Service) Get(ctx context.Context, id string) (*Purchase, error) {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

// Create validates the request, snapshots product names into the lines,
// persists the invoice, then increments stock and overwrites each product's
// cost price with its purchase unit price.
func (s *Service) Create(ctx context.Context, req CreatePurchaseRequest) (*Purchase, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Validationf("invalid purchase: %v", err)
	}

	items := make([]invoice.LineItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.products.Get(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.Validationf("unknown product %s", line.ProductID)
			}
			return nil, err
		}
		items = append(items, invoice.NewLineItem(product.ID, product.Name, line.Quantity, line.UnitPrice))
	}

	totals := invoice.CalculateTotals(items, req.Discount, req.Tax)
	paid := totals.Total
	if req.Paid != nil {
		paid = *req.Paid
	}

	purchase := s.repo.Add(ctx, Purchase{
		SupplierName:  req.SupplierName,
		SupplierPhone: req.SupplierPhone,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Discount:      req.Discount,
		Tax:           req.Tax,
		Total:         totals.Total,
		Paid:          paid,
		Remaining:     shared.Round2(totals.Total - paid),
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})

	for _, item := range purchase.Items {
		if err := s.products.ReceiveStock(ctx, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			s.logger.Warn("stock receipt skipped",
				slog.String("productId", item.ProductID), slog.Any("error", err))
		}
	}

	return &purchase, nil
}

// Update adjusts settlement fields of an existing purchase.
func (s *Service) Update(ctx context.Context, id string, req UpdatePurchaseRequest) (*Purchase, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Validationf("invalid purchase: %v", err)
	}
	updated, ok := s.repo.Update(ctx, id, func(p *Purchase) {
		if req.Paid != nil {
			p.Paid = *req.Paid
			p.Remaining = shared.Round2(p.Total - p.Paid)
		}
		if req.PaymentMethod != nil {
			p.PaymentMethod = *req.PaymentMethod
		}
		if req.Notes != nil {
			p.Notes = *req.Notes
		}
	})
	if !ok {
		return nil, shared.ErrNotFound
	}
	return updated, nil
}

// Delete hard-removes a purchase. No stock or cost compensation happens.
func (s *Service) Delete(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}
