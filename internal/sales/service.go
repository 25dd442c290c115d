package sales

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/shared"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Repository is the sale collection contract.
type Repository = storage.Collection[Sale, *Sale]

// NewRepository binds the sales collection to the gateway.
func NewRepository(store storage.Store, logger *slog.Logger) *Repository {
	return storage.NewCollection[Sale](store, storage.KeySales, "sale", logger)
}

// Service captures sales invoices and drives the side effects of sale
// completion: stock decrement and customer balance posting.
type Service struct {
	repo      *Repository
	products  *inventory.Service
	customers *customers.Service
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewService constructs a new Service.
func NewService(repo *Repository, products *inventory.Service, custs *customers.Service, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		products:  products,
		customers: custs,
		validate:  validator.New(),
		logger:    logger,
	}
}

// List returns every sale in insertion order.
func (s *Service) List(ctx context.Context) []Sale {
	return s.repo.GetAll(ctx)
}

// Get returns one sale by id.
func (s *Service) Get(ctx context.Context, id string) (*Sale, error) {
	sale, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return nil, shared.ErrNotFound
	}
	return sale, nil
}

// Create validates the request against current stock, snapshots product
// names into the lines, persists the invoice, then decrements stock and
// posts any unsettled remainder against the registered customer.
func (s *Service) Create(ctx context.Context, req CreateSaleRequest) (*Sale, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Validationf("invalid sale: %v", err)
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
		if product.Quantity < line.Quantity {
			return nil, shared.Validationf("insufficient stock for %s: have %d, need %d",
				product.Name, product.Quantity, line.Quantity)
		}
		unitPrice := line.UnitPrice
		if unitPrice == 0 {
			unitPrice = product.SellingPrice
		}
		items = append(items, invoice.NewLineItem(product.ID, product.Name, line.Quantity, unitPrice))
	}

	totals := invoice.CalculateTotals(items, req.Discount, req.Tax)
	paid := totals.Total
	if req.Paid != nil {
		paid = *req.Paid
	}
	remaining := shared.Round2(totals.Total - paid)

	sale := s.repo.Add(ctx, Sale{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Items:         items,
		Subtotal:      totals.Subtotal,
		Discount:      req.Discount,
		Tax:           req.Tax,
		Total:         totals.Total,
		Paid:          paid,
		Remaining:     remaining,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})

	for _, item := range sale.Items {
		if err := s.products.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			s.logger.Warn("stock decrement skipped",
				slog.String("productId", item.ProductID), slog.Any("error", err))
		}
	}

	if sale.CustomerID != "" {
		if err := s.customers.ApplySale(ctx, sale.CustomerID, sale.Remaining); err != nil {
			s.logger.Warn("balance posting skipped",
				slog.String("customerId", sale.CustomerID), slog.Any("error", err))
		}
	}

	return &sale, nil
}

// Update adjusts settlement fields of an existing sale. A change to the paid
// amount moves the registered customer's balance by the settled difference.
func (s *Service) Update(ctx context.Context, id string, req UpdateSaleRequest) (*Sale, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Validationf("invalid sale: %v", err)
	}

	var paidDelta float64
	updated, ok := s.repo.Update(ctx, id, func(sale *Sale) {
		if req.Paid != nil {
			paidDelta = *req.Paid - sale.Paid
			sale.Paid = *req.Paid
			sale.Remaining = shared.Round2(sale.Total - sale.Paid)
		}
		if req.PaymentMethod != nil {
			sale.PaymentMethod = *req.PaymentMethod
		}
		if req.Notes != nil {
			sale.Notes = *req.Notes
		}
	})
	if !ok {
		return nil, shared.ErrNotFound
	}

	if paidDelta != 0 && updated.CustomerID != "" {
		if err := s.customers.AdjustBalance(ctx, updated.CustomerID, paidDelta); err != nil {
			s.logger.Warn("balance adjustment skipped",
				slog.String("customerId", updated.CustomerID), slog.Any("error", err))
		}
	}

	return updated, nil
}

// Delete hard-removes a sale. No stock or balance compensation happens.
func (s *Service) Delete(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}
