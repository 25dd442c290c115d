package inventory

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/atlas-erp/atlas-erp/internal/shared"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Repository is the product collection contract.
type Repository = storage.Collection[Product, *Product]

// NewRepository binds the products collection to the gateway.
func NewRepository(store storage.Store, logger *slog.Logger) *Repository {
	return storage.NewCollection[Product](store, storage.KeyProducts, "product", logger)
}

// Service owns product business rules and the stock mutation paths used by
// sale and purchase completion.
type Service struct {
	repo     *Repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService constructs a new Service.
func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, validate: validator.New(), logger: logger}
}

// List returns every product in insertion order.
func (s *Service) List(ctx context.Context) []Product {
	return s.repo.GetAll(ctx)
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

// Create validates and stores a new product. The selling price must exceed
// the cost price at creation time.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Validationf("invalid product: %v", err)
	}
	if req.SellingPrice <= req.CostPrice {
		return nil, shared.Validationf("selling price must exceed cost price")
	}
	created := s.repo.Add(ctx, Product{
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		Quantity:     req.Quantity,
		MinQuantity:  req.MinQuantity,
	})
	return &created, nil
}

// Update merges the provided fields over an existing product.
func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Validationf("invalid product: %v", err)
	}
	updated, ok := s.repo.Update(ctx, id, func(p *Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Unit != nil {
			p.Unit = *req.Unit
		}
		if req.CostPrice != nil {
			p.CostPrice = *req.CostPrice
		}
		if req.SellingPrice != nil {
			p.SellingPrice = *req.SellingPrice
		}
		if req.Quantity != nil {
			p.Quantity = *req.Quantity
		}
		if req.MinQuantity != nil {
			p.MinQuantity = *req.MinQuantity
		}
	})
	if !ok {
		return nil, shared.ErrNotFound
	}
	return updated, nil
}

// Delete removes a product. Historical invoice lines keep their denormalized
// name and price; reports fall back to a placeholder for the name.
func (s *Service) Delete(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}

// AdjustStock moves the on-hand quantity by delta (negative for a sale).
// Stock never goes below zero; sufficiency is checked by the sale boundary
// before the decrement is issued.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) error {
	_, ok := s.repo.Update(ctx, id, func(p *Product) {
		p.Quantity += delta
		if p.Quantity < 0 {
			p.Quantity = 0
		}
	})
	if !ok {
		return shared.ErrNotFound
	}
	return nil
}

// ReceiveStock applies a purchase line: quantity goes up and the cost price
// is overwritten with the purchase unit price (moving cost, not weighted
// average).
func (s *Service) ReceiveStock(ctx context.Context, id string, quantity int, unitCost float64) error {
	_, ok := s.repo.Update(ctx, id, func(p *Product) {
		p.Quantity += quantity
		p.CostPrice = unitCost
	})
	if !ok {
		return shared.ErrNotFound
	}
	return nil
}
