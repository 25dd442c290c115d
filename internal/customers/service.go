package customers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/atlas-erp/atlas-erp/internal/shared"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Repository is the customer collection contract.
type Repository = storage.Collection[Customer, *Customer]

// NewRepository binds the customers collection to the gateway.
func NewRepository(store storage.Store, logger *slog.Logger) *Repository {
	return storage.NewCollection[Customer](store, storage.KeyCustomers, "customer", logger)
}

// Service owns customer business rules, including the single permitted
// balance mutation path.
type Service struct {
	repo     *Repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService constructs a new Service.
func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, validate: validator.New(), logger: logger}
}

// List returns every customer in insertion order.
func (s *Service) List(ctx context.Context) []Customer {
	return s.repo.GetAll(ctx)
}

// Get returns one customer by id.
func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	c, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

// FindByName returns customers whose name contains the query,
// case-insensitively.
func (s *Service) FindByName(ctx context.Context, name string) []Customer {
	needle := strings.ToLower(name)
	var matches []Customer
	for _, c := range s.repo.GetAll(ctx) {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Create validates and stores a new customer.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Validationf("invalid customer: %v", err)
	}
	created := s.repo.Add(ctx, Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Balance: req.Balance,
	})
	return &created, nil
}

// Update merges the provided fields over an existing customer.
func (s *Service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.Validationf("invalid customer: %v", err)
	}
	updated, ok := s.repo.Update(ctx, id, func(c *Customer) {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
	})
	if !ok {
		return nil, shared.ErrNotFound
	}
	return updated, nil
}

// Delete removes a customer. Historical sales keep the denormalized name.
func (s *Service) Delete(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}

// AdjustBalance moves the stored balance by delta. Every balance mutation in
// the system goes through here so the balance stays equal to the negated sum
// of the customer's unsettled invoice remainders.
func (s *Service) AdjustBalance(ctx context.Context, id string, delta float64) error {
	_, ok := s.repo.Update(ctx, id, func(c *Customer) {
		c.Balance = shared.Round2(c.Balance + delta)
	})
	if !ok {
		return shared.ErrNotFound
	}
	return nil
}

// ApplySale posts a sale's unsettled remainder against the customer: the
// balance goes down by the amount still owed.
func (s *Service) ApplySale(ctx context.Context, id string, remaining float64) error {
	return s.AdjustBalance(ctx, id, -remaining)
}
