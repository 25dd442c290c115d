// Package settings manages the singleton installation record. There is no
// id; the record is created lazily with defaults on first read.
package settings

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/atlas-erp/atlas-erp/internal/shared"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Settings is the per-installation configuration record.
type Settings struct {
	CompanyName    string  `json:"companyName"`
	CompanyPhone   string  `json:"companyPhone"`
	CompanyAddress string  `json:"companyAddress"`
	Currency       string  `json:"currency"`
	TaxRate        float64 `json:"taxRate"`
	Theme          string  `json:"theme"`
	Language       string  `json:"language"`
}

// Defaults returns the installation defaults.
func Defaults() Settings {
	return Settings{
		CompanyName: "Atlas UBC",
		Currency:    "ريال",
		TaxRate:     0.15,
		Theme:       "light",
		Language:    "ar",
	}
}

type UpdateSettingsRequest struct {
	CompanyName    *string  `json:"companyName,omitempty" validate:"omitempty,max=200"`
	CompanyPhone   *string  `json:"companyPhone,omitempty" validate:"omitempty,max=50"`
	CompanyAddress *string  `json:"companyAddress,omitempty" validate:"omitempty,max=500"`
	Currency       *string  `json:"currency,omitempty" validate:"omitempty,max=20"`
	TaxRate        *float64 `json:"taxRate,omitempty" validate:"omitempty,gte=0,lte=1"`
	Theme          *string  `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Language       *string  `json:"language,omitempty" validate:"omitempty,oneof=ar en"`
}

// Service reads and updates the settings blob.
type Service struct {
	store    storage.Store
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService constructs a new Service.
func NewService(store storage.Store, logger *slog.Logger) *Service {
	return &Service{store: store, validate: validator.New(), logger: logger}
}

// Get returns the current settings, falling back to defaults when the blob
// is absent or unreadable.
func (s *Service) Get(ctx context.Context) Settings {
	current := Defaults()
	found, err := s.store.Get(ctx, storage.KeySettings, &current)
	if err != nil {
		s.logger.Error("settings read failed, serving defaults", slog.Any("error", err))
		return Defaults()
	}
	if !found {
		return Defaults()
	}
	return current
}

// Update merges the provided fields over the current settings and persists
// the result.
func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error) {
	if err := s.validate.Struct(req); err != nil {
		return Settings{}, shared.Validationf("invalid settings: %v", err)
	}
	current := s.Get(ctx)
	if req.CompanyName != nil {
		current.CompanyName = *req.CompanyName
	}
	if req.CompanyPhone != nil {
		current.CompanyPhone = *req.CompanyPhone
	}
	if req.CompanyAddress != nil {
		current.CompanyAddress = *req.CompanyAddress
	}
	if req.Currency != nil {
		current.Currency = *req.Currency
	}
	if req.TaxRate != nil {
		current.TaxRate = *req.TaxRate
	}
	if req.Theme != nil {
		current.Theme = *req.Theme
	}
	if req.Language != nil {
		current.Language = *req.Language
	}
	if err := s.store.Set(ctx, storage.KeySettings, current); err != nil {
		s.logger.Error("settings write failed", slog.Any("error", err))
	}
	return current, nil
}
