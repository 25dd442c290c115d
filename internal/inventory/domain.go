package inventory

import "github.com/atlas-erp/atlas-erp/internal/storage"

// Product is a stocked item. CostPrice follows a moving-cost model: each
// purchase overwrites it with that purchase's unit price.
type Product struct {
	storage.Meta
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	CostPrice    float64 `json:"costPrice"`
	SellingPrice float64 `json:"sellingPrice"`
	Quantity     int     `json:"quantity"`
	MinQuantity  int     `json:"minQuantity"`
}

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Category     string  `json:"category" validate:"omitempty,max=100"`
	Unit         string  `json:"unit" validate:"omitempty,max=50"`
	CostPrice    float64 `json:"costPrice" validate:"gte=0"`
	SellingPrice float64 `json:"sellingPrice" validate:"gte=0"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
	MinQuantity  int     `json:"minQuantity" validate:"gte=0"`
}

// UpdateProductRequest merges over an existing product. Prices are not
// re-checked against each other on update; the margin guard is a creation
// boundary rule only.
type UpdateProductRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category     *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Unit         *string  `json:"unit,omitempty" validate:"omitempty,max=50"`
	CostPrice    *float64 `json:"costPrice,omitempty" validate:"omitempty,gte=0"`
	SellingPrice *float64 `json:"sellingPrice,omitempty" validate:"omitempty,gte=0"`
	Quantity     *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	MinQuantity  *int     `json:"minQuantity,omitempty" validate:"omitempty,gte=0"`
}
