package sales

import (
	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Sale is a sales invoice. CustomerID is optional: walk-in buyers carry only
// a name. Discount and Tax are percentages applied in that order.
type Sale struct {
	storage.Meta
	CustomerID    string                `json:"customerId,omitempty"`
	CustomerName  string                `json:"customerName"`
	Items         []invoice.LineItem    `json:"items"`
	Subtotal      float64               `json:"subtotal"`
	Discount      float64               `json:"discount"`
	Tax           float64               `json:"tax"`
	Total         float64               `json:"total"`
	Paid          float64               `json:"paid"`
	Remaining     float64               `json:"remaining"`
	PaymentMethod invoice.PaymentMethod `json:"paymentMethod"`
	Notes         string                `json:"notes,omitempty"`
}

type CreateSaleLineRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	// UnitPrice of zero falls back to the product's selling price.
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

type CreateSaleRequest struct {
	CustomerID    string                  `json:"customerId,omitempty"`
	CustomerName  string                  `json:"customerName" validate:"required,max=200"`
	Items         []CreateSaleLineRequest `json:"items" validate:"required,min=1,dive"`
	Discount      float64                 `json:"discount" validate:"gte=0,lte=100"`
	Tax           float64                 `json:"tax" validate:"gte=0,lte=100"`
	// Paid left nil means the invoice is captured fully paid.
	Paid          *float64                `json:"paid,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod invoice.PaymentMethod   `json:"paymentMethod" validate:"required,oneof=cash credit bank_transfer check"`
	Notes         string                  `json:"notes,omitempty"`
}

type UpdateSaleRequest struct {
	Paid          *float64               `json:"paid,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod *invoice.PaymentMethod `json:"paymentMethod,omitempty" validate:"omitempty,oneof=cash credit bank_transfer check"`
	Notes         *string                `json:"notes,omitempty"`
}
