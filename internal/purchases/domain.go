package purchases

import (
	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Purchase is a supplier invoice, shaped symmetrically to a Sale.
type Purchase struct {
	storage.Meta
	SupplierName  string                `json:"supplierName"`
	SupplierPhone string                `json:"supplierPhone,omitempty"`
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

type CreatePurchaseLineRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"required,gt=0"`
}

type CreatePurchaseRequest struct {
	SupplierName  string                      `json:"supplierName" validate:"required,max=200"`
	SupplierPhone string                      `json:"supplierPhone" validate:"omitempty,max=50"`
	Items         []CreatePurchaseLineRequest `json:"items" validate:"required,min=1,dive"`
	Discount      float64                     `json:"discount" validate:"gte=0,lte=100"`
	Tax           float64                     `json:"tax" validate:"gte=0,lte=100"`
	// Paid left nil means the invoice is captured fully paid.
	Paid          *float64                    `json:"paid,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod invoice.PaymentMethod       `json:"paymentMethod" validate:"required,oneof=cash credit bank_transfer check"`
	Notes         string                      `json:"notes,omitempty"`
}

type UpdatePurchaseRequest struct {
	Paid          *float64               `json:"paid,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod *invoice.PaymentMethod `json:"paymentMethod,omitempty" validate:"omitempty,oneof=cash credit bank_transfer check"`
	Notes         *string                `json:"notes,omitempty"`
}
