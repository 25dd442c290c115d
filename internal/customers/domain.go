package customers

import "github.com/atlas-erp/atlas-erp/internal/storage"

// Customer is a registered buyer.
//
// Balance follows the stored-ledger convention: positive means the business
// owes the customer (creditor), negative means the customer owes the
// business. Note this is the opposite sign of a statement's final balance
// (see the ledger package), where positive means the customer owes.
type Customer struct {
	storage.Meta
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email,omitempty"`
	Address string  `json:"address,omitempty"`
	Balance float64 `json:"balance"`
}

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Phone   string  `json:"phone" validate:"omitempty,max=50"`
	Email   string  `json:"email" validate:"omitempty,email"`
	Address string  `json:"address" validate:"omitempty,max=500"`
	Balance float64 `json:"balance"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
}
