// Package invoice holds the line-item shape and totals math shared by sales
// and purchase documents.
package invoice

import "github.com/atlas-erp/atlas-erp/internal/shared"

// PaymentMethod enumerates how an invoice was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCredit       PaymentMethod = "credit"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCredit, PaymentBankTransfer, PaymentCheck:
		return true
	}
	return false
}

// LineItem is one invoice line. ProductName and UnitPrice are frozen at
// transaction time, so the line survives later product renames and deletes.
type LineItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// NewLineItem builds a line with its extended total.
func NewLineItem(productID, productName string, quantity int, unitPrice float64) LineItem {
	return LineItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       shared.Round2(float64(quantity) * unitPrice),
	}
}

// Totals aggregates the monetary summary of an invoice.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	Total          float64
}

// CalculateTotals derives the invoice summary: the discount percentage comes
// off the subtotal first, tax applies to the discounted amount.
func CalculateTotals(items []LineItem, discountPercent, taxPercent float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	discountAmount := subtotal * discountPercent / 100
	net := subtotal - discountAmount
	taxAmount := net * taxPercent / 100
	return Totals{
		Subtotal:       shared.Round2(subtotal),
		DiscountAmount: shared.Round2(discountAmount),
		TaxAmount:      shared.Round2(taxAmount),
		Total:          shared.Round2(net + taxAmount),
	}
}
