package ledger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

// Static snapshot sources stand in for the domain services.
type saleSource []sales.Sale

func (s saleSource) List(context.Context) []sales.Sale { return s }

type purchaseSource []purchases.Purchase

func (s purchaseSource) List(context.Context) []purchases.Purchase { return s }

type productSource []inventory.Product

func (s productSource) List(context.Context) []inventory.Product { return s }

type customerSource []customers.Customer

func (s customerSource) List(context.Context) []customers.Customer { return s }

func newLedger(saleList []sales.Sale, purchaseList []purchases.Purchase, productList []inventory.Product, customerList []customers.Customer, now time.Time) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(saleSource(saleList), purchaseSource(purchaseList), productSource(productList), customerSource(customerList), logger)
	return svc.WithClock(func() time.Time { return now })
}

func saleOn(id string, created time.Time, customerID string, paid float64, items ...invoice.LineItem) sales.Sale {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	return sales.Sale{
		Meta:       storage.Meta{ID: id, CreatedAt: created, UpdatedAt: created},
		CustomerID: customerID,
		Items:      items,
		Subtotal:   subtotal,
		Total:      subtotal,
		Paid:       paid,
		Remaining:  subtotal - paid,
	}
}

func product(id, name string, cost float64, qty, minQty int) inventory.Product {
	return inventory.Product{
		Meta:        storage.Meta{ID: id},
		Name:        name,
		CostPrice:   cost,
		Quantity:    qty,
		MinQuantity: minQty,
	}
}

func customer(id, name string, balance float64) customers.Customer {
	return customers.Customer{Meta: storage.Meta{ID: id}, Name: name, Balance: balance}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}
