package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
)

// SaleSource supplies sale snapshots.
type SaleSource interface {
	List(ctx context.Context) []sales.Sale
}

// PurchaseSource supplies purchase snapshots.
type PurchaseSource interface {
	List(ctx context.Context) []purchases.Purchase
}

// ProductSource supplies product snapshots.
type ProductSource interface {
	List(ctx context.Context) []inventory.Product
}

// CustomerSource supplies customer snapshots.
type CustomerSource interface {
	List(ctx context.Context) []customers.Customer
}

// Service orchestrates the pure aggregate functions over repository
// snapshots. It never mutates; each query loads every collection it needs
// exactly once so concurrent mutations cannot skew one computation.
type Service struct {
	sales     SaleSource
	purchases PurchaseSource
	products  ProductSource
	customers CustomerSource
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires the ledger over the domain services.
func NewService(sales SaleSource, purchases PurchaseSource, products ProductSource, custs CustomerSource, logger *slog.Logger) *Service {
	return &Service{
		sales:     sales,
		purchases: purchases,
		products:  products,
		customers: custs,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Dashboard assembles the consolidated overview from one shared set of
// snapshots.
func (s *Service) Dashboard(ctx context.Context) DashboardStats {
	saleList := s.sales.List(ctx)
	purchaseList := s.purchases.List(ctx)
	productList := s.products.List(ctx)
	customerList := s.customers.List(ctx)
	now := s.now()

	todaySales := SalesOnDay(saleList, now)
	monthSales := SalesInMonth(saleList, now)

	return DashboardStats{
		TotalSales:        TotalSales(saleList),
		TotalPurchases:    TotalPurchases(purchaseList),
		TotalProfit:       TotalProfit(saleList, productList),
		TotalCustomerDebt: CustomerDebt(customerList),
		LowStockItems:     len(LowStockAlerts(productList)),
		TodaySales:        TotalSales(todaySales),
		TodayProfit:       TotalProfit(todaySales, productList),
		ThisMonthSales:    TotalSales(monthSales),
		ThisMonthProfit:   TotalProfit(monthSales, productList),
	}
}

// TodaySales totals sales created on the current local day.
func (s *Service) TodaySales(ctx context.Context) float64 {
	return TotalSales(SalesOnDay(s.sales.List(ctx), s.now()))
}

// TodayProfit computes profit for sales created on the current local day.
func (s *Service) TodayProfit(ctx context.Context) float64 {
	return TotalProfit(SalesOnDay(s.sales.List(ctx), s.now()), s.products.List(ctx))
}

// MonthSales totals sales created in the current local month.
func (s *Service) MonthSales(ctx context.Context) float64 {
	return TotalSales(SalesInMonth(s.sales.List(ctx), s.now()))
}

// MonthProfit computes profit for sales created in the current local month.
func (s *Service) MonthProfit(ctx context.Context) float64 {
	return TotalProfit(SalesInMonth(s.sales.List(ctx), s.now()), s.products.List(ctx))
}

// LowStock lists products at or below their reorder threshold.
func (s *Service) LowStock(ctx context.Context) []StockAlert {
	return LowStockAlerts(s.products.List(ctx))
}

// InventoryTurnover estimates how often a product's stock turned over in the
// trailing twelve months: quantity sold divided by an average inventory of
// current stock plus half the period's sales.
func (s *Service) InventoryTurnover(ctx context.Context, productID string) float64 {
	var product *inventory.Product
	for _, p := range s.products.List(ctx) {
		if p.ID == productID {
			found := p
			product = &found
			break
		}
	}
	if product == nil {
		return 0
	}

	cutoff := s.now().AddDate(0, -12, 0)
	var sold int
	for _, sale := range s.sales.List(ctx) {
		if sale.CreatedAt.Before(cutoff) {
			continue
		}
		for _, item := range sale.Items {
			if item.ProductID == productID {
				sold += item.Quantity
			}
		}
	}

	average := float64(product.Quantity) + float64(sold)/2
	if average <= 0 {
		return 0
	}
	return float64(sold) / average
}
