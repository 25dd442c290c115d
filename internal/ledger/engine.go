package ledger

import (
	"time"

	"github.com/atlas-erp/atlas-erp/internal/customers"
	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
)

// TotalSales sums invoice totals across a sale snapshot.
func TotalSales(saleList []sales.Sale) float64 {
	var total float64
	for _, s := range saleList {
		total += s.Total
	}
	return total
}

// TotalPurchases sums invoice totals across a purchase snapshot.
func TotalPurchases(purchaseList []purchases.Purchase) float64 {
	var total float64
	for _, p := range purchaseList {
		total += p.Total
	}
	return total
}

// TotalProfit computes profit across every sale line against each product's
// *current* cost price, not the cost at time of sale. Historical profit
// therefore shifts when a new purchase moves the cost. A line whose product
// was deleted contributes zero.
func TotalProfit(saleList []sales.Sale, products []inventory.Product) float64 {
	costs := costIndex(products)
	var total float64
	for _, s := range saleList {
		for _, item := range s.Items {
			cost, ok := costs[item.ProductID]
			if !ok {
				continue
			}
			total += (item.UnitPrice - cost) * float64(item.Quantity)
		}
	}
	return total
}

// CustomerDebt sums what customers owe the business: only negative stored
// balances count, sign-flipped. Positive balances are excluded, not netted.
func CustomerDebt(customerList []customers.Customer) float64 {
	var total float64
	for _, c := range customerList {
		if c.Balance < 0 {
			total += -c.Balance
		}
	}
	return total
}

// LowStockAlerts flags every product at or below its reorder threshold,
// preserving input order.
func LowStockAlerts(products []inventory.Product) []StockAlert {
	var alerts []StockAlert
	for _, p := range products {
		if p.Quantity > p.MinQuantity {
			continue
		}
		status := StockStatusLow
		if p.Quantity == 0 {
			status = StockStatusOutOfStock
		}
		alerts = append(alerts, StockAlert{
			ProductID:       p.ID,
			ProductName:     p.Name,
			CurrentQuantity: p.Quantity,
			MinQuantity:     p.MinQuantity,
			Status:          status,
		})
	}
	return alerts
}

// SalesOnDay filters sales whose creation falls on the given local calendar
// day (midnight to midnight, not an elapsed-24h window).
func SalesOnDay(saleList []sales.Sale, day time.Time) []sales.Sale {
	var filtered []sales.Sale
	for _, s := range saleList {
		if sameDay(s.CreatedAt, day) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SalesInMonth filters sales created in the given local calendar month.
func SalesInMonth(saleList []sales.Sale, month time.Time) []sales.Sale {
	var filtered []sales.Sale
	for _, s := range saleList {
		created := s.CreatedAt.Local()
		if created.Year() == month.Year() && created.Month() == month.Month() {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SalesBetween filters sales to an inclusive day-granular window. CreatedAt
// is full-resolution; containment is decided on calendar days.
func SalesBetween(saleList []sales.Sale, start, end time.Time) []sales.Sale {
	startDay := dateOf(start)
	endDay := dateOf(end)
	var filtered []sales.Sale
	for _, s := range saleList {
		day := dateOf(s.CreatedAt)
		if !day.Before(startDay) && !day.After(endDay) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func costIndex(products []inventory.Product) map[string]float64 {
	costs := make(map[string]float64, len(products))
	for _, p := range products {
		costs[p.ID] = p.CostPrice
	}
	return costs
}

func sameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Year() == bl.Year() && al.YearDay() == bl.YearDay()
}

// dateOf truncates to local midnight.
func dateOf(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, l.Location())
}
