package ledger

import (
	"context"
	"time"

	"github.com/atlas-erp/atlas-erp/internal/inventory"
	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/shared"
)

const reportDateLayout = "2006-01-02"

// ProfitReport builds the revenue/cost/profit time series for an inclusive
// day-granular window. A start after the end yields zero totals and an empty
// breakdown. Cost uses each product's current cost price, the same rule as
// TotalProfit.
func (s *Service) ProfitReport(ctx context.Context, period string, start, end time.Time) ProfitReport {
	saleList := s.sales.List(ctx)
	productList := s.products.List(ctx)
	return buildProfitReport(period, start, end, saleList, productList)
}

func buildProfitReport(period string, start, end time.Time, saleList []sales.Sale, productList []inventory.Product) ProfitReport {
	costs := costIndex(productList)
	filtered := SalesBetween(saleList, start, end)

	totalRevenue := TotalSales(filtered)
	totalCost := costOfSales(filtered, costs)
	totalProfit := totalRevenue - totalCost

	var margin float64
	if totalRevenue > 0 {
		margin = totalProfit / totalRevenue * 100
	}

	var breakdown []DailyProfit
	for day := dateOf(start); !day.After(dateOf(end)); day = day.AddDate(0, 0, 1) {
		daySales := SalesOnDay(filtered, day)
		revenue := TotalSales(daySales)
		cost := costOfSales(daySales, costs)
		breakdown = append(breakdown, DailyProfit{
			Date:    day.Format(reportDateLayout),
			Revenue: revenue,
			Cost:    cost,
			Profit:  shared.Round2(revenue - cost),
		})
	}

	return ProfitReport{
		Period:       period,
		StartDate:    dateOf(start).Format(reportDateLayout),
		EndDate:      dateOf(end).Format(reportDateLayout),
		TotalRevenue: totalRevenue,
		TotalCost:    totalCost,
		TotalProfit:  shared.Round2(totalProfit),
		ProfitMargin: margin,
		Breakdown:    breakdown,
	}
}

// costOfSales prices sold quantities at current cost. Lines whose product
// was deleted contribute zero cost.
func costOfSales(saleList []sales.Sale, costs map[string]float64) float64 {
	var total float64
	for _, sale := range saleList {
		for _, item := range sale.Items {
			cost, ok := costs[item.ProductID]
			if !ok {
				continue
			}
			total += cost * float64(item.Quantity)
		}
	}
	return total
}
