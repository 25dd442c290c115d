package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/purchases"
	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/storage"
)

func TestTotalProfitUsesCurrentCost(t *testing.T) {
	saleList := []sales.Sale{
		saleOn("s1", day(2026, 6, 1), "", 40, invoice.NewLineItem("p1", "rice", 2, 20)),
	}
	productList := productSource{product("p1", "rice", 10, 3, 0)}

	// (20 - 10) * 2
	require.InDelta(t, 20, TotalProfit(saleList, productList), 0.001)

	// Moving the cost reprices historical profit.
	productList[0].CostPrice = 15
	require.InDelta(t, 10, TotalProfit(saleList, productList), 0.001)
}

func TestTotalProfitSkipsDeletedProducts(t *testing.T) {
	saleList := []sales.Sale{
		saleOn("s1", day(2026, 6, 1), "", 0, invoice.NewLineItem("p_gone", "old", 5, 30)),
	}
	require.Zero(t, TotalProfit(saleList, nil))
}

func TestCustomerDebtCountsOnlyNegativeBalances(t *testing.T) {
	customerList := customerSource{
		customer("c1", "a", 100),
		customer("c2", "b", -50),
		customer("c3", "c", -25),
		customer("c4", "d", 0),
	}
	// Positive balances are excluded, not netted: 50 + 25.
	require.InDelta(t, 75, CustomerDebt(customerList), 0.001)
	require.Zero(t, CustomerDebt(nil))
}

func TestLowStockAlertBoundaries(t *testing.T) {
	productList := productSource{
		product("p1", "at threshold", 1, 5, 5),
		product("p2", "above threshold", 1, 6, 5),
		product("p3", "empty", 1, 0, 5),
	}
	alerts := LowStockAlerts(productList)
	require.Len(t, alerts, 2)
	require.Equal(t, "p1", alerts[0].ProductID)
	require.Equal(t, StockStatusLow, alerts[0].Status)
	require.Equal(t, "p3", alerts[1].ProductID)
	require.Equal(t, StockStatusOutOfStock, alerts[1].Status)
}

func TestSalesOnDayUsesCalendarDay(t *testing.T) {
	lateYesterday := time.Date(2026, 6, 14, 23, 50, 0, 0, time.Local)
	earlyToday := time.Date(2026, 6, 15, 0, 10, 0, 0, time.Local)
	saleList := []sales.Sale{
		saleOn("s1", lateYesterday, "", 0, invoice.NewLineItem("p1", "rice", 1, 10)),
		saleOn("s2", earlyToday, "", 0, invoice.NewLineItem("p1", "rice", 1, 10)),
	}

	today := SalesOnDay(saleList, time.Date(2026, 6, 15, 9, 0, 0, 0, time.Local))
	require.Len(t, today, 1)
	require.Equal(t, "s2", today[0].ID)
}

func TestSalesInMonth(t *testing.T) {
	saleList := []sales.Sale{
		saleOn("s1", day(2026, 5, 31), "", 0, invoice.NewLineItem("p1", "rice", 1, 10)),
		saleOn("s2", day(2026, 6, 1), "", 0, invoice.NewLineItem("p1", "rice", 1, 10)),
		saleOn("s3", day(2026, 6, 30), "", 0, invoice.NewLineItem("p1", "rice", 1, 10)),
	}
	june := SalesInMonth(saleList, day(2026, 6, 15))
	require.Len(t, june, 2)
	require.Equal(t, "s2", june[0].ID)
	require.Equal(t, "s3", june[1].ID)
}

func TestSalesBetweenIsDayInclusive(t *testing.T) {
	saleList := []sales.Sale{
		saleOn("s1", time.Date(2026, 6, 1, 0, 5, 0, 0, time.Local), "", 0, invoice.NewLineItem("p1", "rice", 1, 10)),
		saleOn("s2", time.Date(2026, 6, 3, 23, 55, 0, 0, time.Local), "", 0, invoice.NewLineItem("p1", "rice", 1, 10)),
		saleOn("s3", day(2026, 6, 4), "", 0, invoice.NewLineItem("p1", "rice", 1, 10)),
	}
	window := SalesBetween(saleList, day(2026, 6, 1), day(2026, 6, 3))
	require.Len(t, window, 2)
	require.Equal(t, "s1", window[0].ID)
	require.Equal(t, "s2", window[1].ID)
}

func TestDashboardAggregates(t *testing.T) {
	now := day(2026, 6, 15)
	saleList := []sales.Sale{
		saleOn("s1", now, "c1", 0, invoice.NewLineItem("p1", "rice", 2, 20)),        // today: 40
		saleOn("s2", day(2026, 6, 1), "", 100, invoice.NewLineItem("p1", "rice", 5, 20)), // this month: 100
		saleOn("s3", day(2026, 1, 10), "", 0, invoice.NewLineItem("p1", "rice", 1, 20)),  // older: 20
	}
	purchaseList := []purchases.Purchase{
		{Meta: storage.Meta{ID: "b1", CreatedAt: now}, Total: 500},
	}
	productList := productSource{product("p1", "rice", 10, 0, 5)}
	customerList := customerSource{customer("c1", "Ahmed", -40)}

	svc := newLedger(saleList, purchaseList, productList, customerList, now)
	stats := svc.Dashboard(context.Background())

	require.InDelta(t, 160, stats.TotalSales, 0.001)
	require.InDelta(t, 500, stats.TotalPurchases, 0.001)
	require.InDelta(t, 80, stats.TotalProfit, 0.001)
	require.InDelta(t, 40, stats.TotalCustomerDebt, 0.001)
	require.Equal(t, 1, stats.LowStockItems)
	require.InDelta(t, 40, stats.TodaySales, 0.001)
	require.InDelta(t, 20, stats.TodayProfit, 0.001)
	require.InDelta(t, 140, stats.ThisMonthSales, 0.001)
	require.InDelta(t, 70, stats.ThisMonthProfit, 0.001)
}

func TestInventoryTurnover(t *testing.T) {
	now := day(2026, 6, 15)
	saleList := []sales.Sale{
		saleOn("s1", day(2026, 5, 1), "", 0, invoice.NewLineItem("p1", "rice", 10, 20)),
		// Outside the trailing twelve months, excluded.
		saleOn("s2", day(2024, 1, 1), "", 0, invoice.NewLineItem("p1", "rice", 100, 20)),
	}
	productList := productSource{product("p1", "rice", 10, 5, 0)}

	svc := newLedger(saleList, nil, productList, nil, now)

	// 10 sold / (5 on hand + 10/2).
	require.InDelta(t, 1.0, svc.InventoryTurnover(context.Background(), "p1"), 0.001)
	require.Zero(t, svc.InventoryTurnover(context.Background(), "p_missing"))
}

func TestInventoryTurnoverZeroActivity(t *testing.T) {
	productList := productSource{product("p1", "rice", 10, 0, 0)}
	svc := newLedger(nil, nil, productList, nil, day(2026, 6, 15))
	require.Zero(t, svc.InventoryTurnover(context.Background(), "p1"))
}
