package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atlas-erp/atlas-erp/internal/invoice"
	"github.com/atlas-erp/atlas-erp/internal/sales"
)

func TestProfitReportTwoDaySpan(t *testing.T) {
	saleList := []sales.Sale{
		saleOn("s1", day(2026, 6, 1), "", 0, invoice.NewLineItem("p1", "rice", 5, 20)),  // 100
		saleOn("s2", day(2026, 6, 2), "", 0, invoice.NewLineItem("p1", "rice", 10, 20)), // 200
	}
	productList := productSource{product("p1", "rice", 12, 0, 0)}

	svc := newLedger(saleList, nil, productList, nil, day(2026, 6, 15))
	report := svc.ProfitReport(context.Background(), "custom", day(2026, 6, 1), day(2026, 6, 2))

	require.Equal(t, "2026-06-01", report.StartDate)
	require.Equal(t, "2026-06-02", report.EndDate)
	require.InDelta(t, 300, report.TotalRevenue, 0.001)
	require.InDelta(t, 180, report.TotalCost, 0.001)
	require.InDelta(t, 120, report.TotalProfit, 0.001)
	require.InDelta(t, 40, report.ProfitMargin, 0.001)

	require.Len(t, report.Breakdown, 2)
	require.Equal(t, "2026-06-01", report.Breakdown[0].Date)
	require.InDelta(t, 100, report.Breakdown[0].Revenue, 0.001)
	require.InDelta(t, 40, report.Breakdown[0].Profit, 0.001)
	require.Equal(t, "2026-06-02", report.Breakdown[1].Date)
	require.InDelta(t, 200, report.Breakdown[1].Revenue, 0.001)
}

func TestProfitReportZeroFillsQuietDays(t *testing.T) {
	saleList := []sales.Sale{
		saleOn("s1", day(2026, 6, 1), "", 0, invoice.NewLineItem("p1", "rice", 1, 20)),
	}
	productList := productSource{product("p1", "rice", 10, 0, 0)}

	svc := newLedger(saleList, nil, productList, nil, day(2026, 6, 15))
	report := svc.ProfitReport(context.Background(), "week", day(2026, 6, 1), day(2026, 6, 5))

	require.Len(t, report.Breakdown, 5, "every calendar day appears, sales or not")
	for _, entry := range report.Breakdown[1:] {
		require.Zero(t, entry.Revenue)
		require.Zero(t, entry.Cost)
		require.Zero(t, entry.Profit)
	}
}

func TestProfitReportInvertedWindow(t *testing.T) {
	svc := newLedger(nil, nil, nil, nil, day(2026, 6, 15))
	report := svc.ProfitReport(context.Background(), "custom", day(2026, 6, 10), day(2026, 6, 1))

	require.Zero(t, report.TotalRevenue)
	require.Zero(t, report.TotalProfit)
	require.Zero(t, report.ProfitMargin)
	require.Empty(t, report.Breakdown)
}

func TestProfitReportZeroRevenueMargin(t *testing.T) {
	svc := newLedger(nil, nil, nil, nil, day(2026, 6, 15))
	report := svc.ProfitReport(context.Background(), "day", day(2026, 6, 1), day(2026, 6, 1))
	require.Zero(t, report.ProfitMargin, "no division by zero revenue")
	require.Len(t, report.Breakdown, 1)
}
