package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atlas-erp/atlas-erp/internal/ledger"
)

func TestWriteProfitReportCSV(t *testing.T) {
	report := ledger.ProfitReport{
		Period:       "custom",
		StartDate:    "2026-06-01",
		EndDate:      "2026-06-02",
		TotalRevenue: 300,
		TotalCost:    180,
		TotalProfit:  120,
		ProfitMargin: 40,
		Breakdown: []ledger.DailyProfit{
			{Date: "2026-06-01", Revenue: 100, Cost: 60, Profit: 40},
			{Date: "2026-06-02", Revenue: 200, Cost: 120, Profit: 80},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProfitReportCSV(&buf, report, PrinterFor("en")))

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// The reader skips the blank separator line between totals and breakdown.
	require.Equal(t, []string{"Total Revenue", "300.00"}, records[3])
	require.Equal(t, []string{"Date", "Revenue", "Cost", "Profit"}, records[7])
	require.Equal(t, []string{"2026-06-01", "100.00", "60.00", "40.00"}, records[8])
	require.Equal(t, []string{"2026-06-02", "200.00", "120.00", "80.00"}, records[9])
}

func TestWriteStatementCSV(t *testing.T) {
	statement := ledger.CustomerStatement{
		CustomerID:   "c1",
		CustomerName: "Ahmed",
		Transactions: []ledger.StatementEntry{
			{
				ID:          "s1",
				Date:        time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
				Type:        ledger.EntrySale,
				Description: "sales invoice - 1 items",
				Debit:       500,
				Balance:     500,
			},
		},
		TotalDebit:   500,
		FinalBalance: 500,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatementCSV(&buf, statement, PrinterFor("en")))

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"Date", "Type", "Description", "Debit", "Credit", "Balance"}, records[0])
	require.Equal(t, []string{"2026-06-01", "sale", "sales invoice - 1 items", "500.00", "0.00", "500.00"}, records[1])
	require.Equal(t, []string{"Final Balance", "500.00"}, records[len(records)-1])
}

func TestPrinterForArabicDigits(t *testing.T) {
	// Arabic locale renders Eastern Arabic numerals; the formatter must not
	// fall back to the English printer.
	en := FormatCurrency(PrinterFor("en"), 1234.5, "SAR")
	ar := FormatCurrency(PrinterFor("ar"), 1234.5, "ريال")
	require.Equal(t, "1,234.50 SAR", en)
	require.NotEqual(t, en, ar)
}
