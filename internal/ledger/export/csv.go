// Package export renders ledger views as CSV documents.
package export

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/atlas-erp/atlas-erp/internal/ledger"
)

// PrinterFor returns a number formatter for the installation language.
func PrinterFor(lang string) *message.Printer {
	switch lang {
	case "ar":
		return message.NewPrinter(language.Arabic)
	default:
		return message.NewPrinter(language.English)
	}
}

// FormatCurrency renders an amount with the installation currency label.
func FormatCurrency(p *message.Printer, amount float64, currency string) string {
	return p.Sprintf("%.2f %s", amount, currency)
}

// WriteProfitReportCSV serialises a profit report, totals first, then the
// daily breakdown.
func WriteProfitReportCSV(w io.Writer, report ledger.ProfitReport, p *message.Printer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := [][]string{
		{"Period", report.Period},
		{"Start Date", report.StartDate},
		{"End Date", report.EndDate},
		{"Total Revenue", formatFloat(p, report.TotalRevenue)},
		{"Total Cost", formatFloat(p, report.TotalCost)},
		{"Total Profit", formatFloat(p, report.TotalProfit)},
		{"Profit Margin %", formatFloat(p, report.ProfitMargin)},
		{},
		{"Date", "Revenue", "Cost", "Profit"},
	}
	for _, record := range header {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	for _, day := range report.Breakdown {
		if err := writer.Write([]string{
			day.Date,
			formatFloat(p, day.Revenue),
			formatFloat(p, day.Cost),
			formatFloat(p, day.Profit),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteStatementCSV serialises a customer statement with its running
// balances and footer totals.
func WriteStatementCSV(w io.Writer, statement ledger.CustomerStatement, p *message.Printer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Date", "Type", "Description", "Debit", "Credit", "Balance"}); err != nil {
		return err
	}
	for _, entry := range statement.Transactions {
		if err := writer.Write([]string{
			entry.Date.Format("2006-01-02"),
			string(entry.Type),
			entry.Description,
			formatFloat(p, entry.Debit),
			formatFloat(p, entry.Credit),
			formatFloat(p, entry.Balance),
		}); err != nil {
			return err
		}
	}
	footer := [][]string{
		{},
		{"Total Debit", formatFloat(p, statement.TotalDebit)},
		{"Total Credit", formatFloat(p, statement.TotalCredit)},
		{"Final Balance", formatFloat(p, statement.FinalBalance)},
	}
	for _, record := range footer {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(p *message.Printer, v float64) string {
	return p.Sprintf("%.2f", v)
}
