package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/atlas-erp/atlas-erp/internal/sales"
	"github.com/atlas-erp/atlas-erp/internal/shared"
)

// StatementRange optionally bounds a statement to an inclusive day-granular
// window. Zero times mean unbounded.
type StatementRange struct {
	Start time.Time
	End   time.Time
}

// CustomerStatement builds the chronological transaction ledger for one
// customer. Each sale contributes a debit entry; a sale with paid > 0 also
// contributes an immediately following payment entry on the same date,
// modeling same-invoice settlement. Returns shared.ErrNotFound when the
// customer does not exist.
func (s *Service) CustomerStatement(ctx context.Context, customerID string, bounds StatementRange) (*CustomerStatement, error) {
	var customerName string
	found := false
	for _, c := range s.customers.List(ctx) {
		if c.ID == customerID {
			customerName = c.Name
			found = true
			break
		}
	}
	if !found {
		return nil, shared.ErrNotFound
	}

	var customerSales []sales.Sale
	for _, sale := range s.sales.List(ctx) {
		if sale.CustomerID != customerID {
			continue
		}
		if !bounds.Start.IsZero() && dateOf(sale.CreatedAt).Before(dateOf(bounds.Start)) {
			continue
		}
		if !bounds.End.IsZero() && dateOf(sale.CreatedAt).After(dateOf(bounds.End)) {
			continue
		}
		customerSales = append(customerSales, sale)
	}

	var entries []StatementEntry
	for _, sale := range customerSales {
		entries = append(entries, StatementEntry{
			ID:          sale.ID,
			Date:        sale.CreatedAt,
			Type:        EntrySale,
			Description: fmt.Sprintf("sales invoice - %d items", len(sale.Items)),
			Debit:       sale.Total,
		})
		if sale.Paid > 0 {
			entries = append(entries, StatementEntry{
				ID:          sale.ID + "_payment",
				Date:        sale.CreatedAt,
				Type:        EntryPayment,
				Description: "payment on account",
				Credit:      sale.Paid,
			})
		}
	}

	// Stable sort keeps each sale ahead of its same-dated payment entry.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	var running, totalDebit, totalCredit float64
	for i := range entries {
		running += entries[i].Debit - entries[i].Credit
		entries[i].Balance = shared.Round2(running)
		totalDebit += entries[i].Debit
		totalCredit += entries[i].Credit
	}

	return &CustomerStatement{
		CustomerID:   customerID,
		CustomerName: customerName,
		Transactions: entries,
		TotalDebit:   shared.Round2(totalDebit),
		TotalCredit:  shared.Round2(totalCredit),
		FinalBalance: shared.Round2(totalDebit - totalCredit),
	}, nil
}
