package ledger

import (
	"context"
	"sort"
)

// TopProducts aggregates quantity and revenue per product across all sales
// and returns the top sellers by quantity. Products deleted after the fact
// appear under a placeholder name with their aggregates intact.
func (s *Service) TopProducts(ctx context.Context, limit int) []TopProduct {
	type agg struct {
		quantity int
		revenue  float64
	}
	byProduct := make(map[string]*agg)
	var order []string
	for _, sale := range s.sales.List(ctx) {
		for _, item := range sale.Items {
			a, ok := byProduct[item.ProductID]
			if !ok {
				a = &agg{}
				byProduct[item.ProductID] = a
				order = append(order, item.ProductID)
			}
			a.quantity += item.Quantity
			a.revenue += item.Total
		}
	}

	names := make(map[string]string)
	for _, p := range s.products.List(ctx) {
		names[p.ID] = p.Name
	}

	ranked := make([]TopProduct, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = DeletedProductName
		}
		ranked = append(ranked, TopProduct{
			ProductID:    id,
			ProductName:  name,
			TotalSold:    byProduct[id].quantity,
			TotalRevenue: byProduct[id].revenue,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSold > ranked[j].TotalSold
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopCustomers aggregates invoice count and spend per registered customer
// and returns the top spenders. Walk-in sales without a customer id are
// excluded even though they appear in the sales list.
func (s *Service) TopCustomers(ctx context.Context, limit int) []TopCustomer {
	type agg struct {
		count int
		total float64
	}
	byCustomer := make(map[string]*agg)
	var order []string
	for _, sale := range s.sales.List(ctx) {
		if sale.CustomerID == "" {
			continue
		}
		a, ok := byCustomer[sale.CustomerID]
		if !ok {
			a = &agg{}
			byCustomer[sale.CustomerID] = a
			order = append(order, sale.CustomerID)
		}
		a.count++
		a.total += sale.Total
	}

	names := make(map[string]string)
	for _, c := range s.customers.List(ctx) {
		names[c.ID] = c.Name
	}

	ranked := make([]TopCustomer, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = DeletedCustomerName
		}
		ranked = append(ranked, TopCustomer{
			CustomerID:     id,
			CustomerName:   name,
			TotalPurchases: byCustomer[id].count,
			TotalSpent:     byCustomer[id].total,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
