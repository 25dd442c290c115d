// Package ledger derives financial truth from the raw collections: totals,
// profit, debt, stock alerts, dashboards, reports, statements and rankings.
// It only reads; every mutation belongs to the owning domain service.
package ledger

import "time"

// Placeholder labels for references whose entity was deleted. Historical
// lines stay reportable because names are denormalized at write time.
const (
	DeletedProductName  = "deleted product"
	DeletedCustomerName = "deleted customer"
)

// StockAlertStatus classifies a low-stock condition.
type StockAlertStatus string

const (
	StockStatusLow        StockAlertStatus = "low"
	StockStatusOutOfStock StockAlertStatus = "out_of_stock"
)

// StockAlert flags a product at or below its reorder threshold.
type StockAlert struct {
	ProductID       string           `json:"productId"`
	ProductName     string           `json:"productName"`
	CurrentQuantity int              `json:"currentQuantity"`
	MinQuantity     int              `json:"minQuantity"`
	Status          StockAlertStatus `json:"status"`
}

// DashboardStats is the consolidated one-call overview.
type DashboardStats struct {
	TotalSales        float64 `json:"totalSales"`
	TotalPurchases    float64 `json:"totalPurchases"`
	TotalProfit       float64 `json:"totalProfit"`
	TotalCustomerDebt float64 `json:"totalCustomerDebt"`
	LowStockItems     int     `json:"lowStockItems"`
	TodaySales        float64 `json:"todaySales"`
	TodayProfit       float64 `json:"todayProfit"`
	ThisMonthSales    float64 `json:"thisMonthSales"`
	ThisMonthProfit   float64 `json:"thisMonthProfit"`
}

// DailyProfit is one day of a profit report breakdown.
type DailyProfit struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// ProfitReport is a revenue/cost/profit time series over an inclusive
// day-granular window. Every calendar day in the window appears in the
// breakdown, including days with no sales.
type ProfitReport struct {
	Period       string        `json:"period"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	TotalRevenue float64       `json:"totalRevenue"`
	TotalCost    float64       `json:"totalCost"`
	TotalProfit  float64       `json:"totalProfit"`
	ProfitMargin float64       `json:"profitMargin"`
	Breakdown    []DailyProfit `json:"breakdown"`
}

// StatementEntryType classifies a statement line.
type StatementEntryType string

const (
	EntrySale    StatementEntryType = "sale"
	EntryPayment StatementEntryType = "payment"
)

// StatementEntry is one line of a customer statement with its running
// balance after the entry.
type StatementEntry struct {
	ID          string             `json:"id"`
	Date        time.Time          `json:"date"`
	Type        StatementEntryType `json:"type"`
	Description string             `json:"description"`
	Debit       float64            `json:"debit"`
	Credit      float64            `json:"credit"`
	Balance     float64            `json:"balance"`
}

// CustomerStatement is a chronological ledger of one customer's sales and
// same-invoice settlements.
//
// FinalBalance is positive when the customer owes the business. This is the
// opposite sign of the stored Customer.Balance field (where negative means
// owed); the two conventions are deliberately kept distinct.
type CustomerStatement struct {
	CustomerID   string           `json:"customerId"`
	CustomerName string           `json:"customerName"`
	Transactions []StatementEntry `json:"transactions"`
	TotalDebit   float64          `json:"totalDebit"`
	TotalCredit  float64          `json:"totalCredit"`
	FinalBalance float64          `json:"finalBalance"`
}

// TopProduct aggregates one product's sales across all invoices.
type TopProduct struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	TotalSold    int     `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// TopCustomer aggregates one registered customer's purchasing.
type TopCustomer struct {
	CustomerID     string  `json:"customerId"`
	CustomerName   string  `json:"customerName"`
	TotalPurchases int     `json:"totalPurchases"`
	TotalSpent     float64 `json:"totalSpent"`
}
