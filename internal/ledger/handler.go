package ledger

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atlas-erp/atlas-erp/internal/shared"
)

// CSVRenderer writes a ledger view as CSV; implemented by the export
// package, injected to keep this package free of formatting concerns.
type CSVRenderer interface {
	ProfitReportCSV(ctx context.Context, w io.Writer, report ProfitReport) error
	StatementCSV(ctx context.Context, w io.Writer, statement CustomerStatement) error
}

// Handler exposes ledger queries as JSON (and CSV) endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	csv     CSVRenderer
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, csv CSVRenderer) *Handler {
	return &Handler{logger: logger, service: service, csv: csv}
}

// MountRoutes registers ledger routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/alerts/low-stock", h.lowStock)
	r.Get("/reports/profit", h.profitReport)
	r.Get("/reports/top-products", h.topProducts)
	r.Get("/reports/top-customers", h.topCustomers)
	r.Get("/reports/turnover/{productID}", h.turnover)
	r.Get("/statements/{customerID}", h.statement)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.service.Dashboard(r.Context()))
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.service.LowStock(r.Context()))
}

func (h *Handler) profitReport(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "daily"
	}
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("invalid start date"))
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("invalid end date"))
		return
	}

	report := h.service.ProfitReport(r.Context(), period, start, end)
	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="profit-report.csv"`)
		if err := h.csv.ProfitReportCSV(r.Context(), w, report); err != nil {
			h.logger.Error("write profit report csv", slog.Any("error", err))
		}
		return
	}
	shared.RespondJSON(w, http.StatusOK, report)
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	var bounds StatementRange
	if v := r.URL.Query().Get("start"); v != "" {
		start, err := parseDate(v)
		if err != nil {
			shared.RespondError(w, http.StatusBadRequest, shared.Validationf("invalid start date"))
			return
		}
		bounds.Start = start
	}
	if v := r.URL.Query().Get("end"); v != "" {
		end, err := parseDate(v)
		if err != nil {
			shared.RespondError(w, http.StatusBadRequest, shared.Validationf("invalid end date"))
			return
		}
		bounds.End = end
	}

	statement, err := h.service.CustomerStatement(r.Context(), chi.URLParam(r, "customerID"), bounds)
	if err != nil {
		shared.RespondError(w, shared.StatusFor(err), err)
		return
	}
	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="customer-statement.csv"`)
		if err := h.csv.StatementCSV(r.Context(), w, *statement); err != nil {
			h.logger.Error("write statement csv", slog.Any("error", err))
		}
		return
	}
	shared.RespondJSON(w, http.StatusOK, statement)
}

func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.service.TopProducts(r.Context(), parseLimit(r, 10)))
}

func (h *Handler) topCustomers(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.service.TopCustomers(r.Context(), parseLimit(r, 10)))
}

func (h *Handler) turnover(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	shared.RespondJSON(w, http.StatusOK, map[string]any{
		"productId": productID,
		"turnover":  h.service.InventoryTurnover(r.Context(), productID),
	})
}

func parseDate(v string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", v, time.Local)
}

func parseLimit(r *http.Request, fallback int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
