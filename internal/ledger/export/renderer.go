package export

import (
	"context"
	"io"

	"github.com/atlas-erp/atlas-erp/internal/ledger"
	"github.com/atlas-erp/atlas-erp/internal/settings"
)

// Renderer produces CSV documents formatted per the installation language.
type Renderer struct {
	settings *settings.Service
}

// NewRenderer constructs a Renderer over the settings service.
func NewRenderer(s *settings.Service) *Renderer {
	return &Renderer{settings: s}
}

// ProfitReportCSV implements ledger.CSVRenderer.
func (r *Renderer) ProfitReportCSV(ctx context.Context, w io.Writer, report ledger.ProfitReport) error {
	return WriteProfitReportCSV(w, report, PrinterFor(r.settings.Get(ctx).Language))
}

// StatementCSV implements ledger.CSVRenderer.
func (r *Renderer) StatementCSV(ctx context.Context, w io.Writer, statement ledger.CustomerStatement) error {
	return WriteStatementCSV(w, statement, PrinterFor(r.settings.Get(ctx).Language))
}
