package backup

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atlas-erp/atlas-erp/internal/shared"
)

// maxImportSize bounds the accepted backup document.
const maxImportSize = 32 << 20

// Handler exposes export and restore endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers backup routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/export", h.export)
	r.Post("/import", h.importDocument)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportJSON(r.Context())
	if err != nil {
		h.logger.Error("export failed", slog.Any("error", err))
		shared.RespondError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="atlas-backup.json"`)
	_, _ = w.Write(data)
}

func (h *Handler) importDocument(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("unreadable request body"))
		return
	}
	if err := h.service.Import(r.Context(), data); err != nil {
		h.logger.Warn("import rejected", slog.Any("error", err))
		shared.RespondJSON(w, shared.StatusFor(err), map[string]any{
			"success": false,
			"error":   shared.UserSafeMessage(err),
		})
		return
	}
	shared.RespondJSON(w, http.StatusOK, map[string]any{"success": true})
}
