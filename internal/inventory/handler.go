package inventory

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atlas-erp/atlas-erp/internal/shared"
)

// Handler exposes the product CRUD surface as JSON endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers product routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondError(w, shared.StatusFor(err), err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("malformed request body"))
		return
	}
	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Warn("create product rejected", slog.Any("error", err))
		shared.RespondError(w, shared.StatusFor(err), err)
		return
	}
	shared.RespondJSON(w, http.StatusCreated, product)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("malformed request body"))
		return
	}
	product, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		shared.RespondError(w, shared.StatusFor(err), err)
		return
	}
	shared.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if !h.service.Delete(r.Context(), chi.URLParam(r, "id")) {
		shared.RespondError(w, http.StatusNotFound, shared.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
