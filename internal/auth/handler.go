package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/atlas-erp/atlas-erp/internal/shared"
)

// Handler exposes the credential gate over HTTP.
type Handler struct {
	logger    *slog.Logger
	gate      *Gate
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, gate *Gate) *Handler {
	return &Handler{logger: logger, gate: gate, validator: validator.New()}
}

type credentialForm struct {
	Password string `json:"password" validate:"required,min=4"`
}

type changeForm struct {
	Current  string `json:"current"`
	Password string `json:"password" validate:"required,min=4"`
}

// MountRoutes registers auth routes. Login attempts are rate limited per IP.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/session", h.session)
	r.Post("/logout", h.logout)
	r.Group(func(r chi.Router) {
		r.Use(httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
		r.Post("/setup", h.setup)
		r.Post("/login", h.login)
		r.Post("/password", h.changePassword)
	})
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	shared.RespondJSON(w, http.StatusOK, map[string]bool{
		"configured": h.gate.HasCredential(r.Context()),
		"active":     h.gate.IsSessionActive(r.Context()),
	})
}

func (h *Handler) setup(w http.ResponseWriter, r *http.Request) {
	var form credentialForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("malformed request body"))
		return
	}
	if err := h.validator.Struct(form); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("password must be at least 4 characters"))
		return
	}
	if h.gate.HasCredential(r.Context()) {
		shared.RespondError(w, http.StatusConflict, shared.ErrCredentialExists)
		return
	}
	if err := h.gate.SetCredential(r.Context(), form.Password); err != nil {
		shared.RespondError(w, shared.StatusFor(err), err)
		return
	}
	h.gate.StartSession(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var form credentialForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("malformed request body"))
		return
	}
	if !h.gate.Login(r.Context(), form.Password) {
		h.logger.Warn("login rejected")
		shared.RespondError(w, http.StatusUnauthorized, shared.ErrInvalidCredentials)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.gate.EndSession(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var form changeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("malformed request body"))
		return
	}
	if err := h.validator.Struct(form); err != nil {
		shared.RespondError(w, http.StatusBadRequest, shared.Validationf("password must be at least 4 characters"))
		return
	}
	if !h.gate.Verify(r.Context(), form.Current) {
		shared.RespondError(w, http.StatusUnauthorized, shared.ErrInvalidCredentials)
		return
	}
	if err := h.gate.SetCredential(r.Context(), form.Password); err != nil {
		shared.RespondError(w, shared.StatusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequireSession guards routes behind an active session.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.gate.IsSessionActive(r.Context()) {
			shared.RespondError(w, http.StatusUnauthorized, shared.ErrInvalidCredentials)
			return
		}
		next.ServeHTTP(w, r)
	})
}
