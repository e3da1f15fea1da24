package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mpcportal/admissions/internal/common"
	"github.com/mpcportal/admissions/internal/server/auth"
	"github.com/mpcportal/admissions/internal/server/models"
	"github.com/mpcportal/admissions/internal/server/services"
)

type loginRequest struct {
	Passphrase string `json:"passphrase"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

func (h *Handler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &services.ValidationError{Field: "body", Message: "Request body must be JSON."})
		return
	}

	if err := auth.CheckPassphrase(h.passphraseHash, req.Passphrase); err != nil {
		h.logger.Warn(r.Context(), "admin login rejected", "remote", r.RemoteAddr)
		writeError(w, err)
		return
	}

	token, err := auth.GenerateAdminToken(h.jwtSecret, h.tokenValidity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: int64(h.tokenValidity.Seconds()),
	})
}

// requireAdmin verifies the bearer token before any dashboard route runs.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, common.ErrInvalidToken)
			return
		}
		if err := auth.VerifyAdminToken(token, h.jwtSecret); err != nil {
			writeError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type adminListResponse struct {
	Applications []*models.Application `json:"applications"`
	Stats        models.Stats          `json:"stats"`
}

func (h *Handler) handleAdminList(w http.ResponseWriter, r *http.Request) {
	apps, stats, err := h.admin.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if apps == nil {
		apps = []*models.Application{}
	}
	writeJSON(w, http.StatusOK, adminListResponse{Applications: apps, Stats: stats})
}

func (h *Handler) handleAdminUpdate(w http.ResponseWriter, r *http.Request) {
	var upd models.ApplicationUpdate
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&upd); err != nil {
		writeError(w, &services.ValidationError{Field: "body", Message: "Unknown or malformed update field."})
		return
	}
	if upd.IsEmpty() {
		writeError(w, &services.ValidationError{Field: "body", Message: "Update payload carries no changes."})
		return
	}
	if upd.Status != nil && !upd.Status.Known() {
		writeError(w, &services.ValidationError{Field: "application_status", Message: "Status must be Pending, Approved or Rejected."})
		return
	}

	if err := h.admin.Update(r.Context(), chi.URLParam(r, "id"), &upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
