package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpcportal/admissions/internal/common"
	"github.com/mpcportal/admissions/internal/server/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the uniform error envelope. Field and RegistrationNumber
// are populated only for validation and duplicate failures respectively.
type errorBody struct {
	Error              string `json:"error"`
	Field              string `json:"field,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
}

// writeError translates domain errors to status codes: validation 400,
// duplicate 409, not found 404, credential and token failures 401,
// everything else 500 with the underlying message surfaced.
func writeError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: vErr.Message, Field: vErr.Field})
		return
	}

	var dup *services.DuplicateError
	if errors.As(err, &dup) {
		writeJSON(w, http.StatusConflict, errorBody{
			Error:              dup.Error(),
			RegistrationNumber: dup.RegistrationNumber,
		})
		return
	}

	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}
