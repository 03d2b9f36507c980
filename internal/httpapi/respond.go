package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurant-orders/internal/domain"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem emits the problem-style error body used across the API.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// writeError maps a core error to its problem response. Storage failures are
// the only 5xx: every business error is the caller's to fix.
func (a *API) writeError(w http.ResponseWriter, err error) {
	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrEmptyCart):
		writeProblem(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, domain.ErrAuthentication):
		writeProblem(w, http.StatusUnauthorized, "authentication_failed", err.Error())
	case errors.Is(err, domain.ErrInvalidAdminCode):
		writeProblem(w, http.StatusUnauthorized, "invalid_admin_code", err.Error())
	case errors.Is(err, domain.ErrDuplicateAccount):
		writeProblem(w, http.StatusConflict, "duplicate_account", err.Error())
	case errors.Is(err, domain.ErrDuplicateItem):
		writeProblem(w, http.StatusConflict, "duplicate_item", err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		writeProblem(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrIndexOutOfRange):
		writeProblem(w, http.StatusNotFound, "position_out_of_range", err.Error())
	case errors.As(err, &storageErr):
		a.lg.Error("storage_failure", "error", err)
		writeProblem(w, http.StatusInternalServerError, "storage_error", "backing store unavailable")
	default:
		a.lg.Error("unexpected_failure", "error", err)
		writeProblem(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return false
	}
	return true
}
