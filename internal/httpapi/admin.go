package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant-orders/internal/domain"
)

func (a *API) listAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.ledger.ListAll(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (a *API) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}
	var req setStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.ledger.SetStatus(r.Context(), orderID, domain.Status(req.Status)); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"order_id": orderID,
		"status":   req.Status,
	})
}

type userView struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.directory.ListUsers(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	out := make([]userView, len(users))
	for i, u := range users {
		out[i] = userView{Username: u.Username, Phone: u.Phone}
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

type updateUserRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	var req updateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.directory.UpdateUser(r.Context(), username, req.Phone, req.Password); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := a.directory.DeleteUser(r.Context(), username); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}
