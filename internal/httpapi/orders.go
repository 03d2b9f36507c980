package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-orders/internal/domain"
)

// placeOrder checks out the session's cart. On success the cart is cleared
// here, the core leaves that to its caller.
func (a *API) placeOrder(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	orderID, err := a.ledger.PlaceOrder(r.Context(), sess.Username, sess.Cart)
	if err != nil {
		a.writeError(w, err)
		return
	}
	sess.Cart.Clear()
	writeJSON(w, http.StatusCreated, map[string]any{
		"order_id": orderID,
		"status":   string(domain.StatusPending),
	})
}

func (a *API) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.ledger.ListForUser(r.Context(), sessionFrom(r).Username)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (a *API) orderDetails(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}
	order, err := a.ledger.GetDetails(r.Context(), orderID)
	if err != nil {
		a.writeError(w, err)
		return
	}
	sess := sessionFrom(r)
	if sess.Role != domain.RoleAdmin && order.Username != sess.Username {
		// Another user's order is indistinguishable from a missing one.
		writeProblem(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (a *API) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}
	sess := sessionFrom(r)
	if sess.Role != domain.RoleAdmin {
		order, err := a.ledger.GetDetails(r.Context(), orderID)
		if err != nil {
			a.writeError(w, err)
			return
		}
		if order.Username != sess.Username {
			writeProblem(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
	}
	if err := a.ledger.Cancel(r.Context(), orderID); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"order_id": orderID,
		"status":   string(domain.StatusCancelled),
	})
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "validation_error", "order id must be an integer")
		return 0, false
	}
	return orderID, true
}
