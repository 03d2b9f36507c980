package httpapi

import "net/http"

type cartLineRequest struct {
	// Position addresses the item as currently displayed in the menu listing.
	Position int `json:"position"`
}

func (a *API) addToCart(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	item, err := a.catalog.At(r.Context(), req.Position)
	if err != nil {
		a.writeError(w, err)
		return
	}
	sess := sessionFrom(r)
	sess.Cart.Add(item)
	writeJSON(w, http.StatusOK, map[string]any{
		"name":  item.Name,
		"total": sess.Cart.Total(),
	})
}

// decrementCartLine lowers the selected line by one. Lines that never made it
// into the cart, or already sit at zero, are left alone.
func (a *API) decrementCartLine(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if !decodeBody(w, r, &req) {
		return
	}
	item, err := a.catalog.At(r.Context(), req.Position)
	if err != nil {
		a.writeError(w, err)
		return
	}
	sess := sessionFrom(r)
	sess.Cart.Decrement(item.ID)
	writeJSON(w, http.StatusOK, map[string]any{
		"name":  item.Name,
		"total": sess.Cart.Total(),
	})
}

func (a *API) viewCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"lines": sess.Cart.Lines(),
		"total": sess.Cart.Total(),
	})
}

func (a *API) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).Cart.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
