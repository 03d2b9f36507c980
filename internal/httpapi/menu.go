package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"restaurant-orders/internal/domain"
)

type menuItemView struct {
	Position    int     `json:"position"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func menuView(items []domain.MenuItem) []menuItemView {
	out := make([]menuItemView, len(items))
	for i, it := range items {
		out[i] = menuItemView{
			Position:    it.Position,
			Name:        it.Name,
			Price:       it.Price,
			Description: it.Description,
		}
	}
	return out
}

func (a *API) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := a.catalog.List(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": menuView(items)})
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func (a *API) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.catalog.Add(r.Context(), req.Name, req.Price, req.Description); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

func (a *API) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	position, ok := positionParam(w, r)
	if !ok {
		return
	}
	var req menuItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := a.catalog.Update(r.Context(), position, req.Name, req.Price, req.Description); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"position": position})
}

func (a *API) removeMenuItem(w http.ResponseWriter, r *http.Request) {
	position, ok := positionParam(w, r)
	if !ok {
		return
	}
	if err := a.catalog.Remove(r.Context(), position); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"position": position})
}

func positionParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "validation_error", "position must be an integer")
		return 0, false
	}
	return position, true
}
