// Package httpapi exposes the core services as a JSON request/response
// surface. It plays the role of the UI collaborator: it resolves the session
// identity, translates core errors into problem responses, and clears the
// session cart after a successful checkout.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"restaurant-orders/internal/catalog"
	"restaurant-orders/internal/common/metrics"
	"restaurant-orders/internal/directory"
	"restaurant-orders/internal/ledger"
	"restaurant-orders/internal/session"
)

type API struct {
	directory directory.ServiceInterface
	catalog   catalog.ServiceInterface
	ledger    ledger.ServiceInterface
	sessions  *session.Registry
	lg        *slog.Logger
}

func New(dir directory.ServiceInterface, cat catalog.ServiceInterface, led ledger.ServiceInterface, sessions *session.Registry, lg *slog.Logger) *API {
	return &API{directory: dir, catalog: cat, ledger: led, sessions: sessions, lg: lg}
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", a.registerUser)
		r.Post("/auth/register-admin", a.registerAdmin)
		r.Post("/auth/login", a.login)

		r.Group(func(r chi.Router) {
			r.Use(a.withSession)

			r.Post("/auth/logout", a.logout)

			r.Get("/menu", a.listMenu)

			r.Get("/cart", a.viewCart)
			r.Delete("/cart", a.clearCart)
			r.Post("/cart/items", a.addToCart)
			r.Post("/cart/items/decrement", a.decrementCartLine)

			r.Post("/orders", a.placeOrder)
			r.Get("/orders", a.listOrders)
			r.Get("/orders/{orderID}", a.orderDetails)
			r.Post("/orders/{orderID}/cancel", a.cancelOrder)
		})

		r.Group(func(r chi.Router) {
			r.Use(a.withSession, a.requireAdmin)

			r.Post("/menu", a.addMenuItem)
			r.Put("/menu/{position}", a.updateMenuItem)
			r.Delete("/menu/{position}", a.removeMenuItem)

			r.Get("/admin/orders", a.listAllOrders)
			r.Put("/admin/orders/{orderID}/status", a.setOrderStatus)

			r.Get("/admin/users", a.listUsers)
			r.Put("/admin/users/{username}", a.updateUser)
			r.Delete("/admin/users/{username}", a.deleteUser)
		})
	})
	return r
}
