package handlers

import "net/http"

// NewRouter wires every endpoint onto a ServeMux.
func NewRouter(
	products *ProductHandler,
	carts *CartHandler,
	orders *OrderHandler,
	auth *AuthHandler,
	reports *ReportHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /products", products.List)
	mux.HandleFunc("POST /products", products.Create)
	mux.HandleFunc("PUT /products/{id}", products.Update)
	mux.HandleFunc("DELETE /products/{id}", products.Delete)
	mux.HandleFunc("GET /categories", products.Categories)

	mux.HandleFunc("GET /cart", carts.View)
	mux.HandleFunc("POST /cart/add", carts.Add)
	mux.HandleFunc("POST /cart/update", carts.Update)
	mux.HandleFunc("POST /cart/delete", carts.Delete)

	mux.HandleFunc("POST /order", orders.Place)
	mux.HandleFunc("GET /order/confirmation/{orderNumber}", orders.Confirmation)
	mux.HandleFunc("GET /order/delete/{orderNumber}", orders.Cancel)
	mux.HandleFunc("GET /orders", orders.ListMine)

	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("POST /login", auth.Login)

	mux.HandleFunc("POST /import", reports.Import)
	mux.HandleFunc("GET /report", reports.Summary)
	mux.HandleFunc("GET /report/export", reports.Export)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return mux
}
