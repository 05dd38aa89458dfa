package httpapi

import (
	"expvar"
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", app.productsHandler)
	mux.HandleFunc("/products/", app.productHandler)
	mux.HandleFunc("/categories", app.categoriesHandler)
	mux.HandleFunc("/cart", app.cartHandler)
	mux.HandleFunc("/cart/items", app.cartItemsHandler)
	mux.HandleFunc("/cart/items/", app.cartItemHandler)
	mux.HandleFunc("/cart/clear", app.cartClearHandler)
	mux.HandleFunc("/cart/open", app.cartOpenHandler)
	mux.HandleFunc("/cart/toggle", app.cartToggleHandler)
	mux.HandleFunc("/auth/signup", app.signupHandler)
	mux.HandleFunc("/auth/login", app.loginHandler)
	mux.HandleFunc("/auth/logout", app.logoutHandler)
	mux.HandleFunc("/auth/me", app.meHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	mux.HandleFunc("/debug/metrics", app.metricsHandler)
	mux.Handle("/debug/vars", expvar.Handler())
	mux.HandleFunc("/openapi.yaml", app.openapiHandler)
	mux.HandleFunc("/docs", app.docsHandler)
	return WithRequestID(WithLogging(mux))
}
