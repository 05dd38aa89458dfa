package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fairyhunter13/minimal-shop/internal/cart"
	"github.com/fairyhunter13/minimal-shop/internal/catalog"
	"github.com/fairyhunter13/minimal-shop/internal/config"
	"github.com/fairyhunter13/minimal-shop/internal/http/openapi"
	"github.com/fairyhunter13/minimal-shop/internal/model"
	"github.com/fairyhunter13/minimal-shop/internal/obs"
	"github.com/fairyhunter13/minimal-shop/internal/session"
)

// App wires the three stores behind the HTTP handlers.
type App struct {
	Cfg     config.Config
	Catalog *catalog.Store
	Cart    *cart.Store
	Session *session.Store
	started time.Time
}

// NewApp builds the handler context over the given stores.
func NewApp(cfg config.Config, cat *catalog.Store, crt *cart.Store, sess *session.Store) *App {
	return &App{Cfg: cfg, Catalog: cat, Cart: crt, Session: sess, started: time.Now()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func (a *App) productsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.listProducts(w, r)
	case http.MethodPost:
		a.createProduct(w, r)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var list []model.Product
	switch {
	case q.Get("seller") != "":
		list = a.Catalog.ProductsBySeller(q.Get("seller"))
	case q.Get("category") != "":
		list = a.Catalog.ProductsByCategory(q.Get("category"))
	default:
		list = a.Catalog.All()
	}
	if sort := q.Get("sort"); sort != "" {
		list = catalog.Sorted(list, sort)
	}
	writeJSON(w, http.StatusOK, list)
}

func (a *App) createProduct(w http.ResponseWriter, r *http.Request) {
	var in model.Product
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "name is required")
		return
	}
	if in.Price < 0 {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "price must be >= 0")
		return
	}
	if in.Category == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "category is required")
		return
	}
	if in.SellerID == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "sellerId is required")
		return
	}
	created := a.Catalog.AddProduct(in, in.SellerID)
	writeJSON(w, http.StatusCreated, created)
	obs.Logger.Info("product_created",
		zap.String("product_id", created.ID),
		zap.String("seller_id", created.SellerID),
		zap.String("request_id", RequestIDFromContext(r.Context())),
	)
}

func (a *App) productHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/products/")
	if id == "" || strings.Contains(id, "/") {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, ok := a.Catalog.ProductByID(id)
		if !ok {
			WriteJSONError(w, http.StatusNotFound, "not_found", "")
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPatch:
		var upd model.ProductUpdate
		if !decodeJSON(w, r, &upd) {
			return
		}
		if upd.Price != nil && *upd.Price < 0 {
			WriteJSONError(w, http.StatusBadRequest, "validation_error", "price must be >= 0")
			return
		}
		a.Catalog.UpdateProduct(id, upd)
		p, ok := a.Catalog.ProductByID(id)
		if !ok {
			WriteJSONError(w, http.StatusNotFound, "not_found", "")
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodDelete:
		a.Catalog.DeleteProduct(id)
		w.WriteHeader(http.StatusNoContent)
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	writeJSON(w, http.StatusOK, a.Catalog.Categories())
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := a.Session.Current()
	m := map[string]any{
		"catalog_products": len(a.Catalog.All()),
		"cart_lines":       len(a.Cart.Items()),
		"cart_items":       a.Cart.TotalItems(),
		"session_active":   loggedIn,
		"uptime_sec":       time.Since(a.started).Seconds(),
	}
	writeJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
