package httpapi

import (
	"net/http"
	"strings"

	"github.com/fairyhunter13/minimal-shop/internal/model"
)

type cartResponse struct {
	Items      []model.CartItem `json:"items"`
	IsOpen     bool             `json:"is_open"`
	TotalItems int              `json:"total_items"`
	TotalPrice float64          `json:"total_price"`
}

func (a *App) cartSnapshot() cartResponse {
	return cartResponse{
		Items:      a.Cart.Items(),
		IsOpen:     a.Cart.IsOpen(),
		TotalItems: a.Cart.TotalItems(),
		TotalPrice: a.Cart.TotalPrice(),
	}
}

func (a *App) cartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	writeJSON(w, http.StatusOK, a.cartSnapshot())
}

type addCartItemRequest struct {
	ProductID        string            `json:"product_id"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selected_variants"`
}

func (a *App) cartItemsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var req addCartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "product_id is required")
		return
	}
	p, ok := a.Catalog.ProductByID(req.ProductID)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	a.Cart.AddItem(p, req.Quantity, req.SelectedVariants)
	writeJSON(w, http.StatusOK, a.cartSnapshot())
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (a *App) cartItemHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	if id == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req updateQuantityRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		a.Cart.UpdateQuantity(id, req.Quantity)
		writeJSON(w, http.StatusOK, a.cartSnapshot())
	case http.MethodDelete:
		a.Cart.RemoveItem(id)
		writeJSON(w, http.StatusOK, a.cartSnapshot())
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) cartClearHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	a.Cart.Clear()
	writeJSON(w, http.StatusOK, a.cartSnapshot())
}

type setOpenRequest struct {
	Open bool `json:"open"`
}

func (a *App) cartOpenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	var req setOpenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a.Cart.SetOpen(req.Open)
	writeJSON(w, http.StatusOK, a.cartSnapshot())
}

func (a *App) cartToggleHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	a.Cart.Toggle()
	writeJSON(w, http.StatusOK, a.cartSnapshot())
}
