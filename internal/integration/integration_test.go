package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/fairyhunter13/minimal-shop/internal/cart"
	"github.com/fairyhunter13/minimal-shop/internal/catalog"
	"github.com/fairyhunter13/minimal-shop/internal/config"
	httpapi "github.com/fairyhunter13/minimal-shop/internal/http"
	"github.com/fairyhunter13/minimal-shop/internal/model"
	"github.com/fairyhunter13/minimal-shop/internal/session"
	"github.com/fairyhunter13/minimal-shop/internal/storage"
)

// TestIntegration_RestartRestoresAllStores drives all three stores over a
// real sqlite file, then rebuilds them from the same file as a process
// restart would.
func TestIntegration_RestartRestoresAllStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	sess := session.New(kv)
	cat := catalog.New(kv, catalog.Seed())
	crt := cart.New(kv)

	acct, err := sess.Signup("seller@example.com", "pw", "Seller")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	created := cat.AddProduct(model.Product{Name: "X", Price: 10, Category: "Home", InStock: true}, acct.ID)
	crt.AddItem(created, 2, nil)
	seedProduct, _ := cat.ProductByID("1")
	crt.AddItem(seedProduct, 1, nil)

	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	kv2, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv2.Close()

	sess2 := session.New(kv2)
	cur, ok := sess2.Current()
	if !ok || cur.ID != acct.ID {
		t.Fatalf("session not restored: ok=%v cur=%+v", ok, cur)
	}

	cat2 := catalog.New(kv2, catalog.Seed())
	if _, ok := cat2.ProductByID(created.ID); !ok {
		t.Fatalf("seller product not restored")
	}

	crt2 := cart.New(kv2)
	if got := crt2.TotalItems(); got != 3 {
		t.Fatalf("expected 3 cart items after restore, got %d", got)
	}
	if got := crt2.TotalPrice(); got != 68 {
		t.Fatalf("expected total 68 after restore, got %v", got)
	}
	if crt2.IsOpen() {
		t.Fatalf("restored cart must start closed")
	}
}

// TestIntegration_CatalogUpdateDoesNotTouchCartSnapshot pins the snapshot
// contract: cart lines copy the product at add time.
func TestIntegration_CatalogUpdateDoesNotTouchCartSnapshot(t *testing.T) {
	kv := storage.NewMemory()
	cat := catalog.New(kv, catalog.Seed())
	crt := cart.New(kv)

	created := cat.AddProduct(model.Product{Name: "X", Price: 10, Category: "Home"}, "S1")
	crt.AddItem(created, 1, nil)

	newPrice := 99.0
	cat.UpdateProduct(created.ID, model.ProductUpdate{Price: &newPrice})

	if got := crt.TotalPrice(); got != 10 {
		t.Fatalf("cart snapshot must keep the add-time price, got %v", got)
	}
	updated, _ := cat.ProductByID(created.ID)
	if updated.Price != 99 {
		t.Fatalf("catalog must carry the new price, got %v", updated.Price)
	}
}

func TestIntegration_HTTPFlowOverSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()

	app := httpapi.NewApp(config.Load(), catalog.New(kv, catalog.Seed()), cart.New(kv), session.New(kv))
	h := httpapi.NewRouter(app)

	b := bytes.NewBufferString(`{"product_id":"3","quantity":2,"selected_variants":{"Color":"Sage"}}`)
	r := httptest.NewRequest(http.MethodPost, "/cart/items", b)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	rg := httptest.NewRequest(http.MethodGet, "/cart", nil)
	wg := httptest.NewRecorder()
	h.ServeHTTP(wg, rg)
	var resp struct {
		Items      []model.CartItem `json:"items"`
		TotalPrice float64          `json:"total_price"`
	}
	if err := json.Unmarshal(wg.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].SelectedVariants["Color"] != "Sage" {
		t.Fatalf("unexpected cart: %+v", resp.Items)
	}
	if resp.TotalPrice != 240 {
		t.Fatalf("expected total 240, got %v", resp.TotalPrice)
	}
}
