package cart

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/fairyhunter13/minimal-shop/internal/model"
	"github.com/fairyhunter13/minimal-shop/internal/obs"
	"github.com/fairyhunter13/minimal-shop/internal/storage"
)

const cartKey = "shop-cart"

// Store owns the cart state. Every mutation runs the pure reducer, commits
// the result and re-serializes the line items (not visibility) to storage.
// Persistence failures degrade durability only: they are logged and the
// in-memory state stays authoritative for the session.
type Store struct {
	mu    sync.Mutex
	state State
	kv    storage.KV
}

// New creates a store and restores persisted line items. Corrupt or
// unreadable data is treated as an empty cart. The cart starts closed.
func New(kv storage.KV) *Store {
	s := &Store{kv: kv}
	raw, ok, err := kv.Get(cartKey)
	if err != nil {
		obs.Logger.Error("cart_load_failed", zap.Error(err))
		return s
	}
	if !ok {
		return s
	}
	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		obs.Logger.Error("cart_corrupt", zap.Error(err))
		return s
	}
	s.state = Reduce(s.state, Load{Items: items})
	return s
}

func (s *Store) dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	s.persistLocked()
}

func (s *Store) persistLocked() {
	b, err := json.Marshal(s.state.Items)
	if err != nil {
		obs.Logger.Error("cart_encode_failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(cartKey, string(b)); err != nil {
		obs.Logger.Error("cart_persist_failed", zap.Error(err))
	}
}

// AddItem adds quantity of the given product, merging with an existing
// line for the same product id, and opens the cart.
func (s *Store) AddItem(p model.Product, quantity int, variants map[string]string) {
	s.dispatch(AddItem{Product: p, Quantity: quantity, SelectedVariants: variants})
}

// RemoveItem deletes the line for productID if present.
func (s *Store) RemoveItem(productID string) {
	s.dispatch(RemoveItem{ProductID: productID})
}

// UpdateQuantity sets a line's quantity outright; quantity <= 0 removes
// the line.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.dispatch(UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// Clear empties the cart, e.g. after order completion.
func (s *Store) Clear() { s.dispatch(Clear{}) }

// Toggle flips cart visibility.
func (s *Store) Toggle() { s.dispatch(Toggle{}) }

// SetOpen sets cart visibility.
func (s *Store) SetOpen(open bool) { s.dispatch(SetOpen{Open: open}) }

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.state.Items)
}

// IsOpen reports cart visibility.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsOpen
}

// TotalItems is the sum of line quantities, recomputed on every call.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.state.Items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price times quantity over current lines,
// recomputed on every call.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.state.Items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}
