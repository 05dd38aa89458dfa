// Package catalog merges the built-in seed product table with
// seller-submitted products and persists the seller partition.
package catalog

import (
	"encoding/json"
	stdsort "sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fairyhunter13/minimal-shop/internal/model"
	"github.com/fairyhunter13/minimal-shop/internal/obs"
	"github.com/fairyhunter13/minimal-shop/internal/storage"
)

const sellerProductsKey = "minimal_seller_products"

// sellerIDPrefix keeps seller product ids disjoint from seed ids.
const sellerIDPrefix = "seller-"

// AllCategories is the pseudo-category selecting the full union.
const AllCategories = "All"

// Sort names accepted by Sorted.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
)

// Store holds the two catalog partitions. The seed partition is read-only;
// only the seller partition is ever written back to storage.
type Store struct {
	mu     sync.RWMutex
	seed   []model.Product
	seller []model.Product
	kv     storage.KV
}

// New builds a store over the given seed table and restores the seller
// partition. Corrupt or unreadable persisted data is treated as absent.
func New(kv storage.KV, seed []model.Product) *Store {
	s := &Store{seed: seed, kv: kv}
	raw, ok, err := kv.Get(sellerProductsKey)
	if err != nil {
		obs.Logger.Error("seller_products_load_failed", zap.Error(err))
		return s
	}
	if !ok {
		return s
	}
	var sellers []model.Product
	if err := json.Unmarshal([]byte(raw), &sellers); err != nil {
		obs.Logger.Error("seller_products_corrupt", zap.Error(err))
		return s
	}
	s.seller = sellers
	return s
}

func (s *Store) persistLocked() {
	b, err := json.Marshal(s.seller)
	if err != nil {
		obs.Logger.Error("seller_products_encode_failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(sellerProductsKey, string(b)); err != nil {
		obs.Logger.Error("seller_products_persist_failed", zap.Error(err))
	}
}

// AddProduct stores input as a new seller product. The id is allocated
// here with a reserved prefix; any caller-supplied id is discarded.
func (s *Store) AddProduct(input model.Product, sellerID string) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	input.ID = sellerIDPrefix + uuid.NewString()
	input.SellerID = sellerID
	s.seller = append(s.seller, input)
	s.persistLocked()
	return input
}

// UpdateProduct merges non-nil fields into the matching seller product.
// Seed products are immutable through this interface, so updates to them
// or to unknown ids are silent no-ops.
func (s *Store) UpdateProduct(id string, upd model.ProductUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.seller {
		if s.seller[i].ID != id {
			continue
		}
		p := &s.seller[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.OriginalPrice != nil {
			p.OriginalPrice = upd.OriginalPrice
		}
		if upd.Images != nil {
			p.Images = *upd.Images
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.InStock != nil {
			p.InStock = *upd.InStock
		}
		if upd.Variants != nil {
			p.Variants = *upd.Variants
		}
		s.persistLocked()
		return
	}
}

// DeleteProduct removes the matching product from the seller partition.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]model.Product, 0, len(s.seller))
	removed := false
	for _, p := range s.seller {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return
	}
	s.seller = kept
	s.persistLocked()
}

// All returns the union: seed products in seed order, then seller
// products in insertion order.
func (s *Store) All() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unionLocked()
}

func (s *Store) unionLocked() []model.Product {
	out := make([]model.Product, 0, len(s.seed)+len(s.seller))
	out = append(out, s.seed...)
	out = append(out, s.seller...)
	return out
}

// ProductByID looks up across both partitions.
func (s *Store) ProductByID(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.unionLocked() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// ProductsByCategory filters the union by exact category match.
// AllCategories returns the full union.
func (s *Store) ProductsByCategory(category string) []model.Product {
	all := s.All()
	if category == AllCategories {
		return all
	}
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ProductsBySeller filters the seller partition; seed products have no
// seller and never match.
func (s *Store) ProductsBySeller(sellerID string) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.seller))
	for _, p := range s.seller {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns AllCategories followed by distinct category values
// across the union, in first-seen traversal order.
func (s *Store) Categories() []string {
	all := s.All()
	out := []string{AllCategories}
	seen := make(map[string]bool, len(all))
	for _, p := range all {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Newest returns the union in reverse order. This mirrors the storefront's
// "newest" sort, which is a plain reversal rather than timestamp recency.
func (s *Store) Newest() []model.Product {
	u := s.All()
	for i, j := 0, len(u)-1; i < j; i, j = i+1, j-1 {
		u[i], u[j] = u[j], u[i]
	}
	return u
}

// Sorted returns the given products ordered by the named sort. Unknown
// names (including SortFeatured) keep the incoming order. The input slice
// is not modified.
func Sorted(products []model.Product, sort string) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)
	switch sort {
	case SortPriceAsc:
		stdsort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		stdsort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNewest:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
