// Package model defines domain types used by the storefront.
package model

import "time"

// Variant describes one choosable product option group, e.g. Color.
type Variant struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Product represents a catalog product. SellerID is empty for seed
// products and set for seller-submitted ones.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Images        []string  `json:"images"`
	Category      string    `json:"category"`
	InStock       bool      `json:"inStock"`
	Variants      []Variant `json:"variants,omitempty"`
	SellerID      string    `json:"sellerId,omitempty"`
}

// ProductUpdate carries a partial product update. Nil fields are left
// unchanged.
type ProductUpdate struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	OriginalPrice *float64   `json:"originalPrice,omitempty"`
	Images        *[]string  `json:"images,omitempty"`
	Category      *string    `json:"category,omitempty"`
	InStock       *bool      `json:"inStock,omitempty"`
	Variants      *[]Variant `json:"variants,omitempty"`
}

// CartItem is one cart line. Product is a snapshot taken at add time,
// not a live reference into the catalog.
type CartItem struct {
	Product          Product           `json:"product"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants,omitempty"`
}

// Account is a registered storefront user. Email is stored lowercased.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credential pairs an account with its password in the registry.
// The password is kept in clear; this is a prototype-grade contract.
type Credential struct {
	Account  Account `json:"user"`
	Password string  `json:"password"`
}
