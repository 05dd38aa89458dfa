// Package cart holds the shopping cart state machine: a pure transition
// function over tagged actions, wrapped by a Store that commits results
// and persists line items.
package cart

import "github.com/fairyhunter13/minimal-shop/internal/model"

// State is the complete cart state. Items keep insertion order.
type State struct {
	Items  []model.CartItem
	IsOpen bool
}

// Action is a single cart transition request.
type Action interface{ isAction() }

// AddItem merges into an existing line with the same product id or
// appends a new line, and opens the cart.
type AddItem struct {
	Product          model.Product
	Quantity         int
	SelectedVariants map[string]string
}

// RemoveItem deletes the line for ProductID. Absent ids are a no-op.
type RemoveItem struct{ ProductID string }

// UpdateQuantity sets a line's quantity outright. Quantity <= 0 removes
// the line.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// Clear empties the cart, leaving visibility untouched.
type Clear struct{}

// Toggle flips cart visibility.
type Toggle struct{}

// SetOpen sets cart visibility.
type SetOpen struct{ Open bool }

// Load replaces the line items wholesale; used once at restore.
type Load struct{ Items []model.CartItem }

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()         {}
func (Toggle) isAction()        {}
func (SetOpen) isAction()       {}
func (Load) isAction()          {}

// Reduce applies one action and returns the next state. It never mutates
// its input, so it is safe to call on retained snapshots.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddItem:
		qty := a.Quantity
		if qty <= 0 {
			qty = 1
		}
		items := copyItems(s.Items)
		for i := range items {
			if items[i].Product.ID == a.Product.ID {
				// Existing line keeps its variants.
				items[i].Quantity += qty
				return State{Items: items, IsOpen: true}
			}
		}
		items = append(items, model.CartItem{
			Product:          a.Product,
			Quantity:         qty,
			SelectedVariants: a.SelectedVariants,
		})
		return State{Items: items, IsOpen: true}
	case RemoveItem:
		return State{Items: removeByID(s.Items, a.ProductID), IsOpen: s.IsOpen}
	case UpdateQuantity:
		if a.Quantity <= 0 {
			return State{Items: removeByID(s.Items, a.ProductID), IsOpen: s.IsOpen}
		}
		items := copyItems(s.Items)
		for i := range items {
			if items[i].Product.ID == a.ProductID {
				items[i].Quantity = a.Quantity
			}
		}
		return State{Items: items, IsOpen: s.IsOpen}
	case Clear:
		return State{Items: nil, IsOpen: s.IsOpen}
	case Toggle:
		return State{Items: s.Items, IsOpen: !s.IsOpen}
	case SetOpen:
		return State{Items: s.Items, IsOpen: a.Open}
	case Load:
		return State{Items: a.Items, IsOpen: s.IsOpen}
	}
	return s
}

func copyItems(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}

func removeByID(items []model.CartItem, id string) []model.CartItem {
	out := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		if it.Product.ID != id {
			out = append(out, it)
		}
	}
	return out
}
