package cart

import (
	"testing"

	"github.com/fairyhunter13/minimal-shop/internal/model"
)

func product(id string, price float64) model.Product {
	return model.Product{ID: id, Name: "P" + id, Price: price, Category: "Home", InStock: true}
}

func TestReduceAddMergesSameProduct(t *testing.T) {
	s := State{}
	s = Reduce(s, AddItem{Product: product("1", 10), Quantity: 2, SelectedVariants: map[string]string{"Color": "Navy"}})
	s = Reduce(s, AddItem{Product: product("1", 10), Quantity: 3, SelectedVariants: map[string]string{"Color": "Black"}})
	if len(s.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(s.Items))
	}
	if s.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", s.Items[0].Quantity)
	}
	if s.Items[0].SelectedVariants["Color"] != "Navy" {
		t.Fatalf("existing line variants must be unchanged, got %v", s.Items[0].SelectedVariants)
	}
}

func TestReduceAddOpensCart(t *testing.T) {
	s := State{}
	s = Reduce(s, AddItem{Product: product("1", 10), Quantity: 1})
	if !s.IsOpen {
		t.Fatalf("adding must open the cart")
	}
	s = Reduce(s, SetOpen{Open: false})
	s = Reduce(s, RemoveItem{ProductID: "1"})
	if s.IsOpen {
		t.Fatalf("removing must not open the cart")
	}
}

func TestReduceAddDefaultsQuantity(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product("1", 10)})
	if s.Items[0].Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", s.Items[0].Quantity)
	}
}

func TestReduceRemoveAbsentIsNoop(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product("1", 10), Quantity: 1})
	got := Reduce(s, RemoveItem{ProductID: "nope"})
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(got.Items))
	}
}

func TestReduceUpdateQuantityReplaces(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product("1", 10), Quantity: 4})
	s = Reduce(s, UpdateQuantity{ProductID: "1", Quantity: 2})
	if s.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity replaced with 2, got %d", s.Items[0].Quantity)
	}
}

func TestReduceUpdateQuantityZeroRemoves(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product("1", 10), Quantity: 4})
	for _, q := range []int{0, -3} {
		got := Reduce(s, UpdateQuantity{ProductID: "1", Quantity: q})
		want := Reduce(s, RemoveItem{ProductID: "1"})
		if len(got.Items) != len(want.Items) || len(got.Items) != 0 {
			t.Fatalf("quantity %d must remove the line, got %d lines", q, len(got.Items))
		}
	}
}

func TestReduceUpdateQuantityAbsentIsNoop(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product("1", 10), Quantity: 1})
	got := Reduce(s, UpdateQuantity{ProductID: "nope", Quantity: 5})
	if len(got.Items) != 1 || got.Items[0].Quantity != 1 {
		t.Fatalf("unexpected state: %+v", got.Items)
	}
}

func TestReduceClearKeepsVisibility(t *testing.T) {
	s := Reduce(State{}, AddItem{Product: product("1", 10), Quantity: 1})
	s = Reduce(s, Clear{})
	if len(s.Items) != 0 {
		t.Fatalf("expected empty cart")
	}
	if !s.IsOpen {
		t.Fatalf("clear must not change visibility")
	}
}

func TestReduceToggle(t *testing.T) {
	s := Reduce(State{}, Toggle{})
	if !s.IsOpen {
		t.Fatalf("expected open after toggle")
	}
	s = Reduce(s, Toggle{})
	if s.IsOpen {
		t.Fatalf("expected closed after second toggle")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	orig := Reduce(State{}, AddItem{Product: product("1", 10), Quantity: 1})
	_ = Reduce(orig, AddItem{Product: product("1", 10), Quantity: 9})
	_ = Reduce(orig, UpdateQuantity{ProductID: "1", Quantity: 7})
	if orig.Items[0].Quantity != 1 {
		t.Fatalf("input state was mutated: %+v", orig.Items)
	}
}

func TestReduceKeepsInsertionOrder(t *testing.T) {
	s := State{}
	for _, id := range []string{"3", "1", "2"} {
		s = Reduce(s, AddItem{Product: product(id, 1), Quantity: 1})
	}
	s = Reduce(s, AddItem{Product: product("1", 1), Quantity: 1})
	got := []string{s.Items[0].Product.ID, s.Items[1].Product.ID, s.Items[2].Product.ID}
	want := []string{"3", "1", "2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order changed: got %v, want %v", got, want)
		}
	}
}
