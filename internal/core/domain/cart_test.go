package domain

import "testing"

func testLine(productID string, price float64, qty int) CartLine {
	return CartLine{
		ProductID: productID,
		Name:      "product " + productID,
		Price:     price,
		Quantity:  qty,
		Category:  CategoryElectronics,
	}
}

func TestCart_AddItem_MergesQuantity(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(testLine("p1", 10.0, 2))
	cart.AddItem(testLine("p1", 10.0, 3))

	if len(cart.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart.Lines[0].Quantity)
	}
	if cart.TotalQuantity != 5 || cart.TotalPrice != 50.0 {
		t.Fatalf("unexpected totals: qty=%d price=%.2f", cart.TotalQuantity, cart.TotalPrice)
	}
}

func TestCart_AddItem_KeepsInsertionOrder(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(testLine("p1", 5.0, 1))
	cart.AddItem(testLine("p2", 7.0, 1))
	cart.AddItem(testLine("p1", 5.0, 1))
	cart.AddItem(testLine("p3", 3.0, 1))

	want := []string{"p1", "p2", "p3"}
	if len(cart.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(cart.Lines))
	}
	for i, id := range want {
		if cart.Lines[i].ProductID != id {
			t.Fatalf("line %d: expected %s, got %s", i, id, cart.Lines[i].ProductID)
		}
	}
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(testLine("p1", 10.0, 1))
	cart.AddItem(testLine("p2", 20.0, 2))

	cart.RemoveItem("p1")

	if len(cart.Lines) != 1 || cart.Lines[0].ProductID != "p2" {
		t.Fatalf("unexpected lines after removal: %+v", cart.Lines)
	}
	if cart.TotalQuantity != 2 || cart.TotalPrice != 40.0 {
		t.Fatalf("unexpected totals: qty=%d price=%.2f", cart.TotalQuantity, cart.TotalPrice)
	}
}

func TestCart_RemoveItem_AbsentProductIsNoop(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(testLine("p1", 10.0, 1))

	cart.RemoveItem("ghost")

	if len(cart.Lines) != 1 || cart.TotalQuantity != 1 {
		t.Fatalf("removal of absent product changed the cart: %+v", cart)
	}
}

func TestCart_UpdateItemQuantity(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(testLine("p1", 10.0, 1))

	cart.UpdateItemQuantity("p1", 4)

	if cart.Lines[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", cart.Lines[0].Quantity)
	}
	if cart.TotalQuantity != 4 || cart.TotalPrice != 40.0 {
		t.Fatalf("unexpected totals: qty=%d price=%.2f", cart.TotalQuantity, cart.TotalPrice)
	}
}

func TestCart_UpdateItemQuantity_ZeroRemoves(t *testing.T) {
	for _, qty := range []int{0, -1} {
		cart := NewCart("c1")
		cart.AddItem(testLine("p1", 10.0, 2))
		cart.AddItem(testLine("p2", 5.0, 1))

		cart.UpdateItemQuantity("p1", qty)

		if len(cart.Lines) != 1 || cart.Lines[0].ProductID != "p2" {
			t.Fatalf("quantity %d: expected p1 removed, lines=%+v", qty, cart.Lines)
		}
		if cart.TotalQuantity != 1 || cart.TotalPrice != 5.0 {
			t.Fatalf("quantity %d: unexpected totals qty=%d price=%.2f", qty, cart.TotalQuantity, cart.TotalPrice)
		}
	}
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(testLine("p1", 10.0, 2))
	cart.AddItem(testLine("p2", 5.0, 1))

	cart.Clear()

	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart after clear")
	}
	if cart.Lines == nil {
		t.Fatalf("expected non-nil lines slice after clear")
	}
	if cart.TotalQuantity != 0 || cart.TotalPrice != 0 {
		t.Fatalf("unexpected totals after clear: qty=%d price=%.2f", cart.TotalQuantity, cart.TotalPrice)
	}
}

func TestCart_TotalsAcrossLines(t *testing.T) {
	cart := NewCart("c1")
	cart.AddItem(testLine("p1", 19.99, 2))
	cart.AddItem(testLine("p2", 5.00, 3))

	if cart.TotalQuantity != 5 {
		t.Fatalf("expected total quantity 5, got %d", cart.TotalQuantity)
	}
	want := 19.99*2 + 5.00*3
	if cart.TotalPrice != want {
		t.Fatalf("expected total price %.2f, got %.2f", want, cart.TotalPrice)
	}
}
