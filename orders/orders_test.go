package orders

import (
	"testing"

	"greenvale/models"
)

func TestValidateOrderPayload(t *testing.T) {
	valid := orderPayload{
		TableNumber: "15",
		Items: []models.OrderItem{
			{Name: "Coffee", Price: 3.5, Quantity: 2},
			{Name: "Cake", Price: 5, Quantity: 1},
		},
		TotalAmount: 12,
	}
	if err := validateOrderPayload(valid); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}

	missingTable := valid
	missingTable.TableNumber = ""
	if err := validateOrderPayload(missingTable); err == nil {
		t.Fatal("expected error for missing tableNumber")
	}

	noItems := valid
	noItems.Items = nil
	if err := validateOrderPayload(noItems); err == nil {
		t.Fatal("expected error for empty items")
	}

	badQuantity := valid
	badQuantity.Items = []models.OrderItem{{Name: "Coffee", Price: 3.5, Quantity: 0}}
	if err := validateOrderPayload(badQuantity); err == nil {
		t.Fatal("expected error for zero quantity")
	}
}

func TestOrderNotificationMessage(t *testing.T) {
	got := orderNotificationMessage("15", 2)
	want := "New order from table 15 (2 items)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
