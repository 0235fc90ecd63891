package bouquets

import (
	"testing"

	"petalia/models"
)

func TestTotalPriceSumsParts(t *testing.T) {
	flowers := []PricedSelection{{ID: "rose", Price: 35, Quantity: 2}}
	got := TotalPrice(flowers, nil, 50)
	if got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}
}

func TestTotalPriceWithAdditions(t *testing.T) {
	flowers := []PricedSelection{
		{ID: "rose", Price: 35, Quantity: 3},
		{ID: "lily", Price: 20, Quantity: 2},
	}
	additions := []PricedSelection{{ID: "card", Price: 5, Quantity: 1}}
	got := TotalPrice(flowers, additions, 15)
	// 105 + 40 + 5 + 15
	if got != 165 {
		t.Fatalf("expected 165, got %v", got)
	}
}

func TestTotalPriceTreatsZeroQuantityAsOne(t *testing.T) {
	flowers := []PricedSelection{{ID: "rose", Price: 35, Quantity: 0}}
	if got := TotalPrice(flowers, nil, 0); got != 35 {
		t.Fatalf("expected 35, got %v", got)
	}
}

func TestFlattenToLineItem(t *testing.T) {
	bouquet := models.CustomBouquet{
		BouquetID:  "b1",
		UserID:     "u1",
		TotalPrice: 120,
		Status:     models.BouquetDraft,
	}

	item := FlattenToLineItem(bouquet, "wrap.jpg")

	if item.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", item.Quantity)
	}
	if item.Price != 120 {
		t.Fatalf("expected aggregate price 120, got %v", item.Price)
	}
	if item.ProductID == "" || item.ProductID == bouquet.BouquetID {
		t.Fatalf("expected a generated synthetic id, got %q", item.ProductID)
	}
	if item.Image != "wrap.jpg" {
		t.Fatalf("expected representative image, got %q", item.Image)
	}
}
