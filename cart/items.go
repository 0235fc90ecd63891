package cart

import "petalia/models"

// Pure line-item arithmetic. Every function returns a new slice and leaves its
// input untouched; persistence is the Service's job.

// upsertItem adds delta to an existing line or appends a new one. A line item
// never drops to zero here: non-positive results are removed.
func upsertItem(items []models.CartLineItem, stub models.CartLineItem, delta int) []models.CartLineItem {
	out := make([]models.CartLineItem, 0, len(items)+1)
	found := false
	for _, it := range items {
		if it.ProductID == stub.ProductID {
			found = true
			it.Quantity += delta
			if it.Quantity <= 0 {
				continue
			}
		}
		out = append(out, it)
	}
	if !found && delta > 0 {
		stub.Quantity = delta
		out = append(out, stub)
	}
	return out
}

// setQuantity sets an item's quantity directly. Zero or negative removes the
// line; an absent product id is a no-op.
func setQuantity(items []models.CartLineItem, productID string, quantity int) []models.CartLineItem {
	out := make([]models.CartLineItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == productID {
			if quantity <= 0 {
				continue
			}
			it.Quantity = quantity
		}
		out = append(out, it)
	}
	return out
}

// removeItem deletes the line with the given product id, no-op if absent.
func removeItem(items []models.CartLineItem, productID string) []models.CartLineItem {
	out := make([]models.CartLineItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == productID {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Merge combines a user's persisted items with a guest cart. Quantities are
// summed for product ids present on both sides; ids present on only one side
// are kept. User items keep their position, guest-only items append in guest
// order. Denormalized name/price come from the user side when both have the
// line (the user copy is the older snapshot).
func Merge(user, guest []models.CartLineItem) []models.CartLineItem {
	merged := make([]models.CartLineItem, 0, len(user)+len(guest))
	guestQty := make(map[string]int, len(guest))
	for _, g := range guest {
		guestQty[g.ProductID] = g.Quantity
	}

	seen := make(map[string]bool, len(user))
	for _, u := range user {
		if q, ok := guestQty[u.ProductID]; ok {
			u.Quantity += q
		}
		seen[u.ProductID] = true
		merged = append(merged, u)
	}
	for _, g := range guest {
		if !seen[g.ProductID] {
			merged = append(merged, g)
		}
	}
	return merged
}

// Total is the sum of price times quantity over all line items.
func Total(items []models.CartLineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all line items.
func ItemCount(items []models.CartLineItem) int {
	var count int
	for _, it := range items {
		count += it.Quantity
	}
	return count
}
