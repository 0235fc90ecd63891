package bouquets

import (
	"petalia/models"
	"petalia/utils"
)

// PricedSelection is a bouquet selection with its unit price resolved.
type PricedSelection struct {
	ID       string
	Price    float64
	Quantity int
}

// TotalPrice sums the bouquet's parts: flowers plus additions plus the
// wrapping. Quantities below one count as one.
func TotalPrice(flowers, additions []PricedSelection, wrappingPrice float64) float64 {
	total := wrappingPrice
	for _, f := range flowers {
		total += f.Price * float64(qtyOrOne(f.Quantity))
	}
	for _, a := range additions {
		total += a.Price * float64(qtyOrOne(a.Quantity))
	}
	return total
}

func qtyOrOne(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// FlattenToLineItem turns a composed bouquet into a single synthetic cart
// line: generated id, aggregate price, quantity one, a representative image.
// The line keeps no link back to the bouquet's constituent parts.
func FlattenToLineItem(b models.CustomBouquet, image string) models.CartLineItem {
	return models.CartLineItem{
		ProductID: "bouquet-" + utils.GetUUID(),
		Name:      "Custom bouquet",
		Price:     b.TotalPrice,
		Image:     image,
		Quantity:  1,
	}
}
