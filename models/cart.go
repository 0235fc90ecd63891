package models

import "time"

// CartLineItem is a single product-and-quantity entry in a cart. Name, price
// and image are copied at add time and never re-fetched from the catalog.
type CartLineItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// CartRecord is the per-user persisted cart document, one per user id.
type CartRecord struct {
	UserID    string         `json:"userId" bson:"userId"`
	Items     []CartLineItem `json:"items" bson:"items"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}
