package models

import "time"

// Flower is a single stem type available in the bouquet builder.
type Flower struct {
	FlowerID string  `json:"flowerId" bson:"flowerId"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Image    string  `json:"image,omitempty" bson:"image,omitempty"`
	InStock  bool    `json:"inStock" bson:"inStock"`
}

// Wrapping is a wrapping style for a custom bouquet.
type Wrapping struct {
	WrappingID string  `json:"wrappingId" bson:"wrappingId"`
	Name       string  `json:"name" bson:"name"`
	Price      float64 `json:"price" bson:"price"`
	Image      string  `json:"image,omitempty" bson:"image,omitempty"`
}

// Addition is an optional extra (card, chocolates, vase, ...).
type Addition struct {
	AdditionID string  `json:"additionId" bson:"additionId"`
	Name       string  `json:"name" bson:"name"`
	Price      float64 `json:"price" bson:"price"`
	Image      string  `json:"image,omitempty" bson:"image,omitempty"`
}

// BouquetSelection is one (id, quantity) pair inside a custom bouquet.
type BouquetSelection struct {
	ID       string `json:"id" bson:"id"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Bouquet statuses
const (
	BouquetDraft     = "draft"
	BouquetOrdered   = "ordered"
	BouquetCompleted = "completed"
)

// CustomBouquet is a user-composed bundle priced as the sum of its parts.
type CustomBouquet struct {
	BouquetID  string             `json:"bouquetId" bson:"bouquetId"`
	UserID     string             `json:"userId" bson:"userId"`
	Flowers    []BouquetSelection `json:"flowers" bson:"flowers"`
	Additions  []BouquetSelection `json:"additions,omitempty" bson:"additions,omitempty"`
	WrappingID string             `json:"wrappingId" bson:"wrappingId"`
	Message    string             `json:"message,omitempty" bson:"message,omitempty"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"`
	Status     string             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
