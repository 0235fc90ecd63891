package models

import "time"

type Product struct {
	ProductID   string    `json:"productId" bson:"productId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	CategoryID  string    `json:"categoryId" bson:"categoryId"`
	InStock     bool      `json:"inStock" bson:"inStock"`
	Featured    bool      `json:"featured,omitempty" bson:"featured,omitempty"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type Category struct {
	CategoryID  string    `json:"categoryId" bson:"categoryId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
