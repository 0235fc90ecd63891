package models

import "time"

// Order statuses
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderReady      = "ready"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment statuses
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// OrderItem is a price/name snapshot taken at order time, never re-derived
// from current Product data.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

type Order struct {
	OrderID       string          `json:"orderId" bson:"orderId"`
	UserID        string          `json:"userId" bson:"userId"`
	Items         []OrderItem     `json:"items" bson:"items"`
	Bouquets      []CustomBouquet `json:"bouquets,omitempty" bson:"bouquets,omitempty"`
	Total         float64         `json:"total" bson:"total"`
	Status        string          `json:"status" bson:"status"`
	Address       string          `json:"address" bson:"address"`
	DeliveryDate  *time.Time      `json:"deliveryDate,omitempty" bson:"deliveryDate,omitempty"`
	PaymentMethod string          `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus" bson:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt" bson:"createdAt"`
}
