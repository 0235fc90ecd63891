package auth

import (
	"petalia/cart"
)

// Handler bundles the auth endpoints with the cart service so a successful
// login can fold the guest cart into the user's persisted one.
type Handler struct {
	carts *cart.Service
}

func New(carts *cart.Service) *Handler {
	return &Handler{carts: carts}
}
