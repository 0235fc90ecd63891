package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"petalia/globals"
	"petalia/models"
	"petalia/utils"

	"github.com/julienschmidt/httprouter"
)

// GuestCartHeader carries the guest cart token for unauthenticated sessions.
const GuestCartHeader = "X-Guest-Cart"

func ownerFromRequest(r *http.Request) (Owner, bool) {
	if userID, ok := r.Context().Value(globals.UserIDKey).(string); ok && userID != "" {
		return Owner{UserID: userID}, true
	}
	if token := r.Header.Get(GuestCartHeader); token != "" {
		return Owner{GuestToken: token}, true
	}
	return Owner{}, false
}

func cartView(items []models.CartLineItem) map[string]any {
	return map[string]any{
		"items":     items,
		"total":     Total(items),
		"itemCount": ItemCount(items),
	}
}

// GetCart returns the current cart with derived total and item count.
func (s *Service) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	owner, ok := ownerFromRequest(r)
	if !ok {
		// No identity and no guest token: an empty cart, not an error.
		utils.RespondWithJSON(w, http.StatusOK, cartView([]models.CartLineItem{}))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cartView(s.Get(ctx, owner)))
}

// AddItem increments quantity if the product is already in the cart, or
// appends a new line item.
func (s *Service) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string  `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Image     string  `json:"image"`
		Quantity  int     `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if payload.ProductID == "" || payload.Name == "" || payload.Price < 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	owner, ok := ownerFromRequest(r)
	if !ok {
		http.Error(w, "Missing guest cart token", http.StatusBadRequest)
		return
	}

	stub := models.CartLineItem{
		ProductID: payload.ProductID,
		Name:      payload.Name,
		Price:     payload.Price,
		Image:     payload.Image,
	}
	items := s.Add(ctx, owner, stub, payload.Quantity)
	utils.RespondWithJSON(w, http.StatusCreated, cartView(items))
}

// UpdateItem sets a line's quantity; zero or below removes it.
func (s *Service) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	owner, ok := ownerFromRequest(r)
	if !ok {
		http.Error(w, "Missing guest cart token", http.StatusBadRequest)
		return
	}

	items := s.UpdateQuantity(ctx, owner, ps.ByName("productid"), payload.Quantity)
	utils.RespondWithJSON(w, http.StatusOK, cartView(items))
}

// RemoveItem deletes a line item, no-op if absent.
func (s *Service) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	owner, ok := ownerFromRequest(r)
	if !ok {
		http.Error(w, "Missing guest cart token", http.StatusBadRequest)
		return
	}

	items := s.Remove(ctx, owner, ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, cartView(items))
}

// ClearCart empties the cart.
func (s *Service) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	owner, ok := ownerFromRequest(r)
	if !ok {
		http.Error(w, "Missing guest cart token", http.StatusBadRequest)
		return
	}

	items := s.Clear(ctx, owner)
	utils.RespondWithJSON(w, http.StatusOK, cartView(items))
}
