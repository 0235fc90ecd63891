package cart

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petalia/models"

	"github.com/julienschmidt/httprouter"
)

// routed drives the handlers through a real router with the same URL
// patterns the server registers, so path parameter names stay honest.
func routed(svc *Service) *httprouter.Router {
	router := httprouter.New()
	router.GET("/api/cart", svc.GetCart)
	router.POST("/api/cart/items", svc.AddItem)
	router.PUT("/api/cart/items/:productid", svc.UpdateItem)
	router.DELETE("/api/cart/items/:productid", svc.RemoveItem)
	router.DELETE("/api/cart", svc.ClearCart)
	return router
}

func TestRemoveItemRouteRemovesLine(t *testing.T) {
	guests := newFakeGuestStore()
	guests.records["g1"] = []models.CartLineItem{
		{ProductID: "p1", Name: "Rose", Price: 4, Quantity: 2},
		{ProductID: "p2", Name: "Tulip", Price: 3, Quantity: 1},
	}
	router := routed(NewServiceWith(newFakeUserStore(), guests))

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/p1", nil)
	req.Header.Set(GuestCartHeader, "g1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := guests.records["g1"]
	if len(got) != 1 || got[0].ProductID != "p2" {
		t.Errorf("persisted cart after delete = %+v, want only p2", got)
	}
}

func TestUpdateItemRouteSetsQuantity(t *testing.T) {
	guests := newFakeGuestStore()
	guests.records["g1"] = []models.CartLineItem{
		{ProductID: "p1", Name: "Rose", Price: 4, Quantity: 2},
	}
	router := routed(NewServiceWith(newFakeUserStore(), guests))

	req := httptest.NewRequest(http.MethodPut, "/api/cart/items/p1", strings.NewReader(`{"quantity":5}`))
	req.Header.Set(GuestCartHeader, "g1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := guests.records["g1"]
	if len(got) != 1 || got[0].Quantity != 5 {
		t.Errorf("persisted cart after update = %+v, want p1 qty 5", got)
	}
}

func TestUpdateItemRouteZeroRemoves(t *testing.T) {
	guests := newFakeGuestStore()
	guests.records["g1"] = []models.CartLineItem{
		{ProductID: "p1", Name: "Rose", Price: 4, Quantity: 2},
	}
	router := routed(NewServiceWith(newFakeUserStore(), guests))

	req := httptest.NewRequest(http.MethodPut, "/api/cart/items/p1", strings.NewReader(`{"quantity":0}`))
	req.Header.Set(GuestCartHeader, "g1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := guests.records["g1"]; len(got) != 0 {
		t.Errorf("persisted cart after zero update = %+v, want empty", got)
	}
}
