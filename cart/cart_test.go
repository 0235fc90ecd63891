package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"petalia/models"
)

// in-memory stores so tests run without Mongo or Redis

type fakeUserStore struct {
	records map[string][]models.CartLineItem
	loadErr error
	saveErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{records: make(map[string][]models.CartLineItem)}
}

func (f *fakeUserStore) Load(_ context.Context, userID string) ([]models.CartLineItem, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.records[userID], nil
}

func (f *fakeUserStore) Save(_ context.Context, userID string, items []models.CartLineItem) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[userID] = items
	return nil
}

type fakeGuestStore struct {
	records map[string][]models.CartLineItem
}

func newFakeGuestStore() *fakeGuestStore {
	return &fakeGuestStore{records: make(map[string][]models.CartLineItem)}
}

func (f *fakeGuestStore) Load(_ context.Context, token string) ([]models.CartLineItem, error) {
	return f.records[token], nil
}

func (f *fakeGuestStore) Save(_ context.Context, token string, items []models.CartLineItem) error {
	f.records[token] = items
	return nil
}

func (f *fakeGuestStore) Delete(_ context.Context, token string) error {
	delete(f.records, token)
	return nil
}

func line(id string, price float64, qty int) models.CartLineItem {
	return models.CartLineItem{ProductID: id, Name: "item " + id, Price: price, Quantity: qty}
}

func quantities(items []models.CartLineItem) map[string]int {
	out := make(map[string]int)
	for _, it := range items {
		out[it.ProductID] = it.Quantity
	}
	return out
}

func TestAddAccumulatesQuantity(t *testing.T) {
	svc := NewServiceWith(newFakeUserStore(), newFakeGuestStore())
	owner := Owner{UserID: "u1"}
	ctx := context.Background()

	svc.Add(ctx, owner, line("p1", 10, 0), 2)
	svc.Add(ctx, owner, line("p1", 10, 0), 3)
	items := svc.Add(ctx, owner, line("p2", 5, 0), 1)

	got := quantities(items)
	if got["p1"] != 5 || got["p2"] != 1 {
		t.Fatalf("unexpected quantities: %v", got)
	}
}

func TestAddDefaultsToOne(t *testing.T) {
	svc := NewServiceWith(newFakeUserStore(), newFakeGuestStore())
	items := svc.Add(context.Background(), Owner{UserID: "u1"}, line("p1", 10, 0), 0)
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected single item with qty 1, got %v", items)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	svc := NewServiceWith(newFakeUserStore(), newFakeGuestStore())
	owner := Owner{UserID: "u1"}
	ctx := context.Background()

	svc.Add(ctx, owner, line("p1", 10, 0), 2)
	items := svc.Remove(ctx, owner, "missing")

	if got := quantities(items); got["p1"] != 2 || len(items) != 1 {
		t.Fatalf("remove of absent id changed cart: %v", items)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	svc := NewServiceWith(newFakeUserStore(), newFakeGuestStore())
	owner := Owner{UserID: "u1"}
	ctx := context.Background()

	svc.Add(ctx, owner, line("p1", 10, 0), 2)
	svc.Add(ctx, owner, line("p2", 4, 0), 1)

	items := svc.UpdateQuantity(ctx, owner, "p1", 0)
	if _, present := quantities(items)["p1"]; present {
		t.Fatalf("qty 0 should remove the line: %v", items)
	}

	items = svc.UpdateQuantity(ctx, owner, "p2", -3)
	if len(items) != 0 {
		t.Fatalf("negative qty should remove the line: %v", items)
	}
}

func TestUpdateQuantitySetsDirectly(t *testing.T) {
	svc := NewServiceWith(newFakeUserStore(), newFakeGuestStore())
	owner := Owner{UserID: "u1"}
	ctx := context.Background()

	svc.Add(ctx, owner, line("p1", 10, 0), 2)
	items := svc.UpdateQuantity(ctx, owner, "p1", 7)
	if items[0].Quantity != 7 {
		t.Fatalf("expected qty 7, got %d", items[0].Quantity)
	}

	// same value again is externally a no-op
	again := svc.UpdateQuantity(ctx, owner, "p1", 7)
	if len(again) != 1 || again[0].Quantity != 7 {
		t.Fatalf("idempotent update changed cart: %v", again)
	}

	// absent id is a no-op
	same := svc.UpdateQuantity(ctx, owner, "nope", 3)
	if len(same) != 1 || same[0].Quantity != 7 {
		t.Fatalf("update of absent id changed cart: %v", same)
	}
}

func TestTotalAndItemCount(t *testing.T) {
	items := []models.CartLineItem{
		line("p1", 10, 2),
		line("p2", 20, 3),
	}
	if got := Total(items); got != 80 {
		t.Fatalf("expected total 80, got %v", got)
	}
	if got := ItemCount(items); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
}

func TestMergeSumsBothSides(t *testing.T) {
	user := []models.CartLineItem{line("A", 10, 2), line("B", 5, 1)}
	guest := []models.CartLineItem{line("A", 10, 3), line("C", 7, 5)}

	merged := Merge(user, guest)
	got := quantities(merged)
	want := map[string]int{"A": 5, "B": 1, "C": 5}
	for id, q := range want {
		if got[id] != q {
			t.Fatalf("merged[%s] = %d, want %d (all: %v)", id, got[id], q, got)
		}
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(merged))
	}
}

func TestMergeOnLoginClearsGuestCart(t *testing.T) {
	users := newFakeUserStore()
	guests := newFakeGuestStore()
	svc := NewServiceWith(users, guests)
	ctx := context.Background()

	users.records["u1"] = []models.CartLineItem{line("A", 10, 2), line("B", 5, 1)}
	guests.records["g-token"] = []models.CartLineItem{line("A", 10, 3), line("C", 7, 5)}

	merged := svc.MergeOnLogin(ctx, "u1", "g-token")

	got := quantities(merged)
	if got["A"] != 5 || got["B"] != 1 || got["C"] != 5 {
		t.Fatalf("bad merge result: %v", got)
	}
	if _, ok := guests.records["g-token"]; ok {
		t.Fatal("guest cart should be deleted after merge")
	}
	if persisted := quantities(users.records["u1"]); persisted["A"] != 5 || persisted["C"] != 5 {
		t.Fatalf("merged cart not persisted to user record: %v", persisted)
	}
}

func TestGuestAddThenLogin(t *testing.T) {
	users := newFakeUserStore()
	guests := newFakeGuestStore()
	svc := NewServiceWith(users, guests)
	ctx := context.Background()

	svc.Add(ctx, Owner{GuestToken: "g-token"}, line("P1", 12, 0), 1)

	merged := svc.MergeOnLogin(ctx, "u1", "g-token")

	if got := quantities(merged); got["P1"] != 1 {
		t.Fatalf("expected P1 qty 1 after login, got %v", got)
	}
	if _, ok := guests.records["g-token"]; ok {
		t.Fatal("guest storage should be cleared")
	}
	if got := quantities(users.records["u1"]); got["P1"] != 1 {
		t.Fatalf("user record should contain P1 qty 1, got %v", got)
	}
}

func TestMergeOnLoginWithEmptyGuestLeavesUserCart(t *testing.T) {
	users := newFakeUserStore()
	guests := newFakeGuestStore()
	svc := NewServiceWith(users, guests)

	users.records["u1"] = []models.CartLineItem{line("A", 10, 2)}
	merged := svc.MergeOnLogin(context.Background(), "u1", "g-token")

	if got := quantities(merged); got["A"] != 2 || len(merged) != 1 {
		t.Fatalf("empty guest merge changed user cart: %v", merged)
	}
}

func TestLoadFailureYieldsEmptyCart(t *testing.T) {
	users := newFakeUserStore()
	users.loadErr = errors.New("backend down")
	svc := NewServiceWith(users, newFakeGuestStore())

	items := svc.Get(context.Background(), Owner{UserID: "u1"})
	if len(items) != 0 {
		t.Fatalf("read failure must fail open to an empty cart, got %v", items)
	}
}

func TestPersistFailureKeepsOptimisticResult(t *testing.T) {
	users := newFakeUserStore()
	users.saveErr = errors.New("backend down")
	svc := NewServiceWith(users, newFakeGuestStore())

	items := svc.Add(context.Background(), Owner{UserID: "u1"}, line("p1", 10, 0), 2)
	if got := quantities(items); got["p1"] != 2 {
		t.Fatalf("persist failure must not roll back the returned items: %v", items)
	}
}

func TestClearCart(t *testing.T) {
	users := newFakeUserStore()
	svc := NewServiceWith(users, newFakeGuestStore())
	owner := Owner{UserID: "u1"}
	ctx := context.Background()

	svc.Add(ctx, owner, line("p1", 10, 0), 2)
	items := svc.Clear(ctx, owner)
	if len(items) != 0 || len(users.records["u1"]) != 0 {
		t.Fatalf("clear should persist an empty list, got %v / %v", items, users.records["u1"])
	}
}

func TestItemsRoundTrip(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "p1", Name: "Red roses", Price: 34.5, Image: "roses.jpg", Quantity: 2},
		{ProductID: "p2", Name: "Tulip mix", Price: 19.9, Quantity: 3},
	}

	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back []models.CartLineItem
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(back) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(back))
	}
	for i := range items {
		if back[i].ProductID != items[i].ProductID || back[i].Quantity != items[i].Quantity {
			t.Fatalf("round trip mismatch at %d: %+v vs %+v", i, back[i], items[i])
		}
	}
}

func TestNetQuantityOverOperationSequence(t *testing.T) {
	svc := NewServiceWith(newFakeUserStore(), newFakeGuestStore())
	owner := Owner{UserID: "u1"}
	ctx := context.Background()

	svc.Add(ctx, owner, line("p1", 10, 0), 3)
	svc.Add(ctx, owner, line("p1", 10, 0), 2)
	svc.UpdateQuantity(ctx, owner, "p1", 4)
	svc.Remove(ctx, owner, "p1")
	items := svc.Remove(ctx, owner, "p1") // removal below zero yields absence

	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %v", items)
	}
}
