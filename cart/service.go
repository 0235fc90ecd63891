package cart

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"petalia/db"
	"petalia/models"
	"petalia/rdx"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const guestCartTTL = 30 * 24 * time.Hour

// Owner identifies whose cart an operation targets: an authenticated user id
// or a guest cart token, never both.
type Owner struct {
	UserID     string
	GuestToken string
}

func (o Owner) IsGuest() bool { return o.UserID == "" }

// UserStore persists per-user cart records.
type UserStore interface {
	Load(ctx context.Context, userID string) ([]models.CartLineItem, error)
	Save(ctx context.Context, userID string, items []models.CartLineItem) error
}

// GuestStore persists guest carts under their token.
type GuestStore interface {
	Load(ctx context.Context, token string) ([]models.CartLineItem, error)
	Save(ctx context.Context, token string, items []models.CartLineItem) error
	Delete(ctx context.Context, token string) error
}

// Service owns cart reconciliation and persistence. Reads fail open: a load
// error yields an empty cart so shopping is never blocked. Writes are
// at-most-once durability: the updated item list is returned to the caller
// even when the persist fails (the failure is logged, nothing is rolled back),
// and concurrent writers resolve as last completed write wins.
type Service struct {
	users  UserStore
	guests GuestStore
}

func NewService() *Service {
	return &Service{
		users:  &mongoUserStore{coll: db.CartsCollection},
		guests: &redisGuestStore{conn: rdx.Conn},
	}
}

// NewServiceWith wires explicit stores.
func NewServiceWith(users UserStore, guests GuestStore) *Service {
	return &Service{users: users, guests: guests}
}

func (s *Service) load(ctx context.Context, owner Owner) []models.CartLineItem {
	var items []models.CartLineItem
	var err error
	if owner.IsGuest() {
		items, err = s.guests.Load(ctx, owner.GuestToken)
	} else {
		items, err = s.users.Load(ctx, owner.UserID)
	}
	if err != nil {
		log.Println("cart load error (treating as empty):", err)
		return []models.CartLineItem{}
	}
	if items == nil {
		items = []models.CartLineItem{}
	}
	return items
}

func (s *Service) persist(ctx context.Context, owner Owner, items []models.CartLineItem) {
	var err error
	if owner.IsGuest() {
		err = s.guests.Save(ctx, owner.GuestToken, items)
	} else {
		err = s.users.Save(ctx, owner.UserID, items)
	}
	if err != nil {
		log.Println("cart persist error:", err)
	}
}

// Get returns the owner's current items.
func (s *Service) Get(ctx context.Context, owner Owner) []models.CartLineItem {
	return s.load(ctx, owner)
}

// Add appends a line item or bumps the quantity of an existing one.
func (s *Service) Add(ctx context.Context, owner Owner, stub models.CartLineItem, delta int) []models.CartLineItem {
	if delta < 1 {
		delta = 1
	}
	items := upsertItem(s.load(ctx, owner), stub, delta)
	s.persist(ctx, owner, items)
	return items
}

// UpdateQuantity sets a line's quantity directly; qty <= 0 removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, owner Owner, productID string, quantity int) []models.CartLineItem {
	items := setQuantity(s.load(ctx, owner), productID, quantity)
	s.persist(ctx, owner, items)
	return items
}

// Remove deletes a line item, no-op if absent.
func (s *Service) Remove(ctx context.Context, owner Owner, productID string) []models.CartLineItem {
	items := removeItem(s.load(ctx, owner), productID)
	s.persist(ctx, owner, items)
	return items
}

// Clear empties the cart and persists the empty list.
func (s *Service) Clear(ctx context.Context, owner Owner) []models.CartLineItem {
	items := []models.CartLineItem{}
	s.persist(ctx, owner, items)
	return items
}

// MergeOnLogin folds the guest cart identified by token into the user's
// persisted record, then deletes the guest entry. Runs once per login; callers
// invoke it only on the identity transition. The merge input is the freshly
// loaded user record, not any in-memory copy.
func (s *Service) MergeOnLogin(ctx context.Context, userID, guestToken string) []models.CartLineItem {
	userItems := s.load(ctx, Owner{UserID: userID})
	if guestToken == "" {
		return userItems
	}

	guestItems, err := s.guests.Load(ctx, guestToken)
	if err != nil {
		log.Println("guest cart load error (skipping merge):", err)
		return userItems
	}
	if len(guestItems) == 0 {
		return userItems
	}

	merged := Merge(userItems, guestItems)
	if err := s.users.Save(ctx, userID, merged); err != nil {
		log.Println("cart merge persist error:", err)
	}
	if err := s.guests.Delete(ctx, guestToken); err != nil {
		log.Println("guest cart delete error:", err)
	}
	return merged
}

// --- Mongo-backed per-user records ---

type mongoUserStore struct {
	coll *mongo.Collection
}

func (m *mongoUserStore) Load(ctx context.Context, userID string) ([]models.CartLineItem, error) {
	var rec models.CartRecord
	err := m.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		// First sight of this identity: initialize an empty record.
		rec = models.CartRecord{UserID: userID, Items: []models.CartLineItem{}, UpdatedAt: time.Now()}
		if _, insErr := m.coll.InsertOne(ctx, rec); insErr != nil {
			log.Println("cart record init error:", insErr)
		}
		return []models.CartLineItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Items, nil
}

func (m *mongoUserStore) Save(ctx context.Context, userID string, items []models.CartLineItem) error {
	rec := models.CartRecord{UserID: userID, Items: items, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	_, err := m.coll.ReplaceOne(ctx, bson.M{"userId": userID}, rec, opts)
	return err
}

// --- Redis-backed guest carts ---

func guestKey(token string) string { return "guestcart:" + token }

type redisGuestStore struct {
	conn *redis.Client
}

func (g *redisGuestStore) Load(ctx context.Context, token string) ([]models.CartLineItem, error) {
	raw, err := g.conn.Get(ctx, guestKey(token)).Result()
	if err == redis.Nil {
		return []models.CartLineItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartLineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *redisGuestStore) Save(ctx context.Context, token string, items []models.CartLineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return g.conn.Set(ctx, guestKey(token), raw, guestCartTTL).Err()
}

func (g *redisGuestStore) Delete(ctx context.Context, token string) error {
	return g.conn.Del(ctx, guestKey(token)).Err()
}
