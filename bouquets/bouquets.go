package bouquets

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"petalia/cart"
	"petalia/db"
	"petalia/globals"
	"petalia/models"
	"petalia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handler serves the bouquet builder: composing a bouquet prices it from its
// parts, adding it to the cart flattens it to one synthetic line item.
type Handler struct {
	carts *cart.Service
}

func New(carts *cart.Service) *Handler {
	return &Handler{carts: carts}
}

func resolvePrices(ctx context.Context, coll *mongo.Collection, keyField string, sels []models.BouquetSelection) ([]PricedSelection, error) {
	out := make([]PricedSelection, 0, len(sels))
	for _, sel := range sels {
		var doc struct {
			Price float64 `bson:"price"`
		}
		err := coll.FindOne(ctx, bson.M{keyField: sel.ID}).Decode(&doc)
		if err != nil {
			return nil, err
		}
		out = append(out, PricedSelection{ID: sel.ID, Price: doc.Price, Quantity: sel.Quantity})
	}
	return out, nil
}

// CreateBouquet composes and prices a bouquet for the authenticated user.
func (h *Handler) CreateBouquet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Flowers    []models.BouquetSelection `json:"flowers"`
		Additions  []models.BouquetSelection `json:"additions"`
		WrappingID string                    `json:"wrappingId"`
		Message    string                    `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("CreateBouquet decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if len(input.Flowers) == 0 || input.WrappingID == "" {
		http.Error(w, "A bouquet needs flowers and a wrapping", http.StatusBadRequest)
		return
	}

	flowers, err := resolvePrices(ctx, db.FlowersCollection, "flowerId", input.Flowers)
	if err != nil {
		http.Error(w, "Unknown flower in selection", http.StatusBadRequest)
		return
	}
	additions, err := resolvePrices(ctx, db.AdditionsCollection, "additionId", input.Additions)
	if err != nil {
		http.Error(w, "Unknown addition in selection", http.StatusBadRequest)
		return
	}

	var wrapping models.Wrapping
	if err := db.WrappingsCollection.FindOne(ctx, bson.M{"wrappingId": input.WrappingID}).Decode(&wrapping); err != nil {
		http.Error(w, "Unknown wrapping style", http.StatusBadRequest)
		return
	}

	bouquet := models.CustomBouquet{
		BouquetID:  utils.GetUUID(),
		UserID:     userID,
		Flowers:    input.Flowers,
		Additions:  input.Additions,
		WrappingID: input.WrappingID,
		Message:    input.Message,
		TotalPrice: TotalPrice(flowers, additions, wrapping.Price),
		Status:     models.BouquetDraft,
		CreatedAt:  time.Now(),
	}

	if _, err := db.BouquetsCollection.InsertOne(ctx, bouquet); err != nil {
		log.Println("CreateBouquet InsertOne error:", err)
		http.Error(w, "Failed to save bouquet", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, bouquet)
}

// GetMyBouquets lists the authenticated user's bouquets, newest first.
func (h *Handler) GetMyBouquets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	bouquets, err := utils.FindAndDecode[models.CustomBouquet](ctx, db.BouquetsCollection, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("GetMyBouquets Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bouquets")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "bouquets": bouquets})
}

// AddToCart flattens a composed bouquet into a single cart line item. The
// line keeps the aggregate price and a representative image only; the bouquet
// document itself is left untouched.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var bouquet models.CustomBouquet
	err := db.BouquetsCollection.FindOne(ctx, bson.M{"bouquetId": ps.ByName("bouquetid")}).Decode(&bouquet)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Bouquet not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if bouquet.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// Representative image: the wrapping's picture when it has one.
	var wrapping models.Wrapping
	_ = db.WrappingsCollection.FindOne(ctx, bson.M{"wrappingId": bouquet.WrappingID}).Decode(&wrapping)

	item := FlattenToLineItem(bouquet, wrapping.Image)
	items := h.carts.Add(ctx, cart.Owner{UserID: userID}, item, 1)

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"items":     items,
		"total":     cart.Total(items),
		"itemCount": cart.ItemCount(items),
	})
}
