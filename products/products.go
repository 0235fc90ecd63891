package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"petalia/db"
	"petalia/globals"
	"petalia/models"
	"petalia/mq"
	"petalia/rdx"
	"petalia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	listCacheTTL     = 2 * time.Hour
	listCacheVersion = "products:list:version"
)

// listCacheKey carries a version stamp plus the raw query, so each filter
// combination caches separately and a version bump orphans every entry at
// once. Stale versions age out via TTL.
func listCacheKey(ctx context.Context, r *http.Request) string {
	version, err := rdx.Conn.Get(ctx, listCacheVersion).Result()
	if err != nil {
		version = "0"
	}
	return "products:list:v" + version + ":" + r.URL.RawQuery
}

func invalidateListCache(ctx context.Context) {
	if err := rdx.Conn.Incr(ctx, listCacheVersion).Err(); err != nil {
		log.Println("product cache invalidate error:", err)
	}
}

// GetProducts lists products with optional filters: ?category=, ?instock=,
// ?featured=, ?tag=, ?minprice=, ?maxprice=, ?search=, ?sort=.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	redisKey := listCacheKey(ctx, r)
	if val, err := rdx.Conn.Get(ctx, redisKey).Result(); err == nil && val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "products": cached})
			return
		}
	}

	q := r.URL.Query()
	filter := bson.M{}
	if cat := q.Get("category"); cat != "" {
		filter["categoryId"] = cat
	}
	if q.Get("instock") == "true" {
		filter["inStock"] = true
	}
	if q.Get("featured") == "true" {
		filter["featured"] = true
	}
	if tag := q.Get("tag"); tag != "" {
		filter["tags"] = tag
	}
	price := bson.M{}
	if min, err := strconv.ParseFloat(q.Get("minprice"), 64); err == nil {
		price["$gte"] = min
	}
	if max, err := strconv.ParseFloat(q.Get("maxprice"), 64); err == nil {
		price["$lte"] = max
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	if search := q.Get("search"); search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	sort := utils.ParseSort(q.Get("sort"), bson.D{{Key: "createdAt", Value: -1}}, nil)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductsCollection, filter, opts)
	if err != nil {
		log.Println("GetProducts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	if jsonBytes, err := json.Marshal(products); err == nil {
		_ = rdx.Conn.Set(ctx, redisKey, jsonBytes, listCacheTTL).Err()
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "products": products})
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"productId": ps.ByName("productid")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("GetProduct FindOne error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Println("CreateProduct decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if product.Name == "" || product.Price < 0 || product.CategoryID == "" {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	product.ProductID = utils.GetUUID()
	product.CreatedAt = time.Now()

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	invalidateListCache(ctx)
	go mq.Emit(globals.Ctx, "product-created", mq.Event{EntityType: "product", EntityID: product.ProductID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	delete(updates, "productId")
	delete(updates, "createdAt")

	res, err := db.ProductsCollection.UpdateOne(ctx, bson.M{"productId": productID}, bson.M{"$set": updates})
	if err != nil {
		log.Println("UpdateProduct UpdateOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	invalidateListCache(ctx)
	go mq.Emit(globals.Ctx, "product-updated", mq.Event{EntityType: "product", EntityID: productID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")
	res, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"productId": productID})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	invalidateListCache(ctx)
	go mq.Emit(globals.Ctx, "product-deleted", mq.Event{EntityType: "product", EntityID: productID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
