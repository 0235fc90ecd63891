package orders

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
	"petalia/mq"
	"petalia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handler creates orders from the current cart. Line items are price/name
// snapshots taken at order time and never re-derived from catalog data.
type Handler struct {
	carts *cart.Service
}

func New(carts *cart.Service) *Handler {
	return &Handler{carts: carts}
}

var validStatus = map[string]bool{
	models.OrderPending:    true,
	models.OrderProcessing: true,
	models.OrderReady:      true,
	models.OrderShipped:    true,
	models.OrderDelivered:  true,
	models.OrderCancelled:  true,
}

var validPaymentStatus = map[string]bool{
	models.PaymentPending: true,
	models.PaymentPaid:    true,
	models.PaymentFailed:  true,
}

// PlaceOrder snapshots the user's cart into an order and clears the cart.
// Payment stays a stub: the order starts with payment status pending.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Address       string     `json:"address"`
		DeliveryDate  *time.Time `json:"deliveryDate"`
		PaymentMethod string     `json:"paymentMethod"`
		BouquetIDs    []string   `json:"bouquetIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	if input.Address == "" {
		http.Error(w, "Delivery address is required", http.StatusBadRequest)
		return
	}

	owner := cart.Owner{UserID: userID}
	items := h.carts.Get(ctx, owner)
	if len(items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	snapshots := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		snapshots = append(snapshots, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	order := models.Order{
		OrderID:       utils.GetUUID(),
		UserID:        userID,
		Items:         snapshots,
		Total:         cart.Total(items),
		Status:        models.OrderPending,
		Address:       input.Address,
		DeliveryDate:  input.DeliveryDate,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now(),
	}

	// Embed any bouquets the order was built from and mark them ordered.
	for _, bid := range input.BouquetIDs {
		var bouquet models.CustomBouquet
		err := db.BouquetsCollection.FindOne(ctx, bson.M{"bouquetId": bid, "userId": userID}).Decode(&bouquet)
		if err != nil {
			continue
		}
		bouquet.Status = models.BouquetOrdered
		order.Bouquets = append(order.Bouquets, bouquet)
		_, _ = db.BouquetsCollection.UpdateOne(ctx, bson.M{"bouquetId": bid},
			bson.M{"$set": bson.M{"status": models.BouquetOrdered}})
	}

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		log.Println("PlaceOrder InsertOne error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	h.carts.Clear(ctx, owner)

	go mq.Emit(globals.Ctx, "order-created", mq.Event{EntityType: "order", EntityID: order.OrderID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetMyOrders lists the authenticated user's orders, newest first.
func (h *Handler) GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	orders, err := utils.FindAndDecode[models.Order](ctx, db.OrdersCollection, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("GetMyOrders Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "orders": orders})
}

// GetOrder returns one order; customers only see their own.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	roles, _ := r.Context().Value(globals.RoleKey).([]string)

	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": ps.ByName("orderid")}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if order.UserID != userID && !utils.HasRole(roles, "admin") {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// AdminListOrders lists all orders, filterable by ?status= and ?payment=.
func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if payment := r.URL.Query().Get("payment"); payment != "" {
		filter["paymentStatus"] = payment
	}

	skip, limit := utils.ParsePagination(r, 25, 200)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})

	orders, err := utils.FindAndDecode[models.Order](ctx, db.OrdersCollection, filter, opts)
	if err != nil {
		log.Println("AdminListOrders Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "orders": orders})
}

// AdminUpdateOrder sets order status and/or payment status.
func (h *Handler) AdminUpdateOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Status        string `json:"status"`
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	updates := bson.M{}
	if input.Status != "" {
		if !validStatus[input.Status] {
			http.Error(w, "Unknown order status", http.StatusBadRequest)
			return
		}
		updates["status"] = input.Status
	}
	if input.PaymentStatus != "" {
		if !validPaymentStatus[input.PaymentStatus] {
			http.Error(w, "Unknown payment status", http.StatusBadRequest)
			return
		}
		updates["paymentStatus"] = input.PaymentStatus
	}
	if len(updates) == 0 {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	orderID := ps.ByName("orderid")
	res, err := db.OrdersCollection.UpdateOne(ctx, bson.M{"orderId": orderID}, bson.M{"$set": updates})
	if err != nil {
		log.Println("AdminUpdateOrder UpdateOne error:", err)
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	go mq.Emit(globals.Ctx, "order-updated", mq.Event{EntityType: "order", EntityID: orderID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
