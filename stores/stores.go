package stores

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"petalia/db"
	"petalia/models"
	"petalia/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func GetStores(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.Store](ctx, db.StoresCollection, bson.M{})
	if err != nil {
		log.Println("GetStores Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve stores")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "stores": items})
}

func CreateStore(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var store models.Store
	if err := json.NewDecoder(r.Body).Decode(&store); err != nil || store.Name == "" || store.Address == "" {
		http.Error(w, "Invalid store payload", http.StatusBadRequest)
		return
	}

	store.StoreID = utils.GetUUID()
	store.CreatedAt = time.Now()

	if _, err := db.StoresCollection.InsertOne(ctx, store); err != nil {
		log.Println("CreateStore InsertOne error:", err)
		http.Error(w, "Failed to create store", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, store)
}

func UpdateStore(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	delete(updates, "storeId")
	delete(updates, "createdAt")

	res, err := db.StoresCollection.UpdateOne(ctx, bson.M{"storeId": ps.ByName("storeid")}, bson.M{"$set": updates})
	if err != nil {
		log.Println("UpdateStore UpdateOne error:", err)
		http.Error(w, "Failed to update store", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Store not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeleteStore(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.StoresCollection.DeleteOne(ctx, bson.M{"storeId": ps.ByName("storeid")})
	if err != nil {
		log.Println("DeleteStore DeleteOne error:", err)
		http.Error(w, "Failed to delete store", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Store not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
