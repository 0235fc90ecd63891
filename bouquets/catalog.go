package bouquets

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

// Admin CRUD for the bouquet builder catalog: flowers, wrapping styles and
// additions live in their own collections and are plain flat records.

func GetFlowers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	flowers, err := utils.FindAndDecode[models.Flower](ctx, db.FlowersCollection, bson.M{})
	if err != nil {
		log.Println("GetFlowers Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve flowers")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "flowers": flowers})
}

func CreateFlower(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var flower models.Flower
	if err := json.NewDecoder(r.Body).Decode(&flower); err != nil || flower.Name == "" || flower.Price < 0 {
		http.Error(w, "Invalid flower payload", http.StatusBadRequest)
		return
	}

	flower.FlowerID = utils.GetUUID()
	if _, err := db.FlowersCollection.InsertOne(ctx, flower); err != nil {
		log.Println("CreateFlower InsertOne error:", err)
		http.Error(w, "Failed to create flower", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, flower)
}

func UpdateFlower(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	delete(updates, "flowerId")

	res, err := db.FlowersCollection.UpdateOne(ctx, bson.M{"flowerId": ps.ByName("flowerid")}, bson.M{"$set": updates})
	if err != nil {
		log.Println("UpdateFlower UpdateOne error:", err)
		http.Error(w, "Failed to update flower", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Flower not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeleteFlower(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := db.FlowersCollection.DeleteOne(ctx, bson.M{"flowerId": ps.ByName("flowerid")}); err != nil {
		log.Println("DeleteFlower DeleteOne error:", err)
		http.Error(w, "Failed to delete flower", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func GetWrappings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	wrappings, err := utils.FindAndDecode[models.Wrapping](ctx, db.WrappingsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve wrappings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "wrappings": wrappings})
}

func CreateWrapping(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var wrapping models.Wrapping
	if err := json.NewDecoder(r.Body).Decode(&wrapping); err != nil || wrapping.Name == "" || wrapping.Price < 0 {
		http.Error(w, "Invalid wrapping payload", http.StatusBadRequest)
		return
	}

	wrapping.WrappingID = utils.GetUUID()
	if _, err := db.WrappingsCollection.InsertOne(ctx, wrapping); err != nil {
		log.Println("CreateWrapping InsertOne error:", err)
		http.Error(w, "Failed to create wrapping", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, wrapping)
}

func DeleteWrapping(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := db.WrappingsCollection.DeleteOne(ctx, bson.M{"wrappingId": ps.ByName("wrappingid")}); err != nil {
		http.Error(w, "Failed to delete wrapping", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func GetAdditions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	additions, err := utils.FindAndDecode[models.Addition](ctx, db.AdditionsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve additions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "additions": additions})
}

func CreateAddition(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var addition models.Addition
	if err := json.NewDecoder(r.Body).Decode(&addition); err != nil || addition.Name == "" || addition.Price < 0 {
		http.Error(w, "Invalid addition payload", http.StatusBadRequest)
		return
	}

	addition.AdditionID = utils.GetUUID()
	if _, err := db.AdditionsCollection.InsertOne(ctx, addition); err != nil {
		log.Println("CreateAddition InsertOne error:", err)
		http.Error(w, "Failed to create addition", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, addition)
}

func DeleteAddition(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.AdditionsCollection.DeleteOne(ctx, bson.M{"additionId": ps.ByName("additionid")})
	if err != nil {
		http.Error(w, "Failed to delete addition", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Addition not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
