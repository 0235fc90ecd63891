package categories

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cats, err := utils.FindAndDecode[models.Category](ctx, db.CategoriesCollection, bson.M{}, opts)
	if err != nil {
		log.Println("GetCategories Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "categories": cats})
}

func GetCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var cat models.Category
	err := db.CategoriesCollection.FindOne(ctx, bson.M{"categoryId": ps.ByName("categoryid")}).Decode(&cat)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cat)
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var cat models.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil || cat.Name == "" {
		http.Error(w, "Invalid category payload", http.StatusBadRequest)
		return
	}

	cat.CategoryID = utils.GetUUID()
	cat.CreatedAt = time.Now()

	if _, err := db.CategoriesCollection.InsertOne(ctx, cat); err != nil {
		log.Println("CreateCategory InsertOne error:", err)
		http.Error(w, "Failed to create category", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, cat)
}

func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	delete(updates, "categoryId")
	delete(updates, "createdAt")

	res, err := db.CategoriesCollection.UpdateOne(ctx, bson.M{"categoryId": ps.ByName("categoryid")}, bson.M{"$set": updates})
	if err != nil {
		log.Println("UpdateCategory UpdateOne error:", err)
		http.Error(w, "Failed to update category", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.CategoriesCollection.DeleteOne(ctx, bson.M{"categoryId": ps.ByName("categoryid")})
	if err != nil {
		log.Println("DeleteCategory DeleteOne error:", err)
		http.Error(w, "Failed to delete category", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
