package testimonials

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetTestimonials(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	items, err := utils.FindAndDecode[models.Testimonial](ctx, db.TestimonialsCollection, bson.M{}, opts)
	if err != nil {
		log.Println("GetTestimonials Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "testimonials": items})
}

func CreateTestimonial(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var t models.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil || t.Author == "" || t.Quote == "" {
		http.Error(w, "Invalid testimonial payload", http.StatusBadRequest)
		return
	}
	if t.Rating < 1 || t.Rating > 5 {
		http.Error(w, "Rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	t.TestimonialID = utils.GetUUID()
	t.CreatedAt = time.Now()

	if _, err := db.TestimonialsCollection.InsertOne(ctx, t); err != nil {
		log.Println("CreateTestimonial InsertOne error:", err)
		http.Error(w, "Failed to create testimonial", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, t)
}

func UpdateTestimonial(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	delete(updates, "testimonialId")
	delete(updates, "createdAt")

	res, err := db.TestimonialsCollection.UpdateOne(ctx,
		bson.M{"testimonialId": ps.ByName("testimonialid")}, bson.M{"$set": updates})
	if err != nil {
		log.Println("UpdateTestimonial UpdateOne error:", err)
		http.Error(w, "Failed to update testimonial", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Testimonial not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeleteTestimonial(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.TestimonialsCollection.DeleteOne(ctx, bson.M{"testimonialId": ps.ByName("testimonialid")})
	if err != nil {
		log.Println("DeleteTestimonial DeleteOne error:", err)
		http.Error(w, "Failed to delete testimonial", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Testimonial not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
