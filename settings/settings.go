package settings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"petalia/db"
	"petalia/models"
	"petalia/utils"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The site settings live in a single document under this key.
const settingsKey = "site"

var validate = validator.New(validator.WithRequiredStructEnabled())

func defaultSettings() models.SiteSettings {
	return models.SiteSettings{
		ShopName:     "Petalia",
		Tagline:      "Fresh flowers, every day",
		ContactEmail: "hello@petalia.example",
		CurrencyCode: "EUR",
		UpdatedAt:    time.Now(),
	}
}

// GetSettings returns the singleton document, creating it with defaults on
// first access.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var s models.SiteSettings
	err := db.SettingsCollection.FindOne(ctx, bson.M{"_id": settingsKey}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		s = defaultSettings()
		_, _ = db.SettingsCollection.InsertOne(ctx, bson.M{
			"_id": settingsKey, "shopName": s.ShopName, "tagline": s.Tagline,
			"contactEmail": s.ContactEmail, "currencyCode": s.CurrencyCode, "updatedAt": s.UpdatedAt,
		})
	} else if err != nil {
		log.Println("GetSettings FindOne error:", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, s)
}

// UpdateSettings replaces the singleton document.
func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var s models.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(s); err != nil {
		http.Error(w, "Invalid settings: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := db.SettingsCollection.ReplaceOne(ctx, bson.M{"_id": settingsKey}, s, opts); err != nil {
		log.Println("UpdateSettings ReplaceOne error:", err)
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, s)
}
