package delivery

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Zones, options and payment method labels share one collection, telling each
// other apart by the kind field.
const (
	kindZone   = "zone"
	kindOption = "option"
	kindMethod = "method"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// --- Delivery zones ---

func GetZones(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	zones, err := utils.FindAndDecode[models.DeliveryZone](ctx, db.DeliveryCollection, bson.M{"kind": kindZone})
	if err != nil {
		log.Println("GetZones Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve delivery zones")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "zones": zones})
}

func CreateZone(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var zone models.DeliveryZone
	if err := json.NewDecoder(r.Body).Decode(&zone); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(zone); err != nil {
		http.Error(w, "Invalid zone: "+err.Error(), http.StatusBadRequest)
		return
	}

	zone.ZoneID = utils.GetUUID()
	zone.Kind = kindZone

	if _, err := db.DeliveryCollection.InsertOne(ctx, zone); err != nil {
		log.Println("CreateZone InsertOne error:", err)
		http.Error(w, "Failed to create zone", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, zone)
}

func DeleteZone(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.DeliveryCollection.DeleteOne(ctx, bson.M{"zoneId": ps.ByName("zoneid"), "kind": kindZone})
	if err != nil {
		http.Error(w, "Failed to delete zone", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Zone not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Delivery options ---

func GetOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts, err := utils.FindAndDecode[models.DeliveryOption](ctx, db.DeliveryCollection, bson.M{"kind": kindOption})
	if err != nil {
		log.Println("GetOptions Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve delivery options")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "options": opts})
}

func CreateOption(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var opt models.DeliveryOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(opt); err != nil {
		http.Error(w, "Invalid option: "+err.Error(), http.StatusBadRequest)
		return
	}

	opt.OptionID = utils.GetUUID()
	opt.Kind = kindOption

	if _, err := db.DeliveryCollection.InsertOne(ctx, opt); err != nil {
		log.Println("CreateOption InsertOne error:", err)
		http.Error(w, "Failed to create option", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, opt)
}

func DeleteOption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.DeliveryCollection.DeleteOne(ctx, bson.M{"optionId": ps.ByName("optionid"), "kind": kindOption})
	if err != nil {
		http.Error(w, "Failed to delete option", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Option not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- Payment method labels ---

func GetPaymentMethods(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	methods, err := utils.FindAndDecode[models.PaymentMethodOption](ctx, db.DeliveryCollection, bson.M{"kind": kindMethod})
	if err != nil {
		log.Println("GetPaymentMethods Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve payment methods")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "methods": methods})
}

func CreatePaymentMethod(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var method models.PaymentMethodOption
	if err := json.NewDecoder(r.Body).Decode(&method); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(method); err != nil {
		http.Error(w, "Invalid method: "+err.Error(), http.StatusBadRequest)
		return
	}

	method.MethodID = utils.GetUUID()
	method.Kind = kindMethod

	if _, err := db.DeliveryCollection.InsertOne(ctx, method); err != nil {
		log.Println("CreatePaymentMethod InsertOne error:", err)
		http.Error(w, "Failed to create payment method", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, method)
}

func DeletePaymentMethod(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.DeliveryCollection.DeleteOne(ctx, bson.M{"methodId": ps.ByName("methodid"), "kind": kindMethod})
	if err != nil {
		http.Error(w, "Failed to delete payment method", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Payment method not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- FAQ ---

func GetFAQ(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	entries, err := utils.FindAndDecode[models.FAQEntry](ctx, db.FAQCollection, bson.M{}, opts)
	if err != nil {
		log.Println("GetFAQ Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve FAQ")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "faq": entries})
}

func CreateFAQ(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var entry models.FAQEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(entry); err != nil {
		http.Error(w, "Invalid FAQ entry: "+err.Error(), http.StatusBadRequest)
		return
	}

	entry.FAQID = utils.GetUUID()

	if _, err := db.FAQCollection.InsertOne(ctx, entry); err != nil {
		log.Println("CreateFAQ InsertOne error:", err)
		http.Error(w, "Failed to create FAQ entry", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, entry)
}

func DeleteFAQ(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.FAQCollection.DeleteOne(ctx, bson.M{"faqId": ps.ByName("faqid")})
	if err != nil {
		http.Error(w, "Failed to delete FAQ entry", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "FAQ entry not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
