package settings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/mq"
	"greenvale/rdx"
	"greenvale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The park has exactly one settings document.
const singletonID = "park"

const cacheKey = "settings:park"

func defaultSettings() models.Settings {
	return models.Settings{
		SettingsID: singletonID,
		ParkInfo: models.ParkInfo{
			Name: "Greenvale Park",
		},
		OpeningHours: models.OpeningHours{
			Weekdays: "09:00-22:00",
			Weekends: "09:00-24:00",
		},
		HomeText: models.HomeText{
			Headline: "Welcome to Greenvale Park",
		},
		UpdatedAt: time.Now(),
	}
}

// GetSettings returns the singleton document, creating it with defaults on
// first read.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var current models.Settings
	err := db.SettingsCollection.FindOne(context.TODO(), bson.M{"settingsid": singletonID}).Decode(&current)
	if err == mongo.ErrNoDocuments {
		current = defaultSettings()
		if _, err := db.SettingsCollection.InsertOne(context.TODO(), current); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to initialize settings")
			return
		}
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read settings")
		return
	}

	if data, err := json.Marshal(current); err == nil {
		if err := rdx.RdxSet(cacheKey, string(data)); err != nil {
			log.Printf("settings cache store failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, current)
}

// UpdateSettings replaces the whole document (upsert).
func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var incoming models.Settings
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	incoming.SettingsID = singletonID
	incoming.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := db.SettingsCollection.ReplaceOne(ctx, bson.M{"settingsid": singletonID}, incoming, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	if err := rdx.RdxDel(cacheKey); err != nil {
		log.Printf("settings cache invalidation failed: %v", err)
	}
	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "settings", EntityID: singletonID})

	utils.RespondWithJSON(w, http.StatusOK, incoming)
}
