package events

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/mq"
	"greenvale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetEvents returns all events, newest first.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	events, err := utils.FindAndDecode[models.Event](ctx, db.EventsCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	if len(events) == 0 {
		events = []models.Event{}
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var event models.Event
	err := db.EventsCollection.FindOne(r.Context(), bson.M{"eventid": ps.ByName("eventid")}).Decode(&event)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, event)
}

func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Date        string  `json:"date"`
		StartTime   string  `json:"startTime"`
		EndTime     string  `json:"endTime"`
		MaxCapacity int     `json:"maxCapacity"`
		Price       float64 `json:"price"`
		Banner      string  `json:"banner"`
		IsActive    *bool   `json:"isActive"`
		IsFeatured  bool    `json:"isFeatured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if body.Title == "" || body.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and date are required")
		return
	}
	if body.MaxCapacity < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "maxCapacity must be non-negative")
		return
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}

	event := models.Event{
		EventID:             utils.GetUUID(),
		Title:               body.Title,
		Description:         body.Description,
		Date:                body.Date,
		StartTime:           body.StartTime,
		EndTime:             body.EndTime,
		MaxCapacity:         body.MaxCapacity,
		CurrentReservations: 0,
		Price:               body.Price,
		Banner:              body.Banner,
		IsActive:            active,
		IsFeatured:          body.IsFeatured,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if _, err := db.EventsCollection.InsertOne(ctx, event); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "event", EntityID: event.EventID})

	utils.RespondWithJSON(w, http.StatusCreated, event)
}

// EditEvent merges the supplied fields into the event document.
func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	eventID := ps.ByName("eventid")

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	// Identity and counter fields are not editable here.
	delete(patch, "eventid")
	delete(patch, "currentReservations")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now()

	res := db.EventsCollection.FindOneAndUpdate(ctx,
		bson.M{"eventid": eventID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Event
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "event", EntityID: eventID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	eventID := ps.ByName("eventid")

	res, err := db.EventsCollection.DeleteOne(ctx, bson.M{"eventid": eventID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "delete", Entity: "event", EntityID: eventID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Event deleted"})
}

// resolveEvent fetches the parent event or nil when it no longer exists.
func resolveEvent(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := db.EventsCollection.FindOne(ctx, bson.M{"eventid": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
