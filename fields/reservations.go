package fields

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

var reservationStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"canceled":  true,
}

// CreateReservation books a field slot. There is no double-booking check for
// (field, date, slot); uniqueness is a UI-level convention.
func CreateReservation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Field    string `json:"field"`
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
		Date     string `json:"date"`
		Slot     string `json:"slot"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if body.Field == "" || body.Date == "" || body.Slot == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "field, date and slot are required")
		return
	}

	err := db.FieldsCollection.FindOne(ctx, bson.M{"fieldid": body.Field}).Err()
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Field not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up field")
		return
	}

	reservation := models.FieldReservation{
		ReservationID: utils.GetUUID(),
		FieldID:       body.Field,
		FullName:      body.FullName,
		Phone:         body.Phone,
		Date:          body.Date,
		Slot:          body.Slot,
		Status:        "pending",
		Notes:         body.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if _, err := db.FieldReservationsCollection.InsertOne(ctx, reservation); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "field_reservation", EntityID: reservation.ReservationID})

	utils.RespondWithJSON(w, http.StatusCreated, reservation)
}

// GetReservations lists field reservations sorted by date and slot, each
// populated with its parent field.
func GetReservations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if date := r.URL.Query().Get("date"); date != "" {
		filter["date"] = date
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "slot", Value: 1}})
	reservations, err := utils.FindAndDecode[models.FieldReservation](ctx, db.FieldReservationsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}
	if len(reservations) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.FieldReservation{})
		return
	}

	ids := make([]string, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.FieldID)
	}
	fieldDocs, err := utils.FindAndDecode[models.Field](ctx, db.FieldsCollection, bson.M{"fieldid": bson.M{"$in": ids}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch fields")
		return
	}
	byID := make(map[string]models.Field, len(fieldDocs))
	for _, f := range fieldDocs {
		byID[f.FieldID] = f
	}
	for i := range reservations {
		if f, ok := byID[reservations[i].FieldID]; ok {
			fCopy := f
			reservations[i].Field = &fCopy
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, reservations)
}

// EditReservation merge-assigns the supplied fields and saves.
func EditReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	reservationID := ps.ByName("id")

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if status, ok := patch["status"].(string); ok && !reservationStatuses[status] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	delete(patch, "reservationid")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now()

	res := db.FieldReservationsCollection.FindOneAndUpdate(ctx,
		bson.M{"reservationid": reservationID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.FieldReservation
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "field_reservation", EntityID: reservationID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	reservationID := ps.ByName("id")

	res, err := db.FieldReservationsCollection.DeleteOne(ctx, bson.M{"reservationid": reservationID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "delete", Entity: "field_reservation", EntityID: reservationID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Reservation deleted"})
}

// CountPending reports pending field reservations for the alert poller.
func CountPending(ctx context.Context) (int, error) {
	n, err := db.FieldReservationsCollection.CountDocuments(ctx, bson.M{"status": "pending"})
	return int(n), err
}
