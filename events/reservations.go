package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/mq"
	"greenvale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var reservationStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"canceled":  true,
}

// CreateReservation books attendees onto an event. The event must exist and
// attendees must be at least 1. The event counter is bumped with an atomic
// $inc scoped to the event id; there is deliberately no ceiling check against
// maxCapacity, so overbooking is accepted.
func CreateReservation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Event     string `json:"event"`
		FullName  string `json:"fullName"`
		Phone     string `json:"phone"`
		Attendees int    `json:"attendees"`
		Notes     string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if body.Attendees < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "attendees must be at least 1")
		return
	}

	event, err := resolveEvent(ctx, body.Event)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up event")
		return
	}
	if event == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	reservation := models.EventReservation{
		ReservationID: utils.GetUUID(),
		EventID:       body.Event,
		FullName:      body.FullName,
		Phone:         body.Phone,
		Attendees:     body.Attendees,
		Status:        "pending",
		Notes:         body.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if _, err := db.EventReservationsCollection.InsertOne(ctx, reservation); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	// If this update fails the reservation stays created; there is no
	// compensating delete.
	if _, err := db.EventsCollection.UpdateOne(ctx,
		bson.M{"eventid": body.Event},
		bson.M{"$inc": bson.M{"currentReservations": body.Attendees}},
	); err != nil {
		log.Printf("reservation %s created but counter update failed: %v", reservation.ReservationID, err)
	}

	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "event_reservation", EntityID: reservation.ReservationID})

	utils.RespondWithJSON(w, http.StatusCreated, reservation)
}

// GetReservations returns all event reservations, newest first, each with
// its parent event resolved inline.
func GetReservations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	reservations, err := utils.FindAndDecode[models.EventReservation](ctx, db.EventReservationsCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}
	if len(reservations) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.EventReservation{})
		return
	}

	// Resolve referenced events in one query.
	ids := make([]string, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.EventID)
	}
	eventDocs, err := utils.FindAndDecode[models.Event](ctx, db.EventsCollection, bson.M{"eventid": bson.M{"$in": ids}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	byID := make(map[string]models.Event, len(eventDocs))
	for _, ev := range eventDocs {
		byID[ev.EventID] = ev
	}
	for i := range reservations {
		if ev, ok := byID[reservations[i].EventID]; ok {
			evCopy := ev
			reservations[i].Event = &evCopy
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, reservations)
}

// UpdateReservationStatus sets the status field only. Transitions to or from
// canceled never touch the event counter; only deletion reverses it.
func UpdateReservationStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	reservationID := ps.ByName("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if !reservationStatuses[body.Status] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	res := db.EventReservationsCollection.FindOneAndUpdate(ctx,
		bson.M{"reservationid": reservationID},
		bson.M{"$set": bson.M{"status": body.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.EventReservation
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "event_reservation", EntityID: reservationID, Details: body.Status})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteReservation removes a reservation. Unless the reservation was
// already canceled, the parent event counter is decremented first; a missing
// parent event skips the decrement silently.
func DeleteReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	reservationID := ps.ByName("id")

	var reservation models.EventReservation
	err := db.EventReservationsCollection.FindOne(ctx, bson.M{"reservationid": reservationID}).Decode(&reservation)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	if reservation.Status != "canceled" {
		if _, err := db.EventsCollection.UpdateOne(ctx,
			bson.M{"eventid": reservation.EventID},
			bson.M{"$inc": bson.M{"currentReservations": -reservation.Attendees}},
		); err != nil {
			log.Printf("counter decrement failed for event %s: %v", reservation.EventID, err)
		}
	}

	if _, err := db.EventReservationsCollection.DeleteOne(ctx, bson.M{"reservationid": reservationID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "delete", Entity: "event_reservation", EntityID: reservationID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Reservation deleted"})
}

// CountPending reports pending event reservations for the alert poller.
func CountPending(ctx context.Context) (int, error) {
	n, err := db.EventReservationsCollection.CountDocuments(ctx, bson.M{"status": "pending"})
	return int(n), err
}
