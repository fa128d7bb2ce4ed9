package halls

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

// Hall reservations additionally allow "blocked" so admins can take a date
// out of circulation.
var reservationStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"canceled":  true,
	"blocked":   true,
}

func GetHalls(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	halls, err := utils.FindAndDecode[models.Hall](ctx, db.HallsCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch halls")
		return
	}
	if len(halls) == 0 {
		halls = []models.Hall{}
	}
	utils.RespondWithJSON(w, http.StatusOK, halls)
}

func CreateHall(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var hall models.Hall
	if err := json.NewDecoder(r.Body).Decode(&hall); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if hall.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	hall.HallID = utils.GetUUID()
	hall.IsActive = true
	hall.CreatedAt = time.Now()
	hall.UpdatedAt = time.Now()

	if _, err := db.HallsCollection.InsertOne(ctx, hall); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create hall")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "hall", EntityID: hall.HallID})

	utils.RespondWithJSON(w, http.StatusCreated, hall)
}

func EditHall(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	hallID := ps.ByName("id")

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	delete(patch, "hallid")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now()

	res := db.HallsCollection.FindOneAndUpdate(ctx,
		bson.M{"hallid": hallID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Hall
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Hall not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "hall", EntityID: hallID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteHall(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	hallID := ps.ByName("id")

	res, err := db.HallsCollection.DeleteOne(ctx, bson.M{"hallid": hallID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete hall")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Hall not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "delete", Entity: "hall", EntityID: hallID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Hall deleted"})
}

func CreateReservation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Hall     string `json:"hall"`
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
		Date     string `json:"date"`
		Occasion string `json:"occasion"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if body.Hall == "" || body.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "hall and date are required")
		return
	}

	err := db.HallsCollection.FindOne(ctx, bson.M{"hallid": body.Hall}).Err()
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Hall not found")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up hall")
		return
	}

	reservation := models.HallReservation{
		ReservationID: utils.GetUUID(),
		HallID:        body.Hall,
		FullName:      body.FullName,
		Phone:         body.Phone,
		Date:          body.Date,
		Occasion:      body.Occasion,
		Status:        "pending",
		Notes:         body.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if _, err := db.HallReservationsCollection.InsertOne(ctx, reservation); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "hall_reservation", EntityID: reservation.ReservationID})

	utils.RespondWithJSON(w, http.StatusCreated, reservation)
}

func GetReservations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	reservations, err := utils.FindAndDecode[models.HallReservation](ctx, db.HallReservationsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}
	if len(reservations) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.HallReservation{})
		return
	}

	ids := make([]string, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.HallID)
	}
	hallDocs, err := utils.FindAndDecode[models.Hall](ctx, db.HallsCollection, bson.M{"hallid": bson.M{"$in": ids}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch halls")
		return
	}
	byID := make(map[string]models.Hall, len(hallDocs))
	for _, h := range hallDocs {
		byID[h.HallID] = h
	}
	for i := range reservations {
		if h, ok := byID[reservations[i].HallID]; ok {
			hCopy := h
			reservations[i].Hall = &hCopy
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, reservations)
}

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

	res := db.HallReservationsCollection.FindOneAndUpdate(ctx,
		bson.M{"reservationid": reservationID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.HallReservation
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "hall_reservation", EntityID: reservationID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	reservationID := ps.ByName("id")

	res, err := db.HallReservationsCollection.DeleteOne(ctx, bson.M{"reservationid": reservationID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Reservation not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "delete", Entity: "hall_reservation", EntityID: reservationID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Reservation deleted"})
}

// CountPending reports pending hall reservations for the alert poller.
func CountPending(ctx context.Context) (int, error) {
	n, err := db.HallReservationsCollection.CountDocuments(ctx, bson.M{"status": "pending"})
	return int(n), err
}
