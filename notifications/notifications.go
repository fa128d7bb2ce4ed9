package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func insertNotification(ctx context.Context, kind, tableNumber, message string) (models.Notification, error) {
	notification := models.Notification{
		NotificationID: utils.GetUUID(),
		Type:           kind,
		TableNumber:    tableNumber,
		Message:        message,
		IsRead:         false,
		CreatedAt:      time.Now(),
	}
	_, err := db.NotificationsCollection.InsertOne(ctx, notification)
	return notification, err
}

func tableRequest(kind, verb string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var body struct {
			TableNumber string `json:"tableNumber"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
			return
		}
		if body.TableNumber == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "tableNumber is required")
			return
		}

		message := fmt.Sprintf("Table %s %s", body.TableNumber, verb)
		notification, err := insertNotification(r.Context(), kind, body.TableNumber, message)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create notification")
			return
		}
		utils.RespondWithJSON(w, http.StatusCreated, notification)
	}
}

// CallWaiter and RequestBill are the two table-side actions besides ordering.
var CallWaiter = tableRequest("waiter_call", "is calling a waiter")
var RequestBill = tableRequest("bill_request", "requested the bill")

func GetNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if r.URL.Query().Get("unread") == "true" {
		filter["isRead"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	list, err := utils.FindAndDecode[models.Notification](ctx, db.NotificationsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	if len(list) == 0 {
		list = []models.Notification{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func MarkAsRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	notificationID := ps.ByName("id")

	res := db.NotificationsCollection.FindOneAndUpdate(ctx,
		bson.M{"notificationid": notificationID},
		bson.M{"$set": bson.M{"isRead": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Notification
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// CountUnread reports unread notifications for the alert poller.
func CountUnread(ctx context.Context) (int, error) {
	n, err := db.NotificationsCollection.CountDocuments(ctx, bson.M{"isRead": false})
	return int(n), err
}
