package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMessage receives a public contact-form submission.
func CreateMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if body.Name == "" || body.Body == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and message body are required")
		return
	}

	message := models.ContactMessage{
		MessageID: utils.GetUUID(),
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		Subject:   body.Subject,
		Body:      body.Body,
		Status:    "new",
		CreatedAt: time.Now(),
	}
	if _, err := db.MessagesCollection.InsertOne(r.Context(), message); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, message)
}

// GetMessages lists contact messages, newest first.
func GetMessages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	messages, err := utils.FindAndDecode[models.ContactMessage](ctx, db.MessagesCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	if len(messages) == 0 {
		messages = []models.ContactMessage{}
	}
	utils.RespondWithJSON(w, http.StatusOK, messages)
}

func MarkAsRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res := db.MessagesCollection.FindOneAndUpdate(r.Context(),
		bson.M{"messageid": ps.ByName("id")},
		bson.M{"$set": bson.M{"status": "read"}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.ContactMessage
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Message not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// CountNew reports unhandled contact messages for the alert poller.
func CountNew(ctx context.Context) (int, error) {
	n, err := db.MessagesCollection.CountDocuments(ctx, bson.M{"status": "new"})
	return int(n), err
}
