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
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetFields(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	fields, err := utils.FindAndDecode[models.Field](ctx, db.FieldsCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch fields")
		return
	}
	if len(fields) == 0 {
		fields = []models.Field{}
	}
	utils.RespondWithJSON(w, http.StatusOK, fields)
}

func CreateField(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var field models.Field
	if err := json.NewDecoder(r.Body).Decode(&field); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if field.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	field.FieldID = utils.GetUUID()
	field.IsActive = true
	field.CreatedAt = time.Now()
	field.UpdatedAt = time.Now()

	if _, err := db.FieldsCollection.InsertOne(ctx, field); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create field")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "field", EntityID: field.FieldID})

	utils.RespondWithJSON(w, http.StatusCreated, field)
}

func EditField(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	fieldID := ps.ByName("id")

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	delete(patch, "fieldid")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now()

	res := db.FieldsCollection.FindOneAndUpdate(ctx,
		bson.M{"fieldid": fieldID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Field
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Field not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "field", EntityID: fieldID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteField(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	fieldID := ps.ByName("id")

	res, err := db.FieldsCollection.DeleteOne(ctx, bson.M{"fieldid": fieldID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete field")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Field not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "delete", Entity: "field", EntityID: fieldID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Field deleted"})
}
