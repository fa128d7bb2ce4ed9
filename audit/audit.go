package audit

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

// GetLogs lists audit entries, newest first.
func GetLogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(500)
	logs, err := utils.FindAndDecode[models.AuditLog](ctx, db.AuditCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch audit log")
		return
	}
	if len(logs) == 0 {
		logs = []models.AuditLog{}
	}
	utils.RespondWithJSON(w, http.StatusOK, logs)
}

// CreateLog lets the dashboard record a manual audit entry. Handler-side
// entries normally arrive through the audit worker instead.
func CreateLog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var entry models.AuditLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if entry.Action == "" || entry.Entity == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "action and entity are required")
		return
	}

	entry.AuditID = utils.GetUUID()
	entry.CreatedAt = time.Now()

	if _, err := db.AuditCollection.InsertOne(r.Context(), entry); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save audit entry")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, entry)
}
