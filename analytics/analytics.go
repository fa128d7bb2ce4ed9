package analytics

import (
	"context"
	"net/http"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recordVisit bumps today's counter with an atomic upsert-increment and
// returns the updated count. Safe under concurrent visits.
func recordVisit(ctx context.Context, dateKey string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	res := db.AnalyticsCollection.FindOneAndUpdate(ctx,
		bson.M{"date": dateKey},
		bson.M{
			"$inc":         bson.M{"count": 1},
			"$setOnInsert": bson.M{"date": dateKey},
		},
		opts,
	)

	var visit models.DailyVisit
	if err := res.Decode(&visit); err != nil {
		return 0, err
	}
	return visit.Count, nil
}

func RecordVisit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := recordVisit(r.Context(), utils.DateKey(time.Now()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record visit")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "count": count})
}

// GetToday reads today's counter, defaulting to zero when no visit has been
// recorded yet.
func GetToday(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var visit models.DailyVisit
	err := db.AnalyticsCollection.FindOne(r.Context(), bson.M{"date": utils.DateKey(time.Now())}).Decode(&visit)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "count": 0})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read visits")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "count": visit.Count})
}

// GetRange returns the daily series between from and to (inclusive) for the
// dashboard chart. Dates are YYYY-MM-DD strings, so lexical range works.
func GetRange(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	visits, err := utils.FindAndDecode[models.DailyVisit](ctx, db.AnalyticsCollection,
		bson.M{"date": bson.M{"$gte": from, "$lte": to}}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read visits")
		return
	}
	if len(visits) == 0 {
		visits = []models.DailyVisit{}
	}
	utils.RespondWithJSON(w, http.StatusOK, visits)
}
