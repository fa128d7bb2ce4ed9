package menu

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

// nextRank appends at the end of the category ordering. Ranks start at 1.
func nextRank(highest int, found bool) int {
	if !found {
		return 1
	}
	return highest + 1
}

func highestRank(ctx context.Context) (int, bool, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
	var top models.MenuCategory
	err := db.MenuCategoriesCollection.FindOne(ctx, bson.M{}, opts).Decode(&top)
	if err == mongo.ErrNoDocuments {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return top.Order, true, nil
}

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	categories, err := utils.FindAndDecode[models.MenuCategory](ctx, db.MenuCategoriesCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	if len(categories) == 0 {
		categories = []models.MenuCategory{}
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if body.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	highest, found, err := highestRank(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to rank category")
		return
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}

	category := models.MenuCategory{
		CategoryID: utils.GetUUID(),
		Name:       body.Name,
		Order:      nextRank(highest, found),
		IsActive:   active,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if _, err := db.MenuCategoriesCollection.InsertOne(ctx, category); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	invalidatePublicMenu()
	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "menu_category", EntityID: category.CategoryID})

	utils.RespondWithJSON(w, http.StatusCreated, category)
}

func EditCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	categoryID := ps.ByName("id")

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	delete(patch, "categoryid")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now()

	res := db.MenuCategoriesCollection.FindOneAndUpdate(ctx,
		bson.M{"categoryid": categoryID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.MenuCategory
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	invalidatePublicMenu()
	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "menu_category", EntityID: categoryID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// ReorderCategories bulk-assigns new order values from {id, order} pairs.
func ReorderCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body []struct {
		ID    string `json:"id"`
		Order int    `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	for _, entry := range body {
		if _, err := db.MenuCategoriesCollection.UpdateOne(ctx,
			bson.M{"categoryid": entry.ID},
			bson.M{"$set": bson.M{"order": entry.Order, "updatedAt": time.Now()}},
		); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to reorder categories")
			return
		}
	}

	invalidatePublicMenu()
	go mq.Emit(ctx, mq.Event{Action: "reorder", Entity: "menu_category"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Categories reordered"})
}

// DeleteCategory removes the category and then bulk-deletes its items. The
// two steps are not atomic; the item delete is idempotent, so re-running it
// repairs a crash between steps.
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	categoryID := ps.ByName("id")

	res, err := db.MenuCategoriesCollection.DeleteOne(ctx, bson.M{"categoryid": categoryID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	if _, err := db.MenuItemsCollection.DeleteMany(ctx, bson.M{"category": categoryID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Category deleted but item cleanup failed")
		return
	}

	invalidatePublicMenu()
	go mq.Emit(ctx, mq.Event{Action: "delete", Entity: "menu_category", EntityID: categoryID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Category deleted"})
}
