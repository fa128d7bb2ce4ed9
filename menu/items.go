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

func categoryExists(ctx context.Context, categoryID string) (bool, error) {
	err := db.MenuCategoriesCollection.FindOne(ctx, bson.M{"categoryid": categoryID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func GetItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	items, err := utils.FindAndDecode[models.MenuItem](ctx, db.MenuItemsCollection, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	if len(items) == 0 {
		items = []models.MenuItem{}
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func CreateItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body struct {
		Category    string  `json:"category"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		IsActive    *bool   `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if body.Name == "" || body.Category == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and category are required")
		return
	}
	if body.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price value. Must be a non-negative number.")
		return
	}

	ok, err := categoryExists(ctx, body.Category)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up category")
		return
	}
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}

	item := models.MenuItem{
		ItemID:      utils.GetUUID(),
		CategoryID:  body.Category,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		IsActive:    active,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if _, err := db.MenuItemsCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	invalidatePublicMenu()
	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "menu_item", EntityID: item.ItemID})

	utils.RespondWithJSON(w, http.StatusCreated, item)
}

func EditItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	itemID := ps.ByName("id")

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	// Retargeting an item requires the new category to exist.
	if category, ok := patch["category"].(string); ok {
		exists, err := categoryExists(ctx, category)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to look up category")
			return
		}
		if !exists {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
	}

	delete(patch, "itemid")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now()

	res := db.MenuItemsCollection.FindOneAndUpdate(ctx,
		bson.M{"itemid": itemID},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.MenuItem
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	invalidatePublicMenu()
	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "menu_item", EntityID: itemID})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	itemID := ps.ByName("id")

	res, err := db.MenuItemsCollection.DeleteOne(ctx, bson.M{"itemid": itemID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	invalidatePublicMenu()
	go mq.Emit(ctx, mq.Event{Action: "delete", Entity: "menu_item", EntityID: itemID})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Item deleted"})
}
