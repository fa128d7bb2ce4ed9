package menu

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/rdx"
	"greenvale/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const publicMenuKey = "menu:public"

func invalidatePublicMenu() {
	if err := rdx.RdxDel(publicMenuKey); err != nil {
		log.Printf("menu cache invalidation failed: %v", err)
	}
}

// GetPublicMenu serves the café page composite: active categories in rank
// order, each with its active items. Cached in Redis until the next menu
// write.
func GetPublicMenu(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(publicMenuKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	catOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	categories, err := utils.FindAndDecode[models.MenuCategory](ctx, db.MenuCategoriesCollection, bson.M{"isActive": true}, catOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch menu")
		return
	}

	items, err := utils.FindAndDecode[models.MenuItem](ctx, db.MenuItemsCollection, bson.M{"isActive": true})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch menu")
		return
	}

	itemsByCategory := make(map[string][]models.MenuItem)
	for _, item := range items {
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}

	public := make([]models.PublicMenuCategory, 0, len(categories))
	for _, cat := range categories {
		entry := models.PublicMenuCategory{MenuCategory: cat, Items: itemsByCategory[cat.CategoryID]}
		if entry.Items == nil {
			entry.Items = []models.MenuItem{}
		}
		public = append(public, entry)
	}

	if data, err := json.Marshal(public); err == nil {
		if err := rdx.RdxSet(publicMenuKey, string(data)); err != nil {
			log.Printf("menu cache store failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, public)
}
