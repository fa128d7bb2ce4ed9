package menu

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const menuUploadDir = "static/uploads/menupic"

func processItemPhoto(file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := utils.GenerateRandomString(16)
	fileName := uniqueID + ".jpg"

	originalPath := filepath.Join(menuUploadDir, fileName)
	thumbDir := filepath.Join(menuUploadDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := os.MkdirAll(menuUploadDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return "", "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/static/uploads/menupic/" + fileName, "/static/uploads/menupic/thumb/" + fileName, nil
}

// UploadItemPhoto stores a photo (plus a 300px thumbnail) for an item.
func UploadItemPhoto(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	itemID := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	files := r.MultipartForm.File["photo"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "photo file is required")
		return
	}

	photoPath, thumbPath, err := processItemPhoto(files[0])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := db.MenuItemsCollection.FindOneAndUpdate(ctx,
		bson.M{"itemid": itemID},
		bson.M{"$set": bson.M{"photo": photoPath, "thumb": thumbPath, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.MenuItem
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Item not found")
		return
	}

	invalidatePublicMenu()

	utils.RespondWithJSON(w, http.StatusOK, updated)
}
