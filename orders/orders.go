package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
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

var orderStatuses = map[string]bool{
	"pending":   true,
	"preparing": true,
	"completed": true,
	"cancelled": true,
}

type orderPayload struct {
	TableNumber string             `json:"tableNumber"`
	Items       []models.OrderItem `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	Notes       string             `json:"notes"`
}

func validateOrderPayload(p orderPayload) error {
	if p.TableNumber == "" {
		return fmt.Errorf("tableNumber is required")
	}
	if len(p.Items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}
	for _, item := range p.Items {
		if item.Name == "" || item.Quantity < 1 {
			return fmt.Errorf("each item needs a name and a quantity of at least 1")
		}
	}
	return nil
}

func orderNotificationMessage(tableNumber string, itemCount int) string {
	return fmt.Sprintf("New order from table %s (%d items)", tableNumber, itemCount)
}

// CreateOrder persists the order and then unconditionally creates a
// companion notification. The two writes are a plain sequence; there is no
// idempotency key, so a retried request produces a duplicate pair.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var body orderPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := validateOrderPayload(body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order := models.Order{
		OrderID:     utils.GetUUID(),
		TableNumber: body.TableNumber,
		Items:       body.Items,
		TotalAmount: body.TotalAmount, // client-supplied, not recomputed
		Status:      "pending",
		Notes:       body.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	notification := models.Notification{
		NotificationID: utils.GetUUID(),
		Type:           "order",
		TableNumber:    order.TableNumber,
		Message:        orderNotificationMessage(order.TableNumber, len(order.Items)),
		IsRead:         false,
		CreatedAt:      time.Now(),
	}
	if _, err := db.NotificationsCollection.InsertOne(ctx, notification); err != nil {
		log.Printf("order %s created but notification insert failed: %v", order.OrderID, err)
	}

	go mq.Emit(ctx, mq.Event{Action: "create", Entity: "order", EntityID: order.OrderID, Details: order.TableNumber})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	ordersList, err := utils.FindAndDecode[models.Order](ctx, db.OrdersCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if len(ordersList) == 0 {
		ordersList = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, ordersList)
}

func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	orderID := ps.ByName("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if !orderStatuses[body.Status] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	res := db.OrdersCollection.FindOneAndUpdate(ctx,
		bson.M{"orderid": orderID},
		bson.M{"$set": bson.M{"status": body.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Order
	if err := res.Decode(&updated); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	go mq.Emit(ctx, mq.Event{Action: "update", Entity: "order", EntityID: orderID, Details: body.Status})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// CountPending reports pending orders for the alert poller.
func CountPending(ctx context.Context) (int, error) {
	n, err := db.OrdersCollection.CountDocuments(ctx, bson.M{"status": "pending"})
	return int(n), err
}
