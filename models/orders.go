package models

import "time"

type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

type Order struct {
	OrderID     string      `json:"orderid" bson:"orderid"`
	TableNumber string      `json:"tableNumber" bson:"tableNumber"`
	Items       []OrderItem `json:"items" bson:"items"`
	TotalAmount float64     `json:"totalAmount" bson:"totalAmount"`
	Status      string      `json:"status" bson:"status"` // pending, preparing, completed, cancelled
	Notes       string      `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updatedAt"`
}

type Notification struct {
	NotificationID string    `json:"notificationid" bson:"notificationid"`
	Type           string    `json:"type" bson:"type"` // order, waiter_call, bill_request
	TableNumber    string    `json:"tableNumber" bson:"tableNumber"`
	Message        string    `json:"message" bson:"message"`
	IsRead         bool      `json:"isRead" bson:"isRead"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}
