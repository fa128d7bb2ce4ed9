package models

import "time"

type Field struct {
	FieldID      string    `json:"fieldid" bson:"fieldid"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Surface      string    `json:"surface,omitempty" bson:"surface,omitempty"`
	PricePerHour float64   `json:"pricePerHour,omitempty" bson:"pricePerHour,omitempty"`
	Photo        string    `json:"photo,omitempty" bson:"photo,omitempty"`
	IsActive     bool      `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Hall struct {
	HallID      string    `json:"hallid" bson:"hallid"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Capacity    int       `json:"capacity,omitempty" bson:"capacity,omitempty"`
	Photo       string    `json:"photo,omitempty" bson:"photo,omitempty"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type FieldReservation struct {
	ReservationID string    `json:"reservationid" bson:"reservationid"`
	FieldID       string    `json:"field" bson:"field"`
	FullName      string    `json:"fullName" bson:"fullName"`
	Phone         string    `json:"phone" bson:"phone"`
	Date          string    `json:"date" bson:"date"`     // YYYY-MM-DD
	Slot          string    `json:"slot" bson:"slot"`     // e.g. "18:00-19:00"
	Status        string    `json:"status" bson:"status"` // pending, confirmed, canceled
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`

	Field *Field `json:"fieldDetails,omitempty" bson:"-"`
}

type HallReservation struct {
	ReservationID string    `json:"reservationid" bson:"reservationid"`
	HallID        string    `json:"hall" bson:"hall"`
	FullName      string    `json:"fullName" bson:"fullName"`
	Phone         string    `json:"phone" bson:"phone"`
	Date          string    `json:"date" bson:"date"`
	Occasion      string    `json:"occasion,omitempty" bson:"occasion,omitempty"`
	Status        string    `json:"status" bson:"status"` // pending, confirmed, canceled, blocked
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`

	Hall *Hall `json:"hallDetails,omitempty" bson:"-"`
}
