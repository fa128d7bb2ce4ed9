package models

import "time"

type Event struct {
	EventID             string    `json:"eventid" bson:"eventid"`
	Title               string    `json:"title" bson:"title"`
	Description         string    `json:"description" bson:"description"`
	Date                string    `json:"date" bson:"date"` // YYYY-MM-DD
	StartTime           string    `json:"startTime" bson:"startTime"`
	EndTime             string    `json:"endTime" bson:"endTime"`
	MaxCapacity         int       `json:"maxCapacity" bson:"maxCapacity"`
	CurrentReservations int       `json:"currentReservations" bson:"currentReservations"`
	Price               float64   `json:"price,omitempty" bson:"price,omitempty"`
	Banner              string    `json:"banner,omitempty" bson:"banner,omitempty"`
	IsActive            bool      `json:"isActive" bson:"isActive"`
	IsFeatured          bool      `json:"isFeatured" bson:"isFeatured"`
	CreatedAt           time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt" bson:"updatedAt"`
}

type EventReservation struct {
	ReservationID string    `json:"reservationid" bson:"reservationid"`
	EventID       string    `json:"event" bson:"event"`
	FullName      string    `json:"fullName" bson:"fullName"`
	Phone         string    `json:"phone" bson:"phone"`
	Attendees     int       `json:"attendees" bson:"attendees"`
	Status        string    `json:"status" bson:"status"` // pending, confirmed, canceled
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`

	// Resolved parent event, filled on reads only.
	Event *Event `json:"eventDetails,omitempty" bson:"-"`
}
