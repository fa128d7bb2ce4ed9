package models

import "time"

type MenuCategory struct {
	CategoryID string    `json:"categoryid" bson:"categoryid"`
	Name       string    `json:"name" bson:"name"`
	Order      int       `json:"order" bson:"order"`
	IsActive   bool      `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

type MenuItem struct {
	ItemID      string    `json:"itemid" bson:"itemid"`
	CategoryID  string    `json:"category" bson:"category"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Photo       string    `json:"photo,omitempty" bson:"photo,omitempty"`
	Thumb       string    `json:"thumb,omitempty" bson:"thumb,omitempty"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PublicMenuCategory is the composite shape served to the café page.
type PublicMenuCategory struct {
	MenuCategory `bson:",inline"`
	Items        []MenuItem `json:"items" bson:"items"`
}
