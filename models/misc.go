package models

import "time"

type ContactMessage struct {
	MessageID string    `json:"messageid" bson:"messageid"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Body      string    `json:"body" bson:"body"`
	Status    string    `json:"status" bson:"status"` // new, read
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type AuditLog struct {
	AuditID   string    `json:"auditid" bson:"auditid"`
	Action    string    `json:"action" bson:"action"`
	Entity    string    `json:"entity" bson:"entity"`
	EntityID  string    `json:"entityId,omitempty" bson:"entityId,omitempty"`
	Actor     string    `json:"actor,omitempty" bson:"actor,omitempty"`
	Details   string    `json:"details,omitempty" bson:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// DailyVisit holds one visit counter per calendar date.
type DailyVisit struct {
	Date  string `json:"date" bson:"date"` // YYYY-MM-DD, unique
	Count int    `json:"count" bson:"count"`
}

type ParkInfo struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
}

type OpeningHours struct {
	Weekdays string `json:"weekdays" bson:"weekdays"`
	Weekends string `json:"weekends" bson:"weekends"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
	Twitter   string `json:"twitter" bson:"twitter"`
}

type HomeText struct {
	Headline string `json:"headline" bson:"headline"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
	About    string `json:"about" bson:"about"`
}

// Settings is a singleton-style document.
type Settings struct {
	SettingsID   string       `json:"settingsid" bson:"settingsid"`
	ParkInfo     ParkInfo     `json:"parkInfo" bson:"parkInfo"`
	OpeningHours OpeningHours `json:"openingHours" bson:"openingHours"`
	SocialLinks  SocialLinks  `json:"socialLinks" bson:"socialLinks"`
	HomeText     HomeText     `json:"homeText" bson:"homeText"`
	UpdatedAt    time.Time    `json:"updatedAt" bson:"updatedAt"`
}
