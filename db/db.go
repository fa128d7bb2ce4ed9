package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection              *mongo.Collection
	EventsCollection            *mongo.Collection
	EventReservationsCollection *mongo.Collection
	FieldsCollection            *mongo.Collection
	FieldReservationsCollection *mongo.Collection
	HallsCollection             *mongo.Collection
	HallReservationsCollection  *mongo.Collection
	MenuCategoriesCollection    *mongo.Collection
	MenuItemsCollection         *mongo.Collection
	OrdersCollection            *mongo.Collection
	NotificationsCollection     *mongo.Collection
	MessagesCollection          *mongo.Collection
	AuditCollection             *mongo.Collection
	AnalyticsCollection         *mongo.Collection
	SettingsCollection          *mongo.Collection
	Client                      *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("parkdb")
	UserCollection = database.Collection("users")
	EventsCollection = database.Collection("events")
	EventReservationsCollection = database.Collection("eventreservations")
	FieldsCollection = database.Collection("fields")
	FieldReservationsCollection = database.Collection("fieldreservations")
	HallsCollection = database.Collection("halls")
	HallReservationsCollection = database.Collection("hallreservations")
	MenuCategoriesCollection = database.Collection("menucategories")
	MenuItemsCollection = database.Collection("menuitems")
	OrdersCollection = database.Collection("orders")
	NotificationsCollection = database.Collection("notifications")
	MessagesCollection = database.Collection("messages")
	AuditCollection = database.Collection("auditlogs")
	AnalyticsCollection = database.Collection("analytics")
	SettingsCollection = database.Collection("settings")
}
