package routes

import (
	"net/http"

	"greenvale/alerts"
	"greenvale/analytics"
	"greenvale/audit"
	"greenvale/auth"
	"greenvale/contact"
	"greenvale/events"
	"greenvale/fields"
	"greenvale/halls"
	"greenvale/menu"
	"greenvale/middleware"
	"greenvale/notifications"
	"greenvale/orders"
	"greenvale/ratelim"
	"greenvale/settings"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddEventsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/events", rl.Limit(events.GetEvents))
	router.POST("/api/events", middleware.Authenticate(events.CreateEvent))
	router.GET("/api/events/event/:eventid", events.GetEvent)
	router.PATCH("/api/events/event/:eventid", middleware.Authenticate(events.EditEvent))
	router.DELETE("/api/events/event/:eventid", middleware.Authenticate(events.DeleteEvent))

	router.GET("/api/events/reservations", middleware.Authenticate(events.GetReservations))
	router.POST("/api/events/reservations", rl.Limit(events.CreateReservation))
	router.PATCH("/api/events/reservations/:id/status", middleware.Authenticate(events.UpdateReservationStatus))
	router.DELETE("/api/events/reservations/:id", middleware.Authenticate(events.DeleteReservation))
}

func AddFieldRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/fields", rl.Limit(fields.GetFields))
	router.POST("/api/fields", middleware.Authenticate(fields.CreateField))
	router.PATCH("/api/fields/:id", middleware.Authenticate(fields.EditField))
	router.DELETE("/api/fields/:id", middleware.Authenticate(fields.DeleteField))

	router.GET("/api/fields-reservations", middleware.Authenticate(fields.GetReservations))
	router.POST("/api/fields-reservations", rl.Limit(fields.CreateReservation))
	router.PATCH("/api/fields-reservations/:id", middleware.Authenticate(fields.EditReservation))
	router.DELETE("/api/fields-reservations/:id", middleware.Authenticate(fields.DeleteReservation))
}

func AddHallRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/halls", rl.Limit(halls.GetHalls))
	router.POST("/api/halls", middleware.Authenticate(halls.CreateHall))
	router.PATCH("/api/halls/:id", middleware.Authenticate(halls.EditHall))
	router.DELETE("/api/halls/:id", middleware.Authenticate(halls.DeleteHall))

	router.GET("/api/hall-reservations", middleware.Authenticate(halls.GetReservations))
	router.POST("/api/hall-reservations", rl.Limit(halls.CreateReservation))
	router.PATCH("/api/hall-reservations/:id", middleware.Authenticate(halls.EditReservation))
	router.DELETE("/api/hall-reservations/:id", middleware.Authenticate(halls.DeleteReservation))
}

func AddMenuRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/menu", rl.Limit(menu.GetPublicMenu))

	router.GET("/api/menu/categories", menu.GetCategories)
	router.POST("/api/menu/categories", middleware.Authenticate(menu.CreateCategory))
	router.PUT("/api/menu/categories/:id", middleware.Authenticate(menu.EditCategory))
	router.PATCH("/api/menu/categories/reorder", middleware.Authenticate(menu.ReorderCategories))
	router.DELETE("/api/menu/categories/:id", middleware.Authenticate(menu.DeleteCategory))

	router.GET("/api/menu/items", menu.GetItems)
	router.POST("/api/menu/items", middleware.Authenticate(menu.CreateItem))
	router.PUT("/api/menu/items/:id", middleware.Authenticate(menu.EditItem))
	router.DELETE("/api/menu/items/:id", middleware.Authenticate(menu.DeleteItem))
	router.POST("/api/menu/items/:id/photo", middleware.Authenticate(menu.UploadItemPhoto))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(orders.CreateOrder))
	router.GET("/api/orders", middleware.Authenticate(orders.GetOrders))
	router.PATCH("/api/orders/:id/status", middleware.Authenticate(orders.UpdateOrderStatus))
	router.GET("/api/orders/:id/receipt", orders.PrintReceipt)
	router.GET("/api/tables/:table/qr", orders.TableQR)
}

func AddNotificationRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/notifications/call-waiter", rl.Limit(notifications.CallWaiter))
	router.POST("/api/notifications/request-bill", rl.Limit(notifications.RequestBill))
	router.GET("/api/notifications", middleware.Authenticate(notifications.GetNotifications))
	router.PATCH("/api/notifications/:id/read", middleware.Authenticate(notifications.MarkAsRead))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/messages", rl.Limit(contact.CreateMessage))
	router.GET("/api/messages", middleware.Authenticate(contact.GetMessages))
	router.PATCH("/api/messages/:id/read", middleware.Authenticate(contact.MarkAsRead))
}

func AddAuditRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/audit", middleware.Authenticate(audit.GetLogs))
	router.POST("/api/audit", middleware.Authenticate(audit.CreateLog))
}

func AddAnalyticsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/analytics/visit", rl.Limit(analytics.RecordVisit))
	router.GET("/api/analytics/today", analytics.GetToday)
	router.GET("/api/analytics/range", middleware.Authenticate(analytics.GetRange))
}

func AddSettingsRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/settings", settings.GetSettings)
	router.PUT("/api/settings", middleware.Authenticate(settings.UpdateSettings))
}

// AddAlertRoutes needs the running hub and poller, so it is wired from main.
func AddAlertRoutes(router *httprouter.Router, hub *alerts.Hub, poller *alerts.Poller) {
	router.GET("/api/alerts/ws", middleware.Authenticate(alerts.ServeWS(hub)))
	router.GET("/api/alerts/counts", middleware.Authenticate(alerts.GetCounts))
	router.POST("/api/alerts/reset", middleware.Authenticate(alerts.ResetHandler(poller)))
}

func RoutesWrapper(router *httprouter.Router, rl *ratelim.RateLimiter) {
	AddAuthRoutes(router, rl)
	AddEventsRoutes(router, rl)
	AddFieldRoutes(router, rl)
	AddHallRoutes(router, rl)
	AddMenuRoutes(router, rl)
	AddOrderRoutes(router, rl)
	AddNotificationRoutes(router, rl)
	AddContactRoutes(router, rl)
	AddAuditRoutes(router, rl)
	AddAnalyticsRoutes(router, rl)
	AddSettingsRoutes(router, rl)
	AddStaticRoutes(router)
}
