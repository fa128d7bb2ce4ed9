package alerts

import (
	"context"
	"net/http"
	"time"

	"greenvale/contact"
	"greenvale/events"
	"greenvale/fields"
	"greenvale/halls"
	"greenvale/notifications"
	"greenvale/orders"
	"greenvale/utils"

	"github.com/julienschmidt/httprouter"
)

// DefaultSources lists the six pending feeds in alert precedence order:
// orders first, then hall and field reservations, then the generic rest.
func DefaultSources() []Source {
	return []Source{
		{Name: "orders", Message: "New pending order", Fetch: orders.CountPending},
		{Name: "hallReservations", Message: "New hall reservation request", Fetch: halls.CountPending},
		{Name: "fieldReservations", Message: "New field reservation request", Fetch: fields.CountPending},
		{Name: "eventReservations", Message: "New pending items", Fetch: events.CountPending},
		{Name: "messages", Message: "New pending items", Fetch: contact.CountNew},
		{Name: "notifications", Message: "New pending items", Fetch: notifications.CountUnread},
	}
}

// GetCounts serves the dashboard badge numbers on demand.
func GetCounts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	counts := make(map[string]int)
	total := 0
	for _, src := range DefaultSources() {
		n, err := src.Fetch(ctx)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count "+src.Name)
			return
		}
		counts[src.Name] = n
		total += n
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"counts": counts, "total": total})
}

// ResetHandler zeroes the poller snapshot, used when the admin session goes
// idle so the next activity burst is not compared against stale counts.
func ResetHandler(p *Poller) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		p.Reset()
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Alert snapshot reset"})
	}
}
