package requests

import (
	"context"
	"net/http"
	"time"

	"lapillo/db"
	"lapillo/models"
	"lapillo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Aliases maps the short collection names accepted by the status-update
// endpoint. The set is closed: anything else is rejected before the id is
// looked up.
var Aliases = map[string]string{
	"rental":     "rental_bookings",
	"beach":      "beach_bookings",
	"restaurant": "restaurant_bookings",
	"experience": "experience_bookings",
	"nightlife":  "nightlife_bookings",
	"transport":  "transport_requests",
	"ticket":     "support_tickets",
	"extra":      "extra_service_requests",
}

// Admin serves the host-side views over all request collections.
type Admin struct {
	db    *db.Database
	colls map[string]*mongo.Collection
}

func NewAdmin(d *db.Database) *Admin {
	// Derive the handle set from Aliases so the two can never drift.
	colls := make(map[string]*mongo.Collection, len(Aliases))
	for alias, name := range Aliases {
		colls[alias] = d.Collection(name)
	}
	return &Admin{db: d, colls: colls}
}

// AllRequests returns every collection keyed by its storage name, newest
// first, so the dashboard renders from a single round trip.
func (a *Admin) AllRequests(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	out := utils.M{}
	var err error
	if out["rental_bookings"], err = utils.FindAndDecode[models.RentalBooking](ctx, a.db.RentalBookings, bson.M{}, 100); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	if out["beach_bookings"], err = utils.FindAndDecode[models.BeachBooking](ctx, a.db.BeachBookings, bson.M{}, 100); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	if out["restaurant_bookings"], err = utils.FindAndDecode[models.RestaurantBooking](ctx, a.db.RestaurantBookings, bson.M{}, 100); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	if out["experience_bookings"], err = utils.FindAndDecode[models.ExperienceBooking](ctx, a.db.ExperienceBookings, bson.M{}, 100); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	if out["nightlife_bookings"], err = utils.FindAndDecode[models.NightlifeBooking](ctx, a.db.NightlifeBookings, bson.M{}, 100); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	if out["transport_requests"], err = utils.FindAndDecode[models.TransportRequest](ctx, a.db.TransportRequests, bson.M{}, 100); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	if out["support_tickets"], err = utils.FindAndDecode[models.SupportTicket](ctx, a.db.SupportTickets, bson.M{}, 100); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	if out["extra_service_requests"], err = utils.FindAndDecode[models.ExtraServiceRequest](ctx, a.db.ExtraServiceRequests, bson.M{}, 100); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// UpdateStatus sets the free-form status on one request. The alias gate runs
// first, so a bogus collection name never touches the database.
func (a *Admin) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	coll, ok := a.colls[ps.ByName("collection")]
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid collection")
		return
	}
	status := r.URL.Query().Get("status")
	if status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := coll.UpdateOne(ctx, bson.M{"id": ps.ByName("id")}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Request not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "status": status})
}
