// Package availability derives read-only availability views from the stored
// booking collections. Nothing here writes: a request marks capacity as used
// the moment it is stored, and cancelling it frees the capacity again.
package availability

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

const dateLayout = "2006-01-02"

// Longest queryable rental range; the picker never asks for more.
const maxRangeDays = 62

type Handler struct {
	rentals            *mongo.Collection
	rentalBookings     *mongo.Collection
	restaurants        *mongo.Collection
	restaurantBookings *mongo.Collection
}

func NewHandler(d *db.Database) *Handler {
	return &Handler{
		rentals:            d.Rentals,
		rentalBookings:     d.RentalBookings,
		restaurants:        d.Restaurants,
		restaurantBookings: d.RestaurantBookings,
	}
}

// RentalDays marks each day in [start, end] free or busy against the bookings.
// A booking covers start_date through end_date inclusive; cancelled bookings
// do not count.
func RentalDays(start, end time.Time, bookings []models.RentalBooking) (map[string]bool, bool) {
	availability := map[string]bool{}
	fully := true

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		free := true
		for _, b := range bookings {
			if b.Status == "cancelled" {
				continue
			}
			from, err := time.Parse(dateLayout, b.StartDate)
			if err != nil {
				continue
			}
			to := from
			if b.EndDate != "" {
				if parsed, err := time.Parse(dateLayout, b.EndDate); err == nil {
					to = parsed
				}
			}
			if !day.Before(from) && !day.After(to) {
				free = false
				break
			}
		}
		availability[day.Format(dateLayout)] = free
		if !free {
			fully = false
		}
	}
	return availability, fully
}

// RentalAvailability handles GET /api/rentals/{id}/availability.
func (h *Handler) RentalAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	q := r.URL.Query()
	start, errStart := time.Parse(dateLayout, q.Get("start_date"))
	end, errEnd := time.Parse(dateLayout, q.Get("end_date"))
	if errStart != nil || errEnd != nil || end.Before(start) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date range")
		return
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		utils.RespondWithError(w, http.StatusBadRequest, "Date range too large")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	if err := h.rentals.FindOne(ctx, bson.M{"id": id}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Rental not found")
		return
	}

	bookings, err := utils.FindAndDecode[models.RentalBooking](ctx, h.rentalBookings, bson.M{"rental_id": id}, 500)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}

	availability, fully := RentalDays(start, end, bookings)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"rental_id":       id,
		"availability":    availability,
		"fully_available": fully,
	})
}

// Slot is one bookable service window at a restaurant.
type Slot struct {
	Time            string `json:"time"`
	MaxCovers       int    `json:"max_covers"`
	AvailableCovers int    `json:"available_covers"`
	Available       bool   `json:"available"`
}

// Lunch and dinner service, half-hour steps.
var slotTimes = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00",
}

const slotCovers = 40

// SlotsFor subtracts the covers of the day's non-cancelled bookings from each
// service window. Bookings at off-grid times consume nothing.
func SlotsFor(bookings []models.RestaurantBooking) []Slot {
	taken := map[string]int{}
	for _, b := range bookings {
		if b.Status == "cancelled" {
			continue
		}
		taken[b.Time] += b.NumPeople
	}

	slots := make([]Slot, 0, len(slotTimes))
	for _, ts := range slotTimes {
		left := slotCovers - taken[ts]
		if left < 0 {
			left = 0
		}
		slots = append(slots, Slot{
			Time:            ts,
			MaxCovers:       slotCovers,
			AvailableCovers: left,
			Available:       left > 0,
		})
	}
	return slots
}

// RestaurantTimeSlots handles GET /api/restaurants/{id}/time-slots.
func (h *Handler) RestaurantTimeSlots(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse(dateLayout, date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	if err := h.restaurants.FindOne(ctx, bson.M{"id": id}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Restaurant not found")
		return
	}

	bookings, err := utils.FindAndDecode[models.RestaurantBooking](ctx, h.restaurantBookings, bson.M{"restaurant_id": id, "date": date}, 500)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch time slots")
		return
	}

	slots := SlotsFor(bookings)
	available := false
	for _, s := range slots {
		if s.Available {
			available = true
			break
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"available": available,
		"slots":     slots,
	})
}
