package availability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lapillo/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestRentalAvailability(h *Handler, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/rentals/r1/availability?"+query, nil)
	w := httptest.NewRecorder()
	h.RentalAvailability(w, r, httprouter.Params{{Key: "id", Value: "r1"}})
	return w
}

func requestTimeSlots(h *Handler, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/restaurants/r1/time-slots?"+query, nil)
	w := httptest.NewRecorder()
	h.RestaurantTimeSlots(w, r, httprouter.Params{{Key: "id", Value: "r1"}})
	return w
}

func date(s string) time.Time {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRentalDaysAllFree(t *testing.T) {
	availability, fully := RentalDays(date("2026-01-20"), date("2026-01-22"), nil)
	assert.True(t, fully)
	assert.Equal(t, map[string]bool{
		"2026-01-20": true,
		"2026-01-21": true,
		"2026-01-22": true,
	}, availability)
}

func TestRentalDaysBookingBlocksRange(t *testing.T) {
	bookings := []models.RentalBooking{
		{StartDate: "2026-01-21", EndDate: "2026-01-23", Status: "pending"},
	}
	availability, fully := RentalDays(date("2026-01-20"), date("2026-01-22"), bookings)
	assert.False(t, fully)
	assert.True(t, availability["2026-01-20"])
	assert.False(t, availability["2026-01-21"])
	assert.False(t, availability["2026-01-22"])
}

func TestRentalDaysSingleDayBooking(t *testing.T) {
	// No end_date means the booking covers its start day only.
	bookings := []models.RentalBooking{
		{StartDate: "2026-01-21", Status: "confirmed"},
	}
	availability, fully := RentalDays(date("2026-01-20"), date("2026-01-22"), bookings)
	assert.False(t, fully)
	assert.True(t, availability["2026-01-20"])
	assert.False(t, availability["2026-01-21"])
	assert.True(t, availability["2026-01-22"])
}

func TestRentalDaysCancelledIgnored(t *testing.T) {
	bookings := []models.RentalBooking{
		{StartDate: "2026-01-20", EndDate: "2026-01-22", Status: "cancelled"},
	}
	_, fully := RentalDays(date("2026-01-20"), date("2026-01-22"), bookings)
	assert.True(t, fully)
}

func TestRentalDaysMalformedBookingIgnored(t *testing.T) {
	bookings := []models.RentalBooking{
		{StartDate: "domani", Status: "pending"},
	}
	_, fully := RentalDays(date("2026-01-20"), date("2026-01-20"), bookings)
	assert.True(t, fully)
}

func TestSlotsForEmpty(t *testing.T) {
	slots := SlotsFor(nil)
	require.Len(t, slots, len(slotTimes))
	for _, s := range slots {
		assert.Equal(t, slotCovers, s.MaxCovers)
		assert.Equal(t, slotCovers, s.AvailableCovers)
		assert.True(t, s.Available)
	}
}

func TestSlotsForSubtractsCovers(t *testing.T) {
	bookings := []models.RestaurantBooking{
		{Time: "20:00", NumPeople: 4, Status: "pending"},
		{Time: "20:00", NumPeople: 2, Status: "confirmed"},
	}
	slots := SlotsFor(bookings)

	var at20 Slot
	for _, s := range slots {
		if s.Time == "20:00" {
			at20 = s
		}
	}
	assert.Equal(t, slotCovers-6, at20.AvailableCovers)
	assert.True(t, at20.Available)
}

func TestSlotsForFullSlot(t *testing.T) {
	bookings := []models.RestaurantBooking{
		{Time: "21:00", NumPeople: slotCovers + 5, Status: "pending"},
	}
	slots := SlotsFor(bookings)

	for _, s := range slots {
		if s.Time == "21:00" {
			assert.Equal(t, 0, s.AvailableCovers)
			assert.False(t, s.Available)
		}
	}
}

func TestSlotsForCancelledIgnored(t *testing.T) {
	bookings := []models.RestaurantBooking{
		{Time: "19:30", NumPeople: 10, Status: "cancelled"},
	}
	slots := SlotsFor(bookings)
	for _, s := range slots {
		if s.Time == "19:30" {
			assert.Equal(t, slotCovers, s.AvailableCovers)
		}
	}
}

func TestRentalAvailabilityRejectsBadRange(t *testing.T) {
	h := &Handler{}

	// Bad dates and inverted ranges fail before any database access.
	for _, query := range []string{
		"",
		"start_date=2026-01-20",
		"start_date=oggi&end_date=2026-01-22",
		"start_date=2026-01-22&end_date=2026-01-20",
		"start_date=2026-01-01&end_date=2026-12-31",
	} {
		w := requestRentalAvailability(h, query)
		assert.Equal(t, 400, w.Code, "query %q", query)
	}
}

func TestRestaurantTimeSlotsRejectsBadDate(t *testing.T) {
	h := &Handler{}
	w := requestTimeSlots(h, "date=stasera")
	assert.Equal(t, 400, w.Code)
}
