package requests

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"lapillo/db"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestTicketNumberFormat(t *testing.T) {
	now := time.Date(2025, 8, 14, 10, 30, 0, 0, time.UTC)
	number := TicketNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^TL-20250814-[A-Z0-9]{4}$`), number)
}

func TestTicketNumberVaries(t *testing.T) {
	now := time.Now().UTC()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[TicketNumber(now)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestAliasesClosedSet(t *testing.T) {
	expected := map[string]string{
		"rental":     "rental_bookings",
		"beach":      "beach_bookings",
		"restaurant": "restaurant_bookings",
		"experience": "experience_bookings",
		"nightlife":  "nightlife_bookings",
		"transport":  "transport_requests",
		"ticket":     "support_tickets",
		"extra":      "extra_service_requests",
	}
	assert.Equal(t, expected, Aliases)
}

func TestNewAdminCoversEveryAlias(t *testing.T) {
	admin := NewAdmin(&db.Database{})
	assert.Len(t, admin.colls, len(Aliases))
	for alias := range Aliases {
		_, ok := admin.colls[alias]
		assert.True(t, ok, "missing handle for alias %q", alias)
	}
}

func TestUpdateStatusRejectsUnknownAlias(t *testing.T) {
	admin := NewAdmin(&db.Database{})

	// The alias gate fires before any database access, so a zero-value
	// Database is safe here.
	r := httptest.NewRequest(http.MethodPut, "/api/admin/request-status/bogus/some-id?status=done", nil)
	w := httptest.NewRecorder()
	admin.UpdateStatus(w, r, httprouter.Params{
		{Key: "collection", Value: "bogus"},
		{Key: "id", Value: "some-id"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	admin := NewAdmin(&db.Database{})

	r := httptest.NewRequest(http.MethodPut, "/api/admin/request-status/rental/some-id", nil)
	w := httptest.NewRecorder()
	admin.UpdateStatus(w, r, httprouter.Params{
		{Key: "collection", Value: "rental"},
		{Key: "id", Value: "some-id"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
