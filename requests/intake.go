// Package requests handles guest-submitted booking and service forms. Records
// are persisted first; the host notification is fire-and-forget and its
// failure is invisible to the guest.
package requests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lapillo/catalog"
	"lapillo/db"
	"lapillo/models"
	"lapillo/notify"
	"lapillo/utils"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

// Form binds one request kind to its collection and notification shape.
type Form[T any] struct {
	coll    *mongo.Collection
	idKey   string // response key: booking_id / request_id / ticket_id
	subject string
	fields  func(T) []notify.Field
	sink    notify.Sink
}

func NewForm[T any](coll *mongo.Collection, idKey, subject string, fields func(T) []notify.Field, sink notify.Sink) *Form[T] {
	return &Form[T]{coll: coll, idKey: idKey, subject: subject, fields: fields, sink: sink}
}

// Submit validates the payload shape only: referenced entity ids are accepted
// without an existence check and the display name is denormalized as sent.
func (f *Form[T]) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	doc, err := catalog.Doc(payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode request")
		return
	}
	id := utils.GetUUID()
	doc["id"] = id
	doc["status"] = "pending"
	doc["created_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := f.coll.InsertOne(ctx, doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save request")
		return
	}

	// Once the record is durably stored the guest sees success; the
	// notification outcome is logs-only.
	f.sink.Notify(f.subject, f.fields(payload))

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, f.idKey: id})
}

// List serves the per-collection admin view.
func (f *Form[T]) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[T](ctx, f.coll, bson.M{}, 100)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// TicketForm is the support-ticket variant: alongside the internal id it
// assigns a human-readable reference for phone/WhatsApp follow-up.
type TicketForm struct {
	coll *mongo.Collection
	sink notify.Sink
}

func NewTicketForm(coll *mongo.Collection, sink notify.Sink) *TicketForm {
	return &TicketForm{coll: coll, sink: sink}
}

// TicketNumber builds a reference like TL-20260829-K4QZ.
func TicketNumber(now time.Time) string {
	suffix := strings.ToUpper(utils.NewToken(4))
	return fmt.Sprintf("TL-%s-%s", now.Format("20060102"), suffix)
}

func (f *TicketForm) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload models.SupportTicket
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	now := time.Now().UTC()
	doc, err := catalog.Doc(payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode request")
		return
	}
	id := utils.GetUUID()
	number := TicketNumber(now)
	doc["id"] = id
	doc["ticket_number"] = number
	doc["status"] = "pending"
	doc["created_at"] = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := f.coll.InsertOne(ctx, doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save request")
		return
	}

	f.sink.Notify("Nuova segnalazione "+number, []notify.Field{
		{Label: "Ticket", Value: number},
		{Label: "Struttura", Value: payload.PropertySlug},
		{Label: "Problema", Value: payload.Description},
		{Label: "Urgenza", Value: payload.Urgency},
		{Label: "Ospite", Value: payload.GuestName},
		{Label: "Telefono", Value: payload.GuestPhone},
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":       true,
		"ticket_id":     id,
		"ticket_number": number,
	})
}

func (f *TicketForm) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.SupportTicket](ctx, f.coll, bson.M{}, 100)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// Intake groups every guest-facing form.
type Intake struct {
	Rentals     *Form[models.RentalBooking]
	Beaches     *Form[models.BeachBooking]
	Restaurants *Form[models.RestaurantBooking]
	Experiences *Form[models.ExperienceBooking]
	Nightlife   *Form[models.NightlifeBooking]
	Transports  *Form[models.TransportRequest]
	Extras      *Form[models.ExtraServiceRequest]
	Tickets     *TicketForm
}

func NewIntake(d *db.Database, sink notify.Sink) *Intake {
	return &Intake{
		Rentals: NewForm(d.RentalBookings, "booking_id", "Nuova prenotazione noleggio",
			func(b models.RentalBooking) []notify.Field {
				return []notify.Field{
					{Label: "Noleggio", Value: b.RentalName},
					{Label: "Ospite", Value: b.GuestName + " " + b.GuestSurname},
					{Label: "Telefono", Value: b.GuestPhone},
					{Label: "Dal", Value: b.StartDate},
					{Label: "Al", Value: b.EndDate},
					{Label: "Note", Value: b.Notes},
				}
			}, sink),
		Beaches: NewForm(d.BeachBookings, "booking_id", "Nuova prenotazione spiaggia",
			func(b models.BeachBooking) []notify.Field {
				return []notify.Field{
					{Label: "Spiaggia", Value: b.BeachName},
					{Label: "Ospite", Value: b.GuestName + " " + b.GuestSurname},
					{Label: "Telefono", Value: b.GuestPhone},
					{Label: "Data", Value: b.Date},
					{Label: "Durata", Value: b.Duration},
					{Label: "Note", Value: b.Notes},
				}
			}, sink),
		Restaurants: NewForm(d.RestaurantBookings, "booking_id", "Nuova prenotazione ristorante",
			func(b models.RestaurantBooking) []notify.Field {
				return []notify.Field{
					{Label: "Ristorante", Value: b.RestaurantName},
					{Label: "Ospite", Value: b.GuestName + " " + b.GuestSurname},
					{Label: "Telefono", Value: b.GuestPhone},
					{Label: "Data", Value: b.Date + " " + b.Time},
					{Label: "Persone", Value: strconv.Itoa(b.NumPeople)},
					{Label: "Note", Value: b.Notes},
				}
			}, sink),
		Experiences: NewForm(d.ExperienceBookings, "booking_id", "Nuova prenotazione esperienza",
			func(b models.ExperienceBooking) []notify.Field {
				return []notify.Field{
					{Label: "Esperienza", Value: b.ExperienceName},
					{Label: "Ospite", Value: b.GuestName + " " + b.GuestSurname},
					{Label: "Telefono", Value: b.GuestPhone},
					{Label: "Data", Value: b.Date + " " + b.Time},
					{Label: "Persone", Value: strconv.Itoa(b.NumPeople)},
					{Label: "Note", Value: b.Notes},
				}
			}, sink),
		Nightlife: NewForm(d.NightlifeBookings, "booking_id", "Nuova prenotazione serata",
			func(b models.NightlifeBooking) []notify.Field {
				return []notify.Field{
					{Label: "Evento", Value: b.EventName},
					{Label: "Ospite", Value: b.GuestName},
					{Label: "Telefono", Value: b.GuestPhone},
					{Label: "Pacchetto", Value: b.Package},
					{Label: "Persone", Value: strconv.Itoa(b.NumPeople)},
					{Label: "Punto di ritiro", Value: b.PickupPoint},
				}
			}, sink),
		Transports: NewForm(d.TransportRequests, "request_id", "Nuova richiesta trasporto",
			func(t models.TransportRequest) []notify.Field {
				return []notify.Field{
					{Label: "Ospite", Value: t.GuestName + " " + t.GuestSurname},
					{Label: "Telefono", Value: t.GuestPhone},
					{Label: "Data", Value: t.Date},
					{Label: "Persone", Value: strconv.Itoa(t.NumPeople)},
					{Label: "Tragitto", Value: t.Route},
					{Label: "Note", Value: t.Notes},
				}
			}, sink),
		Extras: NewForm(d.ExtraServiceRequests, "request_id", "Nuova richiesta servizio extra",
			func(e models.ExtraServiceRequest) []notify.Field {
				return []notify.Field{
					{Label: "Struttura", Value: e.PropertySlug},
					{Label: "Servizio", Value: e.ServiceType},
					{Label: "Ospite", Value: e.GuestName + " " + e.GuestSurname},
					{Label: "Telefono", Value: e.GuestPhone},
					{Label: "Data", Value: e.Date},
					{Label: "Note", Value: e.Notes},
				}
			}, sink),
		Tickets: NewTicketForm(d.SupportTickets, sink),
	}
}
