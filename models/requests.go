package models

import "time"

// Guest-submitted request records. The referenced entity's display name is
// denormalized at submission time: if the admin later renames or deletes the
// entity, the historical request still reads the way the guest saw it.
// Referenced ids are never checked for existence.

type RentalBooking struct {
	ID           string    `json:"id" bson:"id"`
	RentalID     string    `json:"rental_id" bson:"rental_id" validate:"required"`
	RentalName   string    `json:"rental_name" bson:"rental_name" validate:"required"`
	GuestName    string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestSurname string    `json:"guest_surname,omitempty" bson:"guest_surname,omitempty"`
	GuestPhone   string    `json:"guest_phone" bson:"guest_phone" validate:"required"`
	StartDate    string    `json:"start_date" bson:"start_date" validate:"required"`
	EndDate      string    `json:"end_date" bson:"end_date"`
	DurationType string    `json:"duration_type,omitempty" bson:"duration_type,omitempty"`
	Delivery     bool      `json:"delivery" bson:"delivery"`
	Pickup       bool      `json:"pickup" bson:"pickup"`
	TotalPrice   string    `json:"total_price,omitempty" bson:"total_price,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	BookingToken string    `json:"booking_token,omitempty" bson:"booking_token,omitempty"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

type BeachBooking struct {
	ID            string    `json:"id" bson:"id"`
	BeachID       string    `json:"beach_id" bson:"beach_id" validate:"required"`
	BeachName     string    `json:"beach_name" bson:"beach_name" validate:"required"`
	GuestName     string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestSurname  string    `json:"guest_surname,omitempty" bson:"guest_surname,omitempty"`
	GuestPhone    string    `json:"guest_phone" bson:"guest_phone" validate:"required"`
	Date          string    `json:"date" bson:"date" validate:"required"`
	Duration      string    `json:"duration,omitempty" bson:"duration,omitempty"` // mattina, pomeriggio, intera
	RowPreference string    `json:"row_preference,omitempty" bson:"row_preference,omitempty"`
	UmbrellaType  string    `json:"umbrella_type,omitempty" bson:"umbrella_type,omitempty"`
	NumPeople     int       `json:"num_people,omitempty" bson:"num_people,omitempty"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	BookingToken  string    `json:"booking_token,omitempty" bson:"booking_token,omitempty"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

type RestaurantBooking struct {
	ID             string    `json:"id" bson:"id"`
	RestaurantID   string    `json:"restaurant_id" bson:"restaurant_id" validate:"required"`
	RestaurantName string    `json:"restaurant_name" bson:"restaurant_name" validate:"required"`
	GuestName      string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestSurname   string    `json:"guest_surname,omitempty" bson:"guest_surname,omitempty"`
	GuestPhone     string    `json:"guest_phone" bson:"guest_phone" validate:"required"`
	Date           string    `json:"date" bson:"date" validate:"required"`
	Time           string    `json:"time" bson:"time" validate:"required"`
	NumPeople      int       `json:"num_people" bson:"num_people" validate:"required,min=1"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	BookingToken   string    `json:"booking_token,omitempty" bson:"booking_token,omitempty"`
	Status         string    `json:"status" bson:"status"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

type ExperienceBooking struct {
	ID             string    `json:"id" bson:"id"`
	ExperienceID   string    `json:"experience_id" bson:"experience_id" validate:"required"`
	ExperienceName string    `json:"experience_name" bson:"experience_name" validate:"required"`
	GuestName      string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestSurname   string    `json:"guest_surname,omitempty" bson:"guest_surname,omitempty"`
	GuestPhone     string    `json:"guest_phone" bson:"guest_phone" validate:"required"`
	Date           string    `json:"date" bson:"date" validate:"required"`
	Time           string    `json:"time,omitempty" bson:"time,omitempty"`
	NumPeople      int       `json:"num_people" bson:"num_people" validate:"required,min=1"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	BookingToken   string    `json:"booking_token,omitempty" bson:"booking_token,omitempty"`
	Status         string    `json:"status" bson:"status"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

type NightlifeBooking struct {
	ID           string    `json:"id" bson:"id"`
	EventID      string    `json:"event_id" bson:"event_id" validate:"required"`
	EventName    string    `json:"event_name" bson:"event_name" validate:"required"`
	GuestName    string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestPhone   string    `json:"guest_phone" bson:"guest_phone" validate:"required"`
	Package      string    `json:"package" bson:"package"` // entry_only, entry_transport
	NumPeople    int       `json:"num_people" bson:"num_people" validate:"required,min=1"`
	PickupPoint  string    `json:"pickup_point,omitempty" bson:"pickup_point,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	BookingToken string    `json:"booking_token,omitempty" bson:"booking_token,omitempty"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

type TransportRequest struct {
	ID            string    `json:"id" bson:"id"`
	TransportType string    `json:"transport_type,omitempty" bson:"transport_type,omitempty"`
	GuestName     string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestSurname  string    `json:"guest_surname,omitempty" bson:"guest_surname,omitempty"`
	GuestPhone    string    `json:"guest_phone" bson:"guest_phone" validate:"required"`
	Date          string    `json:"date" bson:"date" validate:"required"`
	NumPeople     int       `json:"num_people" bson:"num_people" validate:"required,min=1"`
	Route         string    `json:"route" bson:"route" validate:"required"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	BookingToken  string    `json:"booking_token,omitempty" bson:"booking_token,omitempty"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

type SupportTicket struct {
	ID                string    `json:"id" bson:"id"`
	TicketNumber      string    `json:"ticket_number" bson:"ticket_number"`
	PropertySlug      string    `json:"property_slug" bson:"property_slug" validate:"required"`
	Description       string    `json:"description" bson:"description" validate:"required"`
	Urgency           string    `json:"urgency" bson:"urgency"` // basso, medio, alto
	ContactPreference string    `json:"contact_preference,omitempty" bson:"contact_preference,omitempty"`
	GuestName         string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestPhone        string    `json:"guest_phone" bson:"guest_phone" validate:"required"`
	BookingToken      string    `json:"booking_token,omitempty" bson:"booking_token,omitempty"`
	Status            string    `json:"status" bson:"status"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

type ExtraServiceRequest struct {
	ID           string    `json:"id" bson:"id"`
	PropertySlug string    `json:"property_slug" bson:"property_slug" validate:"required"`
	ServiceType  string    `json:"service_type" bson:"service_type" validate:"required"`
	GuestName    string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestSurname string    `json:"guest_surname,omitempty" bson:"guest_surname,omitempty"`
	GuestPhone   string    `json:"guest_phone" bson:"guest_phone" validate:"required"`
	Date         string    `json:"date,omitempty" bson:"date,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	BookingToken string    `json:"booking_token,omitempty" bson:"booking_token,omitempty"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// GuestBooking is the access-link record. The token is the guest's only
// credential; validity against the stay window is derived per request, never
// stored.
type GuestBooking struct {
	ID           string    `json:"id" bson:"id"`
	Token        string    `json:"token" bson:"token"`
	PropertyID   string    `json:"property_id" bson:"property_id" validate:"required"`
	PropertySlug string    `json:"property_slug" bson:"property_slug" validate:"required"`
	PropertyName string    `json:"property_name" bson:"property_name" validate:"required"`
	GuestName    string    `json:"guest_name" bson:"guest_name" validate:"required"`
	GuestSurname string    `json:"guest_surname,omitempty" bson:"guest_surname,omitempty"`
	NumGuests    int       `json:"num_guests" bson:"num_guests" validate:"required,min=1"`
	RoomNumber   string    `json:"room_number,omitempty" bson:"room_number,omitempty"`
	CheckinDate  string    `json:"checkin_date" bson:"checkin_date" validate:"required"`
	CheckoutDate string    `json:"checkout_date" bson:"checkout_date" validate:"required"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// AdminUser is created only by the seed loader; email is the login identifier.
type AdminUser struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Name         string    `json:"name" bson:"name"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
