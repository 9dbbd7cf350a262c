package models

import "time"

// Reference entities. Ids are generated UUID strings; none use Mongo ObjectIDs.
// Category and status fields are free-text by convention, not validated enums.

type EmergencyContact struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Phone string `json:"phone" bson:"phone" validate:"required"`
}

type FAQEntry struct {
	Question string `json:"question" bson:"question" validate:"required"`
	Answer   string `json:"answer" bson:"answer" validate:"required"`
}

type ExtraService struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Price       string `json:"price" bson:"price"`
}

type Property struct {
	ID                   string             `json:"id" bson:"id"`
	Name                 string             `json:"name" bson:"name" validate:"required"`
	Slug                 string             `json:"slug" bson:"slug" validate:"required"`
	WifiName             string             `json:"wifi_name" bson:"wifi_name"`
	WifiPassword         string             `json:"wifi_password" bson:"wifi_password"`
	CheckinTime          string             `json:"checkin_time" bson:"checkin_time"`
	CheckinInstructions  string             `json:"checkin_instructions" bson:"checkin_instructions"`
	CheckoutTime         string             `json:"checkout_time" bson:"checkout_time"`
	CheckoutInstructions string             `json:"checkout_instructions" bson:"checkout_instructions"`
	HouseRules           []string           `json:"house_rules" bson:"house_rules"`
	HostName             string             `json:"host_name" bson:"host_name"`
	HostPhone            string             `json:"host_phone" bson:"host_phone"`
	EmergencyContacts    []EmergencyContact `json:"emergency_contacts" bson:"emergency_contacts"`
	FAQ                  []FAQEntry         `json:"faq" bson:"faq"`
	ExtraServices        []ExtraService     `json:"extra_services" bson:"extra_services"`
	ImageURL             string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
}

type Beach struct {
	ID            string `json:"id" bson:"id"`
	Name          string `json:"name" bson:"name" validate:"required"`
	Description   string `json:"description" bson:"description" validate:"required"`
	Distance      string `json:"distance" bson:"distance"`
	Category      string `json:"category" bson:"category"` // libera, attrezzata, family, giovani
	MapURL        string `json:"map_url" bson:"map_url"`
	ImageURL      string `json:"image_url" bson:"image_url"`
	IsRecommended bool   `json:"is_recommended" bson:"is_recommended"`
	ParkingInfo   string `json:"parking_info,omitempty" bson:"parking_info,omitempty"`
	BestTime      string `json:"best_time,omitempty" bson:"best_time,omitempty"`
	Tips          string `json:"tips,omitempty" bson:"tips,omitempty"`
	HasSunbeds    bool   `json:"has_sunbeds" bson:"has_sunbeds"`
}

type Restaurant struct {
	ID            string `json:"id" bson:"id"`
	Name          string `json:"name" bson:"name" validate:"required"`
	Description   string `json:"description" bson:"description" validate:"required"`
	Category      string `json:"category" bson:"category"` // carne, pesce, pizzeria, colazione
	Phone         string `json:"phone" bson:"phone"`
	MapURL        string `json:"map_url" bson:"map_url"`
	ImageURL      string `json:"image_url" bson:"image_url"`
	IsRecommended bool   `json:"is_recommended" bson:"is_recommended"`
	PriceRange    string `json:"price_range,omitempty" bson:"price_range,omitempty"`
	Hours         string `json:"hours,omitempty" bson:"hours,omitempty"`
}

type Experience struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name" validate:"required"`
	Description  string `json:"description" bson:"description" validate:"required"`
	Category     string `json:"category" bson:"category"` // barca, escursioni, nightlife, borghi
	PriceInfo    string `json:"price_info" bson:"price_info"`
	ContactPhone string `json:"contact_phone" bson:"contact_phone"`
	ImageURL     string `json:"image_url" bson:"image_url"`
	IsTop        bool   `json:"is_top" bson:"is_top"`
	Duration     string `json:"duration,omitempty" bson:"duration,omitempty"`
}

type Rental struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name" validate:"required"`
	Description string `json:"description" bson:"description" validate:"required"`
	DailyPrice  string `json:"daily_price" bson:"daily_price"`
	WeeklyPrice string `json:"weekly_price,omitempty" bson:"weekly_price,omitempty"`
	Rules       string `json:"rules" bson:"rules"`
	ImageURL    string `json:"image_url" bson:"image_url"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
}

type MapInfo struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name" validate:"required"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category"` // parcheggi, farmacia, guardia_medica, ...
	MapURL      string `json:"map_url" bson:"map_url"`
	Icon        string `json:"icon" bson:"icon"`
}

type Transport struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name" validate:"required"`
	Description  string `json:"description" bson:"description"`
	Category     string `json:"category" bson:"category"` // navette, ncc, gite
	ContactPhone string `json:"contact_phone" bson:"contact_phone"`
	PriceInfo    string `json:"price_info" bson:"price_info"`
}

type LocalEvent struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name" validate:"required"`
	Description string `json:"description" bson:"description"`
	Date        string `json:"date" bson:"date"`
	Time        string `json:"time,omitempty" bson:"time,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	ImageURL    string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

type NightlifeEvent struct {
	ID                 string `json:"id" bson:"id"`
	Name               string `json:"name" bson:"name" validate:"required"`
	Venue              string `json:"venue" bson:"venue" validate:"required"`
	Description        string `json:"description" bson:"description"`
	Date               string `json:"date" bson:"date"`
	Time               string `json:"time,omitempty" bson:"time,omitempty"`
	PriceEntry         string `json:"price_entry" bson:"price_entry"`
	PriceWithTransport string `json:"price_with_transport" bson:"price_with_transport"`
	ImageURL           string `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

type SupermarketService struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
}

type SupermarketHours struct {
	Weekdays string `json:"weekdays" bson:"weekdays"`
	Saturday string `json:"saturday" bson:"saturday"`
	Sunday   string `json:"sunday" bson:"sunday"`
}

// Supermarket is a singleton: the one shop the guide points guests to.
type Supermarket struct {
	ID          string               `json:"id" bson:"id"`
	Name        string               `json:"name" bson:"name" validate:"required"`
	Description string               `json:"description" bson:"description"`
	Distance    string               `json:"distance" bson:"distance"`
	Address     string               `json:"address" bson:"address"`
	Phone       string               `json:"phone" bson:"phone"`
	MapURL      string               `json:"map_url" bson:"map_url"`
	Images      []string             `json:"images" bson:"images"`
	Services    []SupermarketService `json:"services" bson:"services"`
	Hours       SupermarketHours     `json:"hours" bson:"hours"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
}

type Troubleshooting struct {
	ID       string `json:"id" bson:"id"`
	Title    string `json:"title" bson:"title" validate:"required"`
	Problem  string `json:"problem" bson:"problem"`
	Solution string `json:"solution" bson:"solution" validate:"required"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
}
