package routes

import (
	"lapillo/auth"
	"lapillo/availability"
	"lapillo/catalog"
	"lapillo/guestlink"
	"lapillo/middleware"
	"lapillo/models"
	"lapillo/properties"
	"lapillo/ratelim"
	"lapillo/requests"
	"lapillo/weather"

	"github.com/julienschmidt/httprouter"
)

// Handlers carries every constructed handler; main builds one and wires it in.
type Handlers struct {
	Auth   *auth.Handler
	AuthMW *middleware.Auth
	RL     *ratelim.RateLimiter

	Properties      *properties.Handler
	Beaches         *catalog.Resource[models.Beach]
	Restaurants     *catalog.Resource[models.Restaurant]
	Experiences     *catalog.Resource[models.Experience]
	Rentals         *catalog.Resource[models.Rental]
	MapInfo         *catalog.Resource[models.MapInfo]
	Transports      *catalog.Resource[models.Transport]
	LocalEvents     *catalog.Resource[models.LocalEvent]
	NightlifeEvents *catalog.Resource[models.NightlifeEvent]
	Troubleshooting *catalog.Resource[models.Troubleshooting]
	Supermarket     *catalog.Singleton[models.Supermarket]
	Availability    *availability.Handler

	Intake       *requests.Intake
	RequestAdmin *requests.Admin
	GuestLinks   *guestlink.Handler
	Weather      *weather.Client
	Seed         httprouter.Handle
}

func AddAuthRoutes(router *httprouter.Router, h *Handlers) {
	router.POST("/api/admin/login", h.RL.Limit(h.Auth.Login))
	router.GET("/api/admin/me", h.AuthMW.Authenticate(h.Auth.Me))
}

func AddPropertyRoutes(router *httprouter.Router, h *Handlers) {
	router.GET("/api/properties/:slug", h.Properties.GetBySlug)
	router.GET("/api/extra-services/:slug", h.Properties.GetExtraServices)

	router.GET("/api/admin/properties", h.AuthMW.Authenticate(h.Properties.List))
	router.POST("/api/admin/properties", h.AuthMW.Authenticate(h.Properties.Create))
	router.PUT("/api/admin/properties/:id", h.AuthMW.Authenticate(h.Properties.Update))
	router.DELETE("/api/admin/properties/:id", h.AuthMW.Authenticate(h.Properties.Delete))
}

func AddCatalogRoutes(router *httprouter.Router, h *Handlers) {
	addResource(router, h.AuthMW, "beaches", h.Beaches)
	addResource(router, h.AuthMW, "restaurants", h.Restaurants)
	addResource(router, h.AuthMW, "experiences", h.Experiences)
	addResource(router, h.AuthMW, "rentals", h.Rentals)
	addResource(router, h.AuthMW, "map-info", h.MapInfo)
	addResource(router, h.AuthMW, "transports", h.Transports)
	addResource(router, h.AuthMW, "local-events", h.LocalEvents)
	addResource(router, h.AuthMW, "nightlife-events", h.NightlifeEvents)
	addResource(router, h.AuthMW, "troubleshooting", h.Troubleshooting)

	router.GET("/api/nightlife-events/:id", h.NightlifeEvents.Get)

	router.GET("/api/supermarket", h.Supermarket.Get)
	router.PUT("/api/admin/supermarket", h.AuthMW.Authenticate(h.Supermarket.Put))

	router.GET("/api/rentals/:id/availability", h.Availability.RentalAvailability)
	router.GET("/api/restaurants/:id/time-slots", h.Availability.RestaurantTimeSlots)
}

// addResource mounts the shared catalogue surface: public read of the whole
// collection, everything else behind admin auth.
func addResource[T any](router *httprouter.Router, mw *middleware.Auth, kind string, res *catalog.Resource[T]) {
	router.GET("/api/"+kind, res.List)

	router.GET("/api/admin/"+kind, mw.Authenticate(res.List))
	router.POST("/api/admin/"+kind, mw.Authenticate(res.Create))
	router.GET("/api/admin/"+kind+"/:id", mw.Authenticate(res.Get))
	router.PUT("/api/admin/"+kind+"/:id", mw.Authenticate(res.Update))
	router.DELETE("/api/admin/"+kind+"/:id", mw.Authenticate(res.Delete))
}

func AddRequestRoutes(router *httprouter.Router, h *Handlers) {
	router.POST("/api/rental-bookings", h.RL.Limit(h.Intake.Rentals.Submit))
	router.POST("/api/beach-bookings", h.RL.Limit(h.Intake.Beaches.Submit))
	router.POST("/api/restaurant-bookings", h.RL.Limit(h.Intake.Restaurants.Submit))
	router.POST("/api/experience-bookings", h.RL.Limit(h.Intake.Experiences.Submit))
	router.POST("/api/nightlife-bookings", h.RL.Limit(h.Intake.Nightlife.Submit))
	router.POST("/api/transport-requests", h.RL.Limit(h.Intake.Transports.Submit))
	router.POST("/api/support-tickets", h.RL.Limit(h.Intake.Tickets.Submit))
	router.POST("/api/extra-service-requests", h.RL.Limit(h.Intake.Extras.Submit))

	router.GET("/api/admin/all-requests", h.AuthMW.Authenticate(h.RequestAdmin.AllRequests))
	router.PUT("/api/admin/request-status/:collection/:id", h.AuthMW.Authenticate(h.RequestAdmin.UpdateStatus))

	router.GET("/api/admin/rental-bookings", h.AuthMW.Authenticate(h.Intake.Rentals.List))
	router.GET("/api/admin/beach-bookings", h.AuthMW.Authenticate(h.Intake.Beaches.List))
	router.GET("/api/admin/restaurant-bookings", h.AuthMW.Authenticate(h.Intake.Restaurants.List))
	router.GET("/api/admin/experience-bookings", h.AuthMW.Authenticate(h.Intake.Experiences.List))
	router.GET("/api/admin/nightlife-bookings", h.AuthMW.Authenticate(h.Intake.Nightlife.List))
	router.GET("/api/admin/transport-requests", h.AuthMW.Authenticate(h.Intake.Transports.List))
	router.GET("/api/admin/support-tickets", h.AuthMW.Authenticate(h.Intake.Tickets.List))
	router.GET("/api/admin/extra-service-requests", h.AuthMW.Authenticate(h.Intake.Extras.List))
}

func AddGuestLinkRoutes(router *httprouter.Router, h *Handlers) {
	router.GET("/api/booking/:token", h.GuestLinks.Resolve)

	router.POST("/api/admin/guest-bookings", h.AuthMW.Authenticate(h.GuestLinks.Create))
	router.GET("/api/admin/guest-bookings", h.AuthMW.Authenticate(h.GuestLinks.List))
	router.DELETE("/api/admin/guest-bookings/:id", h.AuthMW.Authenticate(h.GuestLinks.Delete))
	router.GET("/api/admin/guest-bookings/:id/qr", h.AuthMW.Authenticate(h.GuestLinks.QR))
}

func AddWeatherRoutes(router *httprouter.Router, h *Handlers) {
	router.GET("/api/weather", h.Weather.GetWeather)
	router.GET("/api/weather/detailed", h.Weather.GetDetailedWeather)
}

func AddSeedRoutes(router *httprouter.Router, h *Handlers) {
	router.POST("/api/seed", h.Seed)
}

// AddAllRoutes mounts the full API surface.
func AddAllRoutes(router *httprouter.Router, h *Handlers) {
	AddAuthRoutes(router, h)
	AddPropertyRoutes(router, h)
	AddCatalogRoutes(router, h)
	AddRequestRoutes(router, h)
	AddGuestLinkRoutes(router, h)
	AddWeatherRoutes(router, h)
	AddSeedRoutes(router, h)
}
