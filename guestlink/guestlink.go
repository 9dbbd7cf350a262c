// Package guestlink issues and resolves the tokenized access links guests
// receive before arrival. The token is the only credential a guest ever
// holds; everything admin-side stays behind JWT auth.
package guestlink

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lapillo/catalog"
	"lapillo/models"
	"lapillo/utils"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const tokenLength = 12

var validate = validator.New()

type Handler struct {
	coll    *mongo.Collection
	baseURL string
}

func NewHandler(coll *mongo.Collection, publicBaseURL string) *Handler {
	return &Handler{coll: coll, baseURL: publicBaseURL}
}

// Link builds the URL placed in the WhatsApp message and encoded in the QR.
func (h *Handler) Link(token string) string {
	return h.baseURL + "/?token=" + token
}

// Create inserts the booking with a fresh random token. The unique index on
// the token field backstops the generator; on a duplicate we regenerate once.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking models.GuestBooking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(booking); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	doc, err := catalog.Doc(booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode booking")
		return
	}
	id := utils.GetUUID()
	doc["id"] = id
	doc["status"] = "active"
	doc["created_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	token := utils.NewToken(tokenLength)
	doc["token"] = token
	if _, err = h.coll.InsertOne(ctx, doc); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save booking")
			return
		}
		token = utils.NewToken(tokenLength)
		doc["token"] = token
		if _, err = h.coll.InsertOne(ctx, doc); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save booking")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"id":      id,
		"token":   token,
		"link":    h.Link(token),
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bookings, err := utils.FindAndDecode[models.GuestBooking](ctx, h.coll, bson.M{}, 100)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := h.coll.DeleteOne(ctx, bson.M{"id": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// QR renders the access link as a PNG for hosts who print a card instead of
// sending the link.
func (h *Handler) QR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.GuestBooking
	if err := h.coll.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	png, err := qrcode.Encode(h.Link(booking.Token), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Resolve is the public token check hit by the guest landing page.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.GuestBooking
	if err := h.coll.FindOne(ctx, bson.M{"token": ps.ByName("token")}).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	state := EvalWindow(time.Now().UTC(), booking.CheckinDate, booking.CheckoutDate, booking.GuestName)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"valid":   state.Valid,
		"message": state.Message,
		"booking": booking,
	})
}
