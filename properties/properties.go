// Package properties serves the per-property guest guide: Wi-Fi, check-in and
// check-out instructions, house rules, contacts, FAQ and extra services. The
// slug is the public lookup key.
package properties

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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

type Handler struct {
	coll *mongo.Collection
}

func NewHandler(coll *mongo.Collection) *Handler {
	return &Handler{coll: coll}
}

// GetBySlug handles the public GET /api/properties/{slug}.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var prop models.Property
	err := h.coll.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&prop)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prop)
}

// GetExtraServices handles the public GET /api/extra-services/{slug}.
func (h *Handler) GetExtraServices(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var prop models.Property
	err := h.coll.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&prop)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	services := prop.ExtraServices
	if services == nil {
		services = []models.ExtraService{}
	}
	utils.RespondWithJSON(w, http.StatusOK, services)
}

// List returns all properties for the admin dashboard.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	props, err := utils.FindAndDecode[models.Property](ctx, h.coll, bson.M{}, 100)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch properties")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// Create inserts a property after checking the slug is not already taken.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload models.Property
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if taken, err := h.slugTaken(ctx, payload.Slug, ""); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	} else if taken {
		utils.RespondWithError(w, http.StatusConflict, "Slug already in use")
		return
	}

	doc, err := catalog.Doc(payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode property")
		return
	}
	id := utils.GetUUID()
	doc["id"] = id
	doc["created_at"] = time.Now().UTC()

	if _, err := h.coll.InsertOne(ctx, doc); err != nil {
		respondWriteError(w, err, "Failed to create property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "id": id})
}

// Update is a full replace of the mutable fields. Slug changes are allowed as
// long as the new slug does not collide with another property.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var payload models.Property
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if taken, err := h.slugTaken(ctx, payload.Slug, id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	} else if taken {
		utils.RespondWithError(w, http.StatusConflict, "Slug already in use")
		return
	}

	doc, err := catalog.Doc(payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode property")
		return
	}
	result, err := h.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": doc})
	if err != nil {
		respondWriteError(w, err, "Failed to update property")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Delete removes the property. Requests that reference it keep their
// denormalized copies; nothing cascades.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.coll.DeleteOne(ctx, bson.M{"id": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// respondWriteError maps a write failure to the client. The slugTaken check
// races with concurrent writers; when the unique slug index wins that race the
// duplicate-key error is still a conflict, not a server fault.
func respondWriteError(w http.ResponseWriter, err error, fallback string) {
	if mongo.IsDuplicateKeyError(err) {
		utils.RespondWithError(w, http.StatusConflict, "Slug already in use")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, fallback)
}

// slugTaken reports whether another property (id != exclude) owns the slug.
func (h *Handler) slugTaken(ctx context.Context, slug, exclude string) (bool, error) {
	filter := bson.M{"slug": slug}
	if exclude != "" {
		filter["id"] = bson.M{"$ne": exclude}
	}
	count, err := h.coll.CountDocuments(ctx, filter)
	return count > 0, err
}
