// Package catalog implements generic CRUD over one reference-data collection.
// Public list/get never require auth; create/update/delete are registered
// behind the admin middleware in routes.
package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lapillo/utils"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Public lists are capped; there is no cursor pagination.
const listLimit = 100

var validate = validator.New()

type Resource[T any] struct {
	coll  *mongo.Collection
	label string
}

func NewResource[T any](coll *mongo.Collection, label string) *Resource[T] {
	return &Resource[T]{coll: coll, label: label}
}

// List returns up to listLimit documents in insertion order.
func (res *Resource[T]) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[T](ctx, res.coll, bson.M{}, listLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch "+res.label)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

// Get fetches one document by id.
func (res *Resource[T]) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item T
	err := res.coll.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, res.label+" not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// Create inserts a new document with a generated id and creation time.
func (res *Resource[T]) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	doc, err := Doc(payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode document")
		return
	}
	id := utils.GetUUID()
	doc["id"] = id
	doc["created_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if _, err := res.coll.InsertOne(ctx, doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create "+res.label)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "id": id})
}

// Update fully replaces the mutable fields; id and created_at are preserved.
func (res *Resource[T]) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	doc, err := Doc(payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode document")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	result, err := res.coll.UpdateOne(ctx, bson.M{"id": ps.ByName("id")}, bson.M{"$set": doc})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update "+res.label)
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, res.label+" not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Delete removes one document; deleting an absent id is NotFound, not success.
func (res *Resource[T]) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := res.coll.DeleteOne(ctx, bson.M{"id": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete "+res.label)
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, res.label+" not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Doc flattens the payload to a bson document, stripping the fields the
// caller may not set directly.
func Doc(payload any) (bson.M, error) {
	raw, err := bson.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "id")
	delete(doc, "created_at")
	return doc, nil
}
