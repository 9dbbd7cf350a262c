package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lapillo/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Singleton serves a collection that holds exactly one document, such as the
// supermarket page. Get returns it, Put replaces it, upserting on first write.
type Singleton[T any] struct {
	coll  *mongo.Collection
	label string
}

func NewSingleton[T any](coll *mongo.Collection, label string) *Singleton[T] {
	return &Singleton[T]{coll: coll, label: label}
}

func (s *Singleton[T]) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item T
	err := s.coll.FindOne(ctx, bson.M{}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, s.label+" not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// Put replaces the document, creating it when the collection is still empty.
func (s *Singleton[T]) Put(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"id": utils.GetUUID(), "created_at": time.Now().UTC()},
	}
	if _, err := s.coll.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update "+s.label)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
