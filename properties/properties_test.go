package properties

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRespondWriteErrorDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	w := httptest.NewRecorder()
	respondWriteError(w, dup, "Failed to create property")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Slug already in use")
}

func TestRespondWriteErrorOther(t *testing.T) {
	w := httptest.NewRecorder()
	respondWriteError(w, errors.New("connection reset"), "Failed to create property")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to create property")
}
