package catalog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lapillo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocStripsProtectedFields(t *testing.T) {
	beach := models.Beach{
		ID:          "should-be-dropped",
		Name:        "Punta Prosciutto",
		Description: "Sabbia bianchissima",
		Category:    "libera",
	}

	doc, err := Doc(beach)
	require.NoError(t, err)
	assert.NotContains(t, doc, "id")
	assert.Equal(t, "Punta Prosciutto", doc["name"])
	assert.Equal(t, "libera", doc["category"])
}

func TestDocStripsCreatedAt(t *testing.T) {
	prop := models.Property{
		ID:        "x",
		Name:      "Casa Brezza",
		Slug:      "casa-brezza",
		CreatedAt: time.Now(),
	}

	doc, err := Doc(prop)
	require.NoError(t, err)
	assert.NotContains(t, doc, "id")
	assert.NotContains(t, doc, "created_at")
	assert.Equal(t, "casa-brezza", doc["slug"])
}

func putSingleton(body string) *httptest.ResponseRecorder {
	s := NewSingleton[models.Supermarket](nil, "Supermarket")
	r := httptest.NewRequest(http.MethodPut, "/api/admin/supermarket", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Put(w, r, nil)
	return w
}

func TestSingletonPutRejectsInvalidJSON(t *testing.T) {
	w := putSingleton("{not json")
	assert.Equal(t, 400, w.Code)
}

func TestSingletonPutRequiresName(t *testing.T) {
	// Validation fails before any database access.
	w := putSingleton(`{"distance":"200m"}`)
	assert.Equal(t, 422, w.Code)
}
