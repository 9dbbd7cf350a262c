package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitAllowsBurstThenBlocks(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	codes := make([]int, 0, 11)
	for i := 0; i < 11; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/support-tickets", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler(w, r, nil)
		codes = append(codes, w.Code)
	}

	for _, code := range codes[:10] {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, http.StatusTooManyRequests, codes[10])
}

func TestLimitIsPerAddress(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 11; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/support-tickets", nil)
		r.RemoteAddr = "10.0.0.2:1234"
		handler(httptest.NewRecorder(), r, nil)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/support-tickets", nil)
	r.RemoteAddr = "10.0.0.3:1234"
	w := httptest.NewRecorder()
	handler(w, r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
