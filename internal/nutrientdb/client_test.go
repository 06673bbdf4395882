package nutrientdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupParsesNutrientResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/natural/nutrients", r.URL.Path)
		assert.Equal(t, "test-id", r.Header.Get("x-app-id"))
		assert.Equal(t, "test-key", r.Header.Get("x-app-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "foods": [{
    "food_name": "banana",
    "nf_calories": 105.02,
    "nf_protein": 1.29,
    "nf_total_carbohydrate": 26.95,
    "nf_total_fat": 0.39,
    "serving_qty": 1,
    "serving_unit": "medium"
  }]
}`))
	}))
	defer ts.Close()

	c := NewClientWithBase(ts.URL, "test-id", "test-key")
	got, err := c.Lookup(context.Background(), "banana")
	assert.NoError(t, err)
	assert.Equal(t, "banana", got.Name)
	assert.Equal(t, 105.02, got.Calories)
	assert.Equal(t, 1.29, got.ProteinG)
	assert.Equal(t, 26.95, got.CarbsG)
	assert.Equal(t, 0.39, got.FatG)
	assert.Equal(t, "1 medium", got.Serving())
}

func TestLookupEmptyFoodsIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"foods": []}`))
	}))
	defer ts.Close()

	c := NewClientWithBase(ts.URL, "id", "key")
	_, err := c.Lookup(context.Background(), "definitely not a food")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupSurfacesServerErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClientWithBase(ts.URL, "id", "key")
	_, err := c.Lookup(context.Background(), "banana")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSearchReturnsCandidateNames(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/instant", r.URL.Path)
		assert.Equal(t, "chick", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{"common": [{"food_name": "chicken breast"}, {"food_name": "chickpeas"}]}`))
	}))
	defer ts.Close()

	c := NewClientWithBase(ts.URL, "id", "key")
	names, err := c.Search(context.Background(), "chick")
	assert.NoError(t, err)
	assert.Equal(t, []string{"chicken breast", "chickpeas"}, names)
}
