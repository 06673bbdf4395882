package tests

import (
	"errors"
	"net/http"
	"testing"

	"fittrack/internal/controllers"
	"fittrack/internal/models"
	"fittrack/internal/nutrientdb"
	"fittrack/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupFoodController() (*controllers.FoodController, *mocks.MockFoodRepository, *mocks.MockNutrientProvider) {
	mockFoods := new(mocks.MockFoodRepository)
	mockProvider := new(mocks.MockNutrientProvider)
	controller := controllers.NewFoodController(mockFoods, mockProvider, nil)
	return controller, mockFoods, mockProvider
}

func TestSearchFood(t *testing.T) {
	t.Run("candidates returned", func(t *testing.T) {
		controller, _, mockProvider := setupFoodController()
		mockProvider.On("Search", mock.Anything, "chick").Return([]string{"chicken breast", "chicken thigh"}, nil)

		router := setupTestRouter()
		router.GET("/foods/search", controller.SearchFood)

		w := performJSONRequest(router, "GET", "/foods/search?query=chick", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeResponse(t, w)
		data := response["data"].([]interface{})
		assert.Len(t, data, 2)
		assert.Equal(t, "chicken breast", data[0])
		mockProvider.AssertExpectations(t)
	})

	t.Run("missing query", func(t *testing.T) {
		controller, _, _ := setupFoodController()

		router := setupTestRouter()
		router.GET("/foods/search", controller.SearchFood)

		w := performJSONRequest(router, "GET", "/foods/search", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provider unreachable falls back to the lookup table", func(t *testing.T) {
		controller, mockFoods, mockProvider := setupFoodController()
		mockProvider.On("Search", mock.Anything, "chick").Return(nil, errors.New("connection refused"))
		mockFoods.On("Search", "chick", 20).Return([]models.Food{
			{Name: "chicken breast", Calories: 284},
		}, nil)

		router := setupTestRouter()
		router.GET("/foods/search", controller.SearchFood)

		w := performJSONRequest(router, "GET", "/foods/search?query=chick", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeResponse(t, w)
		assert.Equal(t, "store", response["source"])
		data := response["data"].([]interface{})
		assert.Equal(t, []interface{}{"chicken breast"}, data)
		mockFoods.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})

	t.Run("provider and lookup table both unreachable", func(t *testing.T) {
		controller, mockFoods, mockProvider := setupFoodController()
		mockProvider.On("Search", mock.Anything, "chick").Return(nil, errors.New("connection refused"))
		mockFoods.On("Search", "chick", 20).Return([]models.Food(nil), errors.New("database error"))

		router := setupTestRouter()
		router.GET("/foods/search", controller.SearchFood)

		w := performJSONRequest(router, "GET", "/foods/search?query=chick", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		response := decodeResponse(t, w)
		assert.Equal(t, "Food database unreachable", response["message"])
		mockFoods.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})
}

func TestLookupFood(t *testing.T) {
	t.Run("served from the lookup table", func(t *testing.T) {
		controller, mockFoods, mockProvider := setupFoodController()
		mockFoods.On("FindByName", "banana").Return(&models.Food{
			Name:     "banana",
			Calories: 105,
			ProteinG: 1.3,
			CarbsG:   27,
			FatG:     0.4,
		}, nil)

		router := setupTestRouter()
		router.GET("/foods/lookup", controller.LookupFood)

		w := performJSONRequest(router, "GET", "/foods/lookup?name=banana", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeResponse(t, w)
		assert.Equal(t, "store", response["source"])
		data := response["data"].(map[string]interface{})
		assert.InDelta(t, 105.0, data["calories"], 0.001)
		mockFoods.AssertExpectations(t)
		mockProvider.AssertNotCalled(t, "Lookup")
	})

	t.Run("falls through to the provider and refreshes the table", func(t *testing.T) {
		controller, mockFoods, mockProvider := setupFoodController()
		mockFoods.On("FindByName", "dragonfruit").Return(nil, errors.New("record not found"))
		mockProvider.On("Lookup", mock.Anything, "dragonfruit").Return(nutrientdb.Nutrients{
			Name:        "dragonfruit",
			Calories:    60,
			ProteinG:    1.2,
			CarbsG:      13,
			FatG:        0,
			ServingQty:  1,
			ServingUnit: "fruit",
		}, nil)
		var cached *models.Food
		mockFoods.On("Upsert", mock.AnythingOfType("*models.Food")).
			Run(func(args mock.Arguments) {
				cached = args.Get(0).(*models.Food)
			}).Return(nil)

		router := setupTestRouter()
		router.GET("/foods/lookup", controller.LookupFood)

		w := performJSONRequest(router, "GET", "/foods/lookup?name=dragonfruit", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeResponse(t, w)
		assert.Equal(t, "nutritionix", response["source"])
		if assert.NotNil(t, cached) {
			assert.Equal(t, "dragonfruit", cached.Name)
			assert.Equal(t, "1 fruit", cached.Serving)
			assert.Equal(t, "nutritionix", cached.Source)
		}
		mockFoods.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})

	t.Run("unknown food", func(t *testing.T) {
		controller, mockFoods, mockProvider := setupFoodController()
		mockFoods.On("FindByName", "unobtainium").Return(nil, errors.New("record not found"))
		mockProvider.On("Lookup", mock.Anything, "unobtainium").Return(nutrientdb.Nutrients{}, nutrientdb.ErrNotFound)

		router := setupTestRouter()
		router.GET("/foods/lookup", controller.LookupFood)

		w := performJSONRequest(router, "GET", "/foods/lookup?name=unobtainium", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		response := decodeResponse(t, w)
		assert.Equal(t, "Food not found", response["message"])
		mockFoods.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		controller, _, _ := setupFoodController()

		router := setupTestRouter()
		router.GET("/foods/lookup", controller.LookupFood)

		w := performJSONRequest(router, "GET", "/foods/lookup", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
