package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"fittrack/internal/cache"
	"fittrack/internal/models"
	"fittrack/internal/nutrientdb"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// searchLimit caps the candidate list served from the local lookup table.
const searchLimit = 20

// NutrientProvider is the external lookup surface the controller depends on.
type NutrientProvider interface {
	Search(ctx context.Context, query string) ([]string, error)
	Lookup(ctx context.Context, foodName string) (nutrientdb.Nutrients, error)
}

type FoodController struct {
	foods    repository.FoodRepository
	provider NutrientProvider
	cache    *cache.RedisClient
}

func NewFoodController(foods repository.FoodRepository, provider NutrientProvider, redisCache *cache.RedisClient) *FoodController {
	return &FoodController{foods: foods, provider: provider, cache: redisCache}
}

// SearchFood godoc
// @Summary Search for foods
// @Description Query the external food database for candidate food names, falling back to the local lookup table when the provider is unreachable
// @Tags foods
// @Produce json
// @Param query query string true "Search prefix"
// @Success 200 {object} map[string]interface{} "Candidates retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Missing query"
// @Failure 502 {object} map[string]interface{} "Food database unreachable"
// @Router /foods/search [get]
func (fc *FoodController) SearchFood(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing search query",
			"error":   "query parameter is required",
		})
		return
	}

	names, err := fc.provider.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("Provider search failed for %q, falling back to lookup table: %v", query, err)
		// the lookup table only knows foods already resolved once, but a
		// partial candidate list beats a hard failure
		foods, storeErr := fc.foods.Search(query, searchLimit)
		if storeErr != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"status":  "error",
				"message": "Food database unreachable",
				"error":   err.Error(),
			})
			return
		}
		names = make([]string, 0, len(foods))
		for _, f := range foods {
			names = append(names, f.Name)
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Candidates retrieved successfully",
			"data":    names,
			"source":  "store",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Candidates retrieved successfully",
		"data":    names,
		"source":  "nutritionix",
	})
}

// LookupFood godoc
// @Summary Look up nutrients for a food
// @Description Resolve a food name to a nutrient record, via cache layers then the external database
// @Tags foods
// @Produce json
// @Param name query string true "Food name"
// @Success 200 {object} map[string]interface{} "Nutrients retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Missing name"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Failure 502 {object} map[string]interface{} "Food database unreachable"
// @Router /foods/lookup [get]
func (fc *FoodController) LookupFood(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Missing food name",
			"error":   "name parameter is required",
		})
		return
	}

	ctx := c.Request.Context()

	// redis first, then the lookup table, then the external provider
	if fc.cache != nil {
		if nutrients, found, err := fc.cache.GetFoodLookup(ctx, name); err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Nutrients retrieved successfully",
				"data":    nutrients,
				"source":  "cache",
			})
			return
		} else if err != nil {
			log.Printf("Food cache read failed for %q: %v", name, err)
		}
	}

	if food, err := fc.foods.FindByName(name); err == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Nutrients retrieved successfully",
			"data": nutrientdb.Nutrients{
				Name:     food.Name,
				Calories: food.Calories,
				ProteinG: food.ProteinG,
				CarbsG:   food.CarbsG,
				FatG:     food.FatG,
			},
			"source": "store",
		})
		return
	}

	nutrients, err := fc.provider.Lookup(ctx, name)
	if err != nil {
		if errors.Is(err, nutrientdb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Food not found",
				"error":   "No nutrient data for the given name",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Food database unreachable",
			"error":   err.Error(),
		})
		return
	}

	// refresh both cache layers; failures never block the response
	if err := fc.foods.Upsert(&models.Food{
		Name:     nutrients.Name,
		Calories: nutrients.Calories,
		ProteinG: nutrients.ProteinG,
		CarbsG:   nutrients.CarbsG,
		FatG:     nutrients.FatG,
		Serving:  nutrients.Serving(),
		Source:   "nutritionix",
	}); err != nil {
		log.Printf("Failed to cache food %q: %v", nutrients.Name, err)
	}
	if fc.cache != nil {
		if err := fc.cache.StoreFoodLookup(ctx, name, nutrients); err != nil {
			log.Printf("Food cache write failed for %q: %v", name, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrients retrieved successfully",
		"data":    nutrients,
		"source":  "nutritionix",
	})
}
